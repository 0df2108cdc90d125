// Package blobstore reads raw inference outputs from object storage. It
// defines the Store interface, the S3 implementation used in production, and
// an in-memory implementation for tests and local runs.
package blobstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned when the requested object does not exist.
var ErrNotFound = errors.New("object not found")

// Store is the contract for object storage backends. Implementations must be
// safe for concurrent use.
type Store interface {
	// Get returns the full contents of the object at key.
	Get(ctx context.Context, bucket, key string) ([]byte, error)
	// List returns all object keys under prefix.
	List(ctx context.Context, bucket, prefix string) ([]string, error)
}
