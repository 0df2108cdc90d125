// Package store persists render-ready reports and resolves inference-job
// metadata. Backends exist for DynamoDB, Postgres, and memory; all share
// at-most-once write semantics keyed by job id.
package store

import (
	"context"
	"errors"

	"github.com/hospitech/fcproc/internal/model"
)

// ErrDuplicate is returned by PutIfAbsent when a report for the same job id
// is already stored.
var ErrDuplicate = errors.New("report already exists")

// ReportStore persists reports keyed by job id.
type ReportStore interface {
	// PutIfAbsent stores the report unless one exists for the same job id,
	// in which case it returns ErrDuplicate and changes nothing. Duplicate
	// event deliveries become no-ops through this check.
	PutIfAbsent(ctx context.Context, report *model.Report) error
}

// JobStore resolves metadata recorded when an inference job was submitted.
type JobStore interface {
	// FANumber returns the FA reference for a job, or (nil, nil) when the
	// job is unknown or carries none.
	FANumber(ctx context.Context, jobID string) (*string, error)
}
