// Package events decodes S3 object-created notifications into the
// bucket/key pairs the processor consumes.
package events

import (
	"encoding/json"
	"fmt"
)

// ObjectRef identifies one S3 object named by a notification.
type ObjectRef struct {
	Bucket string
	Key    string
}

type notification struct {
	Records []struct {
		S3 struct {
			Bucket struct {
				Name string `json:"name"`
			} `json:"bucket"`
			Object struct {
				Key string `json:"key"`
			} `json:"object"`
		} `json:"s3"`
	} `json:"Records"`
}

// Parse decodes a notification body into object references. Fields beyond
// the bucket name and object key are ignored; a body without records
// yields an empty slice.
func Parse(body []byte) ([]ObjectRef, error) {
	var n notification
	if err := json.Unmarshal(body, &n); err != nil {
		return nil, fmt.Errorf("decode s3 notification: %w", err)
	}

	refs := make([]ObjectRef, 0, len(n.Records))
	for _, r := range n.Records {
		refs = append(refs, ObjectRef{Bucket: r.S3.Bucket.Name, Key: r.S3.Object.Key})
	}
	return refs, nil
}
