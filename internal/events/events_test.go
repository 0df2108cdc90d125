package events

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	body := `{
		"Records": [
			{
				"eventVersion": "2.1",
				"eventSource": "aws:s3",
				"awsRegion": "ap-southeast-1",
				"eventName": "ObjectCreated:Put",
				"s3": {
					"s3SchemaVersion": "1.0",
					"bucket": {"name": "inference-output", "arn": "arn:aws:s3:::inference-output"},
					"object": {"key": "async-output/job-abc-123.out", "size": 2048}
				}
			},
			{
				"s3": {
					"bucket": {"name": "inference-output"},
					"object": {"key": "async-output/job-def-456.out"}
				}
			}
		]
	}`

	refs, err := Parse([]byte(body))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := []ObjectRef{
		{Bucket: "inference-output", Key: "async-output/job-abc-123.out"},
		{Bucket: "inference-output", Key: "async-output/job-def-456.out"},
	}
	if !reflect.DeepEqual(refs, want) {
		t.Errorf("refs = %+v, want %+v", refs, want)
	}
}

func TestParseEmptyNotification(t *testing.T) {
	refs, err := Parse([]byte(`{}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(refs) != 0 {
		t.Errorf("refs = %+v, want empty", refs)
	}
}

func TestParsePartialRecord(t *testing.T) {
	refs, err := Parse([]byte(`{"Records": [{"s3": {}}]}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(refs) != 1 || refs[0].Bucket != "" || refs[0].Key != "" {
		t.Errorf("refs = %+v, want one empty ref", refs)
	}
}

func TestParseRejectsInvalidJSON(t *testing.T) {
	if _, err := Parse([]byte(`{"Records": [`)); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}
