package blobstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"reflect"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

type fakeS3 struct {
	objects map[string][]byte
	pages   [][]string
	calls   int
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	data, ok := f.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func (f *fakeS3) ListObjectsV2(_ context.Context, _ *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	page := f.pages[f.calls]
	f.calls++
	out := &s3.ListObjectsV2Output{}
	for _, k := range page {
		out.Contents = append(out.Contents, types.Object{Key: aws.String(k)})
	}
	truncated := f.calls < len(f.pages)
	out.IsTruncated = aws.Bool(truncated)
	if truncated {
		out.NextContinuationToken = aws.String(fmt.Sprintf("token-%d", f.calls))
	}
	return out, nil
}

func TestS3GetReturnsBody(t *testing.T) {
	store := &S3{client: &fakeS3{objects: map[string][]byte{"output/a.out": []byte(`{"dtf": 1}`)}}}
	got, err := store.Get(context.Background(), "bucket", "output/a.out")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != `{"dtf": 1}` {
		t.Errorf("Get = %q, want original body", got)
	}
}

func TestS3GetMapsMissingKey(t *testing.T) {
	store := &S3{client: &fakeS3{objects: map[string][]byte{}}}
	_, err := store.Get(context.Background(), "bucket", "output/missing.out")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get error = %v, want ErrNotFound", err)
	}
}

func TestS3ListWalksAllPages(t *testing.T) {
	fake := &fakeS3{pages: [][]string{
		{"output/a.out", "output/b.out"},
		{"output/c.out"},
		{"output/d.out"},
	}}
	store := &S3{client: fake}
	keys, err := store.List(context.Background(), "bucket", "output/")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"output/a.out", "output/b.out", "output/c.out", "output/d.out"}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("List = %v, want %v", keys, want)
	}
	if fake.calls != 3 {
		t.Errorf("list calls = %d, want 3 (one per page)", fake.calls)
	}
}

func TestMemoryRoundTrip(t *testing.T) {
	m := NewMemory()
	m.Put("bucket", "output/a.out", []byte("one"))
	m.Put("bucket", "output/b.out", []byte("two"))
	m.Put("bucket", "archive/c.out", []byte("three"))

	got, err := m.Get(context.Background(), "bucket", "output/a.out")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "one" {
		t.Errorf("Get = %q, want one", got)
	}

	if _, err := m.Get(context.Background(), "bucket", "output/missing.out"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get error = %v, want ErrNotFound", err)
	}

	keys, err := m.List(context.Background(), "bucket", "output/")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"output/a.out", "output/b.out"}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("List = %v, want %v", keys, want)
	}
}
