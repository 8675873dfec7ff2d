package aws

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3API defines the subset of the S3 API used by the artifact store.
type S3API interface {
	PutObject(ctx context.Context, input *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// ArtifactStore writes report artifacts to an S3 bucket. Writing the same
// key twice replaces the object.
type ArtifactStore struct {
	client S3API
	bucket string
}

// NewArtifactStore creates a store for bucket.
func NewArtifactStore(client S3API, bucket string) *ArtifactStore {
	return &ArtifactStore{client: client, bucket: bucket}
}

// Put uploads data under key name.
func (s *ArtifactStore) Put(ctx context.Context, name string, data []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      awssdk.String(s.bucket),
		Key:         awssdk.String(name),
		Body:        bytes.NewReader(data),
		ContentType: awssdk.String("text/csv"),
	})
	if err != nil {
		return fmt.Errorf("put s3://%s/%s: %w", s.bucket, name, err)
	}
	slog.Debug("Uploaded report", "bucket", s.bucket, "key", name, "bytes", len(data))
	return nil
}

// Location returns the s3:// URI for name.
func (s *ArtifactStore) Location(name string) string {
	return fmt.Sprintf("s3://%s/%s", s.bucket, name)
}
