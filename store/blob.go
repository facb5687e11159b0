package store

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/gaurav-prasanna/docscrape/config"
)

const markdownContentType = "text/markdown"

// MarkdownBlobStore persists markdown artifacts in an S3-compatible bucket.
type MarkdownBlobStore struct {
	client *minio.Client
	bucket string
	prefix string
}

// NewMarkdownBlobStore connects to the blob store and ensures the
// configured bucket exists.
func NewMarkdownBlobStore(ctx context.Context, cfg config.Config) (*MarkdownBlobStore, error) {
	client, err := minio.New(cfg.MinIOEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIOAccessKey, cfg.MinIOSecretKey, ""),
		Secure: cfg.MinIOSecure,
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to blob store: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("checking bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("creating bucket %s: %w", cfg.Bucket, err)
		}
	}

	return &MarkdownBlobStore{
		client: client,
		bucket: cfg.Bucket,
		prefix: cfg.ObjectPrefix,
	}, nil
}

// Put uploads markdown bytes under the given key. An existing object
// with the same key is simply overwritten.
func (s *MarkdownBlobStore) Put(ctx context.Context, key string, data []byte) error {
	object := path.Join(s.prefix, key)
	_, err := s.client.PutObject(ctx, s.bucket, object,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: markdownContentType})
	if err != nil {
		return fmt.Errorf("uploading %s: %w", object, err)
	}
	return nil
}
