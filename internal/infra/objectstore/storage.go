// Package objectstore wraps MinIO/S3 for media uploads. The store only
// ever receives whole objects and hands back public URLs; all metadata
// lives in Postgres.
package objectstore

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"portfolio-app/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type Storage struct {
	client *minio.Client
	bucket string
	region string
}

func New() (*Storage, error) {
	client, err := minio.New(config.S3_ENDPOINT, &minio.Options{
		Creds:  credentials.NewStaticV4(config.S3_ACCESS_KEY, config.S3_SECRET_KEY, ""),
		Secure: config.S3_USE_SSL,
		Region: config.S3_REGION,
	})
	if err != nil {
		return nil, fmt.Errorf("init minio: %w", err)
	}
	return &Storage{
		client: client,
		bucket: config.S3_BUCKET,
		region: config.S3_REGION,
	}, nil
}

// EnsureBucket makes sure the media bucket exists before first use.
func (s *Storage) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region}); err != nil {
			return fmt.Errorf("make bucket %s: %w", s.bucket, err)
		}
	}
	return nil
}

// Upload stores one object under a fresh uuid key (the original
// filename only survives as the extension) and returns its public URL.
func (s *Storage) Upload(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	key := uuid.NewString() + strings.ToLower(path.Ext(filename))

	opts := minio.PutObjectOptions{ContentType: contentType}
	if _, err := s.client.PutObject(ctx, s.bucket, key, reader, size, opts); err != nil {
		return "", fmt.Errorf("upload object: %w", err)
	}

	return s.publicURL(key), nil
}

func (s *Storage) publicURL(key string) string {
	if config.S3_PUBLIC_URL != "" {
		return strings.TrimRight(config.S3_PUBLIC_URL, "/") + "/" + key
	}
	scheme := "http"
	if config.S3_USE_SSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, config.S3_ENDPOINT, s.bucket, key)
}
