package minio

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIO defines blob operations over a single configured bucket.
// Implementations are safe for concurrent use.
type MinIO interface {
	EnsureBucket(ctx context.Context) error
	UploadObject(ctx context.Context, req UploadRequest) (ObjectInfo, error)
	DownloadObject(ctx context.Context, objectKey string) (io.ReadCloser, error)
	DeleteObject(ctx context.Context, objectKey string) error
	StatObject(ctx context.Context, objectKey string) (ObjectInfo, error)
	HealthCheck(ctx context.Context) error
}

// New creates a new MinIO client bound to cfg.Bucket. Returns the interface.
func New(cfg Config) (MinIO, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("minio: bucket is required")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("minio: failed to create client: %w", err)
	}

	return &implMinIO{
		minioClient: client,
		config:      cfg,
	}, nil
}
