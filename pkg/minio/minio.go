package minio

import (
	"context"
	"io"

	"github.com/minio/minio-go/v7"
)

// EnsureBucket creates the configured bucket if it does not exist yet.
func (m *implMinIO) EnsureBucket(ctx context.Context) error {
	exists, err := m.minioClient.BucketExists(ctx, m.config.Bucket)
	if err != nil {
		return handleMinIOError(err)
	}
	if exists {
		return nil
	}
	err = m.minioClient.MakeBucket(ctx, m.config.Bucket, minio.MakeBucketOptions{Region: m.config.Region})
	return handleMinIOError(err)
}

// UploadObject stores an object under the given key.
func (m *implMinIO) UploadObject(ctx context.Context, req UploadRequest) (ObjectInfo, error) {
	opts := minio.PutObjectOptions{ContentType: req.ContentType}
	info, err := m.minioClient.PutObject(ctx, m.config.Bucket, req.ObjectKey, req.Reader, req.Size, opts)
	if err != nil {
		return ObjectInfo{}, handleMinIOError(err)
	}
	return ObjectInfo{
		ObjectKey:   req.ObjectKey,
		Size:        info.Size,
		ContentType: req.ContentType,
		ETag:        info.ETag,
	}, nil
}

// DownloadObject returns a reader over the object's content. The caller must
// close it.
func (m *implMinIO) DownloadObject(ctx context.Context, objectKey string) (io.ReadCloser, error) {
	obj, err := m.minioClient.GetObject(ctx, m.config.Bucket, objectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, handleMinIOError(err)
	}
	// GetObject is lazy; stat now so missing keys fail here, not mid-stream.
	if _, err := obj.Stat(); err != nil {
		obj.Close()
		return nil, handleMinIOError(err)
	}
	return obj, nil
}

// DeleteObject removes an object.
func (m *implMinIO) DeleteObject(ctx context.Context, objectKey string) error {
	return handleMinIOError(m.minioClient.RemoveObject(ctx, m.config.Bucket, objectKey, minio.RemoveObjectOptions{}))
}

// StatObject returns object metadata.
func (m *implMinIO) StatObject(ctx context.Context, objectKey string) (ObjectInfo, error) {
	info, err := m.minioClient.StatObject(ctx, m.config.Bucket, objectKey, minio.StatObjectOptions{})
	if err != nil {
		return ObjectInfo{}, handleMinIOError(err)
	}
	return ObjectInfo{
		ObjectKey:    objectKey,
		Size:         info.Size,
		ContentType:  info.ContentType,
		ETag:         info.ETag,
		LastModified: info.LastModified,
	}, nil
}

// HealthCheck verifies the bucket is reachable.
func (m *implMinIO) HealthCheck(ctx context.Context) error {
	_, err := m.minioClient.BucketExists(ctx, m.config.Bucket)
	return handleMinIOError(err)
}
