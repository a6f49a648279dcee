package minio

import (
	"io"
	"time"

	"github.com/minio/minio-go/v7"
)

// Config holds MinIO configuration. Bucket is the single bucket this client
// operates on.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
	Bucket    string
}

// implMinIO implements MinIO.
type implMinIO struct {
	minioClient *minio.Client
	config      Config
}

// UploadRequest contains the parameters for uploading an object.
type UploadRequest struct {
	ObjectKey   string
	Reader      io.Reader
	Size        int64
	ContentType string
}

// ObjectInfo represents metadata about a stored object.
type ObjectInfo struct {
	ObjectKey    string
	Size         int64
	ContentType  string
	ETag         string
	LastModified time.Time
}
