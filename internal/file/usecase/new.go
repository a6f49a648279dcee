package usecase

import (
	"cloud-srv/internal/audit"
	"cloud-srv/internal/file"
	"cloud-srv/internal/file/repository"
	"cloud-srv/pkg/log"
	"cloud-srv/pkg/minio"
)

// implUseCase implements the file.UseCase interface
type implUseCase struct {
	l           log.Logger
	repo        repository.Repository
	cache       repository.Cache
	minio       minio.MinIO
	audit       audit.IPublisher
	maxFileSize int64
}

// New creates a new file usecase. maxFileSize bounds a single upload in bytes.
func New(
	l log.Logger,
	repo repository.Repository,
	cache repository.Cache,
	minioClient minio.MinIO,
	auditPublisher audit.IPublisher,
	maxFileSize int64,
) file.UseCase {
	return &implUseCase{
		l:           l,
		repo:        repo,
		cache:       cache,
		minio:       minioClient,
		audit:       auditPublisher,
		maxFileSize: maxFileSize,
	}
}
