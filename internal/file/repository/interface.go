package repository

import (
	"context"

	"cloud-srv/internal/model"
)

// Repository defines the file metadata store operations. Listing returns
// newest upload first.
type Repository interface {
	CreateFile(ctx context.Context, opt CreateFileOptions) (model.File, error)
	GetFile(ctx context.Context, opt GetFileOptions) (model.File, error)
	DeleteFile(ctx context.Context, id string) error
	RenameFile(ctx context.Context, opt RenameFileOptions) error
	ListFiles(ctx context.Context, ownerName string) ([]model.File, error)
}

// Cache caches per-owner listings. A miss is (nil, false, nil); cache
// failures are soft and reported as errors for logging only.
type Cache interface {
	GetList(ctx context.Context, ownerName string) ([]model.File, bool, error)
	SetList(ctx context.Context, ownerName string, files []model.File) error
	InvalidateList(ctx context.Context, ownerName string) error
}
