package file

import (
	"context"

	"cloud-srv/internal/model"
)

// UseCase handles owner-scoped file CRUD. Owner always comes from the
// authenticated request scope, never from client input.
type UseCase interface {
	Upload(ctx context.Context, input UploadInput) (model.File, error)
	Download(ctx context.Context, input DownloadInput) (DownloadOutput, error)
	Delete(ctx context.Context, input DeleteInput) error
	Rename(ctx context.Context, input RenameInput) error
	List(ctx context.Context, input ListInput) ([]model.File, error)
}
