package usecase

import (
	"context"
	"errors"

	"cloud-srv/internal/audit"
	"cloud-srv/internal/file"
	"cloud-srv/internal/file/repository"
	"cloud-srv/internal/model"
	"cloud-srv/pkg/minio"

	"github.com/google/uuid"
)

// Upload stores the blob first, then the metadata row. The blob is keyed by
// the metadata ID generated here, so a metadata failure can compensate by
// deleting the orphaned blob.
func (uc *implUseCase) Upload(ctx context.Context, input file.UploadInput) (model.File, error) {
	if uc.maxFileSize > 0 && input.Size > uc.maxFileSize {
		return model.File{}, file.ErrFileTooLarge
	}

	_, err := uc.repo.GetFile(ctx, repository.GetFileOptions{
		OwnerName: input.Owner,
		FileName:  input.FileName,
	})
	if err == nil {
		return model.File{}, file.ErrFileAlreadyExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		uc.l.Errorf(ctx, "file.usecase.Upload: GetFile failed: %v", err)
		return model.File{}, err
	}

	id := uuid.NewString()
	if _, err := uc.minio.UploadObject(ctx, minio.UploadRequest{
		ObjectKey:   id,
		Reader:      input.Reader,
		Size:        input.Size,
		ContentType: input.ContentType,
	}); err != nil {
		uc.l.Errorf(ctx, "file.usecase.Upload: UploadObject failed: %v", err)
		return model.File{}, err
	}

	created, err := uc.repo.CreateFile(ctx, repository.CreateFileOptions{
		ID:          id,
		OwnerName:   input.Owner,
		FileName:    input.FileName,
		ContentType: input.ContentType,
		Size:        input.Size,
	})
	if err != nil {
		if delErr := uc.minio.DeleteObject(ctx, id); delErr != nil {
			uc.l.Errorf(ctx, "file.usecase.Upload: compensating DeleteObject failed for %s: %v", id, delErr)
		}
		if errors.Is(err, repository.ErrAlreadyExists) {
			return model.File{}, file.ErrFileAlreadyExists
		}
		uc.l.Errorf(ctx, "file.usecase.Upload: CreateFile failed: %v", err)
		return model.File{}, err
	}

	uc.invalidateList(ctx, input.Owner)
	uc.audit.Publish(ctx, audit.Event{
		Name:     audit.EventFileUploaded,
		Username: input.Owner,
		FileName: input.FileName,
	})

	return created, nil
}

// Download resolves the metadata and opens the blob stream. The caller owns
// closing the returned reader.
func (uc *implUseCase) Download(ctx context.Context, input file.DownloadInput) (file.DownloadOutput, error) {
	meta, err := uc.repo.GetFile(ctx, repository.GetFileOptions{
		OwnerName: input.Owner,
		FileName:  input.FileName,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return file.DownloadOutput{}, file.ErrFileNotFound
		}
		uc.l.Errorf(ctx, "file.usecase.Download: GetFile failed: %v", err)
		return file.DownloadOutput{}, err
	}

	reader, err := uc.minio.DownloadObject(ctx, meta.ObjectKey())
	if err != nil {
		if errors.Is(err, minio.ErrObjectNotFound) {
			// Metadata without a blob means a half-completed delete.
			uc.l.Errorf(ctx, "file.usecase.Download: blob missing for metadata %s", meta.ID)
			return file.DownloadOutput{}, file.ErrFileNotFound
		}
		uc.l.Errorf(ctx, "file.usecase.Download: DownloadObject failed: %v", err)
		return file.DownloadOutput{}, err
	}

	return file.DownloadOutput{File: meta, Reader: reader}, nil
}

// Delete removes the metadata row first so the name frees up immediately; a
// failed blob delete leaves an orphan that is logged, not surfaced.
func (uc *implUseCase) Delete(ctx context.Context, input file.DeleteInput) error {
	meta, err := uc.repo.GetFile(ctx, repository.GetFileOptions{
		OwnerName: input.Owner,
		FileName:  input.FileName,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return file.ErrFileNotFound
		}
		uc.l.Errorf(ctx, "file.usecase.Delete: GetFile failed: %v", err)
		return err
	}

	if err := uc.repo.DeleteFile(ctx, meta.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return file.ErrFileNotFound
		}
		uc.l.Errorf(ctx, "file.usecase.Delete: DeleteFile failed: %v", err)
		return err
	}

	if err := uc.minio.DeleteObject(ctx, meta.ObjectKey()); err != nil && !errors.Is(err, minio.ErrObjectNotFound) {
		uc.l.Errorf(ctx, "file.usecase.Delete: DeleteObject failed for %s: %v", meta.ID, err)
	}

	uc.invalidateList(ctx, input.Owner)
	uc.audit.Publish(ctx, audit.Event{
		Name:     audit.EventFileDeleted,
		Username: input.Owner,
		FileName: input.FileName,
	})

	return nil
}

// Rename only touches the metadata row; the blob stays under its original key.
func (uc *implUseCase) Rename(ctx context.Context, input file.RenameInput) error {
	meta, err := uc.repo.GetFile(ctx, repository.GetFileOptions{
		OwnerName: input.Owner,
		FileName:  input.OldName,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return file.ErrFileNotFound
		}
		uc.l.Errorf(ctx, "file.usecase.Rename: GetFile failed: %v", err)
		return err
	}

	_, err = uc.repo.GetFile(ctx, repository.GetFileOptions{
		OwnerName: input.Owner,
		FileName:  input.NewName,
	})
	if err == nil {
		return file.ErrFileAlreadyExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		uc.l.Errorf(ctx, "file.usecase.Rename: GetFile failed: %v", err)
		return err
	}

	if err := uc.repo.RenameFile(ctx, repository.RenameFileOptions{ID: meta.ID, NewName: input.NewName}); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return file.ErrFileNotFound
		case errors.Is(err, repository.ErrAlreadyExists):
			return file.ErrFileAlreadyExists
		}
		uc.l.Errorf(ctx, "file.usecase.Rename: RenameFile failed: %v", err)
		return err
	}

	uc.invalidateList(ctx, input.Owner)
	uc.audit.Publish(ctx, audit.Event{
		Name:     audit.EventFileRenamed,
		Username: input.Owner,
		FileName: input.NewName,
		Detail:   input.OldName,
	})

	return nil
}

// List serves the owner's newest-first listing through a read-through cache.
// The full listing is cached; truncation to the limit happens per request.
func (uc *implUseCase) List(ctx context.Context, input file.ListInput) ([]model.File, error) {
	files, hit, err := uc.cache.GetList(ctx, input.Owner)
	if err != nil {
		uc.l.Warnf(ctx, "file.usecase.List: cache read failed: %v", err)
	}

	if !hit {
		files, err = uc.repo.ListFiles(ctx, input.Owner)
		if err != nil {
			uc.l.Errorf(ctx, "file.usecase.List: ListFiles failed: %v", err)
			return nil, err
		}
		if err := uc.cache.SetList(ctx, input.Owner, files); err != nil {
			uc.l.Warnf(ctx, "file.usecase.List: cache write failed: %v", err)
		}
	}

	if input.Limit > 0 && len(files) > input.Limit {
		files = files[:input.Limit]
	}

	return files, nil
}

func (uc *implUseCase) invalidateList(ctx context.Context, ownerName string) {
	if err := uc.cache.InvalidateList(ctx, ownerName); err != nil {
		uc.l.Warnf(ctx, "file.usecase: cache invalidation failed for %s: %v", ownerName, err)
	}
}
