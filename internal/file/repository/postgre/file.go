package postgre

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"cloud-srv/internal/file/repository"
	"cloud-srv/internal/model"

	"github.com/lib/pq"
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations.
const uniqueViolation = "23505"

func (r *implRepository) CreateFile(ctx context.Context, opt repository.CreateFileOptions) (model.File, error) {
	file := model.File{
		ID:          opt.ID,
		OwnerName:   opt.OwnerName,
		FileName:    opt.FileName,
		ContentType: opt.ContentType,
		Size:        opt.Size,
		UploadDate:  time.Now().UTC(),
	}

	const query = `
		INSERT INTO files (id, owner_name, file_name, content_type, size, upload_date)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query,
		file.ID, file.OwnerName, file.FileName, file.ContentType, file.Size, file.UploadDate)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return model.File{}, repository.ErrAlreadyExists
		}
		r.l.Errorf(ctx, "file.repository.postgre.CreateFile: insert failed: %v", err)
		return model.File{}, err
	}

	return file, nil
}

func (r *implRepository) GetFile(ctx context.Context, opt repository.GetFileOptions) (model.File, error) {
	const query = `
		SELECT id, owner_name, file_name, content_type, size, upload_date
		FROM files
		WHERE owner_name = $1 AND file_name = $2`

	var file model.File
	err := r.db.QueryRowContext(ctx, query, opt.OwnerName, opt.FileName).Scan(
		&file.ID, &file.OwnerName, &file.FileName, &file.ContentType, &file.Size, &file.UploadDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.File{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "file.repository.postgre.GetFile: query failed: %v", err)
		return model.File{}, err
	}

	return file, nil
}

func (r *implRepository) DeleteFile(ctx context.Context, id string) error {
	const query = `DELETE FROM files WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		r.l.Errorf(ctx, "file.repository.postgre.DeleteFile: delete failed: %v", err)
		return err
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *implRepository) RenameFile(ctx context.Context, opt repository.RenameFileOptions) error {
	const query = `UPDATE files SET file_name = $1 WHERE id = $2`

	res, err := r.db.ExecContext(ctx, query, opt.NewName, opt.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return repository.ErrAlreadyExists
		}
		r.l.Errorf(ctx, "file.repository.postgre.RenameFile: update failed: %v", err)
		return err
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *implRepository) ListFiles(ctx context.Context, ownerName string) ([]model.File, error) {
	const query = `
		SELECT id, owner_name, file_name, content_type, size, upload_date
		FROM files
		WHERE owner_name = $1
		ORDER BY upload_date DESC`

	rows, err := r.db.QueryContext(ctx, query, ownerName)
	if err != nil {
		r.l.Errorf(ctx, "file.repository.postgre.ListFiles: query failed: %v", err)
		return nil, err
	}
	defer rows.Close()

	var files []model.File
	for rows.Next() {
		var file model.File
		if err := rows.Scan(&file.ID, &file.OwnerName, &file.FileName, &file.ContentType, &file.Size, &file.UploadDate); err != nil {
			r.l.Errorf(ctx, "file.repository.postgre.ListFiles: scan failed: %v", err)
			return nil, err
		}
		files = append(files, file)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "file.repository.postgre.ListFiles: rows failed: %v", err)
		return nil, err
	}

	return files, nil
}
