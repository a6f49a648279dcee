package file

import (
	"io"

	"cloud-srv/internal/model"
)

// UploadInput carries the multipart upload. Size is taken from the part
// header and checked against the configured maximum.
type UploadInput struct {
	Owner       string
	FileName    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// DownloadInput identifies a file by its owner-scoped name.
type DownloadInput struct {
	Owner    string
	FileName string
}

// DownloadOutput carries the metadata and the blob stream. The caller owns
// closing Reader.
type DownloadOutput struct {
	File   model.File
	Reader io.ReadCloser
}

// DeleteInput identifies a file by its owner-scoped name.
type DeleteInput struct {
	Owner    string
	FileName string
}

// RenameInput renames OldName to NewName within one owner's namespace.
type RenameInput struct {
	Owner   string
	OldName string
	NewName string
}

// ListInput truncates the owner's newest-first listing to Limit entries.
type ListInput struct {
	Owner string
	Limit int
}
