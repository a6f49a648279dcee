package repository

// CreateFileOptions - Options for CreateFile operation. ID doubles as the
// blob's object key and is generated by the caller before the blob upload.
type CreateFileOptions struct {
	ID          string
	OwnerName   string
	FileName    string
	ContentType string
	Size        int64
}

// GetFileOptions - Options for GetFile operation
type GetFileOptions struct {
	OwnerName string
	FileName  string
}

// RenameFileOptions - Options for RenameFile operation
type RenameFileOptions struct {
	ID      string
	NewName string
}
