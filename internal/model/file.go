package model

import "time"

// File represents stored file metadata. The blob itself lives in object
// storage under ObjectKey; renames only touch FileName.
type File struct {
	ID          string
	OwnerName   string
	FileName    string
	ContentType string
	Size        int64
	UploadDate  time.Time
}

// ObjectKey returns the object-storage key for the file's blob.
func (f File) ObjectKey() string {
	return f.ID
}
