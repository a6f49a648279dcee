package file

import "errors"

var (
	ErrFileNotFound      = errors.New("file: file not found")
	ErrFileAlreadyExists = errors.New("file: file already exists")
	ErrFileTooLarge      = errors.New("file: file too large")
)
