package minio

import (
	"errors"

	"github.com/minio/minio-go/v7"
)

// ErrObjectNotFound means the requested object key does not exist.
var ErrObjectNotFound = errors.New("minio: object not found")

func handleMinIOError(err error) error {
	if err == nil {
		return nil
	}
	resp := minio.ToErrorResponse(err)
	if resp.Code == "NoSuchKey" {
		return ErrObjectNotFound
	}
	return err
}
