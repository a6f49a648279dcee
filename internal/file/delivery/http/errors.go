package http

import (
	"errors"
	"net/http"

	"cloud-srv/internal/file"
	pkgErrors "cloud-srv/pkg/errors"
)

var (
	errFileNotFound = pkgErrors.NewHTTPError(http.StatusBadRequest, "FILE_NOT_FOUND", "File not found")
	errFileExists   = pkgErrors.NewHTTPError(http.StatusBadRequest, "FILE_EXISTS", "File already exists")
	errFileTooLarge = pkgErrors.NewHTTPError(http.StatusBadRequest, "FILE_TOO_LARGE", "File exceeds the maximum allowed size")
	errAuthRequired = pkgErrors.NewHTTPError(http.StatusUnauthorized, "UNAUTHORIZED", "Auth required")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, file.ErrFileNotFound):
		return errFileNotFound
	case errors.Is(err, file.ErrFileAlreadyExists):
		return errFileExists
	case errors.Is(err, file.ErrFileTooLarge):
		return errFileTooLarge
	default:
		return err
	}
}
