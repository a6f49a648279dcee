package http

import (
	"errors"
	"net/http"

	"cloud-srv/internal/auth"
	pkgErrors "cloud-srv/pkg/errors"
)

var (
	errUserNotFound   = pkgErrors.NewHTTPError(http.StatusBadRequest, "USER_NOT_FOUND", "User not found")
	errBadCredentials = pkgErrors.NewHTTPError(http.StatusBadRequest, "BAD_CREDENTIALS", "Bad credentials")
	errUserExists     = pkgErrors.NewHTTPError(http.StatusBadRequest, "USER_EXISTS", "User already exists")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, auth.ErrUserNotFound):
		return errUserNotFound
	case errors.Is(err, auth.ErrBadCredentials):
		return errBadCredentials
	case errors.Is(err, auth.ErrUserAlreadyExists):
		return errUserExists
	default:
		return err
	}
}
