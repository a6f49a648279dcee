package repository

import (
	"context"

	"cloud-srv/internal/model"
)

// Repository defines the credential store operations.
type Repository interface {
	CreateUser(ctx context.Context, opt CreateUserOptions) (model.User, error)
	GetUserByLogin(ctx context.Context, login string) (model.User, error)
}
