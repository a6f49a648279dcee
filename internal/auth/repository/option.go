package repository

import "cloud-srv/internal/model"

// CreateUserOptions - Options for CreateUser operation
type CreateUserOptions struct {
	Login        string
	PasswordHash string
	Role         model.Role
}
