package postgre

import (
	"database/sql"

	"cloud-srv/internal/auth/repository"
	"cloud-srv/pkg/log"
)

// implRepository implements repository.Repository against PostgreSQL
type implRepository struct {
	l  log.Logger
	db *sql.DB
}

// New creates a new PostgreSQL repository for the auth domain
func New(l log.Logger, db *sql.DB) repository.Repository {
	return &implRepository{
		l:  l,
		db: db,
	}
}
