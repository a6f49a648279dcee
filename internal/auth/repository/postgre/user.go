package postgre

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"cloud-srv/internal/auth/repository"
	"cloud-srv/internal/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations.
const uniqueViolation = "23505"

func (r *implRepository) CreateUser(ctx context.Context, opt repository.CreateUserOptions) (model.User, error) {
	user := model.User{
		ID:           uuid.NewString(),
		Login:        opt.Login,
		PasswordHash: opt.PasswordHash,
		Role:         opt.Role,
		CreatedAt:    time.Now().UTC(),
	}

	const query = `
		INSERT INTO users (id, login, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Login, user.PasswordHash, string(user.Role), user.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return model.User{}, repository.ErrAlreadyExists
		}
		r.l.Errorf(ctx, "auth.repository.postgre.CreateUser: insert failed: %v", err)
		return model.User{}, err
	}

	return user, nil
}

func (r *implRepository) GetUserByLogin(ctx context.Context, login string) (model.User, error) {
	const query = `
		SELECT id, login, password_hash, role, created_at
		FROM users
		WHERE login = $1`

	var user model.User
	var role string
	err := r.db.QueryRowContext(ctx, query, login).Scan(
		&user.ID, &user.Login, &user.PasswordHash, &role, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "auth.repository.postgre.GetUserByLogin: query failed: %v", err)
		return model.User{}, err
	}
	user.Role = model.Role(role)

	return user, nil
}
