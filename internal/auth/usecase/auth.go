package usecase

import (
	"context"
	"errors"

	"cloud-srv/internal/audit"
	"cloud-srv/internal/auth"
	"cloud-srv/internal/auth/repository"
	"cloud-srv/pkg/password"
)

// Login checks the submitted credentials against the stored hash and issues
// an access token carrying the user's role as the sole role claim.
func (uc *implUseCase) Login(ctx context.Context, input auth.LoginInput) (auth.LoginOutput, error) {
	user, err := uc.repo.GetUserByLogin(ctx, input.Login)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return auth.LoginOutput{}, auth.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "auth.usecase.Login: GetUserByLogin failed: %v", err)
		return auth.LoginOutput{}, err
	}

	if err := password.Compare(user.PasswordHash, input.Password); err != nil {
		return auth.LoginOutput{}, auth.ErrBadCredentials
	}

	token, err := uc.jwtManager.GenerateAccessToken(user.Login, []string{string(user.Role)})
	if err != nil {
		uc.l.Errorf(ctx, "auth.usecase.Login: GenerateAccessToken failed: %v", err)
		return auth.LoginOutput{}, err
	}

	return auth.LoginOutput{Token: token}, nil
}

// Register hashes the password and persists a new credential. Duplicate logins
// are rejected here rather than left to the store's constraint alone, so the
// caller gets a stable error instead of a driver-specific one.
func (uc *implUseCase) Register(ctx context.Context, input auth.RegisterInput) error {
	_, err := uc.repo.GetUserByLogin(ctx, input.Login)
	if err == nil {
		return auth.ErrUserAlreadyExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		uc.l.Errorf(ctx, "auth.usecase.Register: GetUserByLogin failed: %v", err)
		return err
	}

	hashed, err := password.Hash(input.Password)
	if err != nil {
		uc.l.Errorf(ctx, "auth.usecase.Register: Hash failed: %v", err)
		return err
	}

	user, err := uc.repo.CreateUser(ctx, repository.CreateUserOptions{
		Login:        input.Login,
		PasswordHash: hashed,
		Role:         input.Role,
	})
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return auth.ErrUserAlreadyExists
		}
		uc.l.Errorf(ctx, "auth.usecase.Register: CreateUser failed: %v", err)
		return err
	}

	uc.audit.Publish(ctx, audit.Event{
		Name:     audit.EventUserRegistered,
		Username: user.Login,
	})

	return nil
}
