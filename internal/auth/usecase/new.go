package usecase

import (
	"cloud-srv/internal/audit"
	"cloud-srv/internal/auth"
	"cloud-srv/internal/auth/repository"
	pkgJWT "cloud-srv/pkg/jwt"
	"cloud-srv/pkg/log"
)

// implUseCase implements the auth.UseCase interface
type implUseCase struct {
	l          log.Logger
	repo       repository.Repository
	jwtManager pkgJWT.IManager
	audit      audit.IPublisher
}

// New creates a new auth usecase
func New(
	l log.Logger,
	repo repository.Repository,
	jwtManager pkgJWT.IManager,
	auditPublisher audit.IPublisher,
) auth.UseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		jwtManager: jwtManager,
		audit:      auditPublisher,
	}
}
