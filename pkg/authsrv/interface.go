package authsrv

import (
	"context"

	pkghttp "cloud-srv/pkg/http"
)

// IAuthService defines the interface for the typed auth service client used
// by the file service to proxy login, register and logout.
// Implementations are safe for concurrent use.
type IAuthService interface {
	Login(ctx context.Context, creds Credentials) (Result, error)
	Register(ctx context.Context, creds Credentials) (Result, error)
	Logout(ctx context.Context) (Result, error)
}

// New creates a new auth service client. Returns the interface.
func New(cfg Config) IAuthService {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = pkghttp.NewClient(pkghttp.DefaultConfig())
	}
	if cfg.BreakerThreshold <= 0 {
		cfg.BreakerThreshold = DefaultBreakerThreshold
	}
	if cfg.BreakerCooldown <= 0 {
		cfg.BreakerCooldown = DefaultBreakerCooldown
	}
	return &clientImpl{
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
		breaker:    newBreaker(cfg.BreakerThreshold, cfg.BreakerCooldown),
	}
}
