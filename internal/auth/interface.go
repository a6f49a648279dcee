package auth

import (
	"context"
)

// UseCase orchestrates credential checks and token issuance.
type UseCase interface {
	Login(ctx context.Context, input LoginInput) (LoginOutput, error)
	Register(ctx context.Context, input RegisterInput) error
}
