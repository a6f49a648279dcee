package jwt

import (
	"encoding/base64"
	"time"
)

// IManager defines the interface for access token issuance and verification.
// Implementations are safe for concurrent use: the signing key is decoded
// once at construction and read-only afterwards.
type IManager interface {
	GenerateAccessToken(username string, roles []string) (string, error)
	Parse(token string) (*Claims, error)
	Username(token string) (string, error)
}

// DefaultTTL applies when the configured TTL is not positive.
const DefaultTTL = 30 * time.Minute

// New creates a new JWT manager. The base64-encoded secret is decoded here;
// a malformed secret returns ErrInvalidKeyFormat.
func New(cfg Config) (IManager, error) {
	key, err := base64.StdEncoding.DecodeString(cfg.Secret)
	if err != nil || len(key) == 0 {
		return nil, ErrInvalidKeyFormat
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &managerImpl{
		key:    key,
		issuer: cfg.Issuer,
		ttl:    ttl,
	}, nil
}
