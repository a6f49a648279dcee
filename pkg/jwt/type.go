package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Config holds JWT manager configuration. Secret is the base64-encoded
// signing key shared by every service instance.
type Config struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

// Claims is the JWT claims structure carried by access tokens.
type Claims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// managerImpl implements IManager.
type managerImpl struct {
	key    []byte
	issuer string
	ttl    time.Duration
}
