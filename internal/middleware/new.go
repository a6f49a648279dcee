package middleware

import (
	pkgJWT "cloud-srv/pkg/jwt"
	"cloud-srv/pkg/log"
)

type Middleware struct {
	l          log.Logger
	jwtManager pkgJWT.IManager
	header     string
}

// New creates the middleware set. header is the custom token header name
// (default auth-token); the standard Authorization bearer header is always
// accepted as fallback.
func New(l log.Logger, jwtManager pkgJWT.IManager, header string) Middleware {
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
		header:     header,
	}
}
