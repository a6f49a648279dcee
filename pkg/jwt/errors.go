package jwt

import "errors"

var (
	// ErrInvalidKeyFormat means the configured secret is not valid base64.
	// Fatal at startup; the process must not serve traffic.
	ErrInvalidKeyFormat = errors.New("jwt: invalid secret key format, must be base64 encoded")

	// ErrInvalidToken covers every verification failure: bad signature,
	// wrong issuer, expired, malformed. Callers must not distinguish
	// sub-reasons in client responses.
	ErrInvalidToken = errors.New("jwt: invalid token")
)
