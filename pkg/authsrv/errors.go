package authsrv

import "errors"

// ErrUnavailable means the auth service could not be reached (transport
// failure, persistent 5xx, or open circuit breaker). Callers map it to 503.
var ErrUnavailable = errors.New("authsrv: auth service unavailable")
