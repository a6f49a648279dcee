package authsrv

import "time"

const (
	PathLogin    = "/cloud/login"
	PathRegister = "/cloud/register"
	PathLogout   = "/cloud/logout"

	// DefaultBreakerThreshold is the default consecutive-failure limit.
	DefaultBreakerThreshold = 5
	// DefaultBreakerCooldown is the default open-state duration.
	DefaultBreakerCooldown = 30 * time.Second
)
