package authsrv

import (
	"sync"
	"time"

	pkghttp "cloud-srv/pkg/http"
)

// Config holds configuration for the auth service client.
type Config struct {
	BaseURL string
	// HTTPClient overrides the default retrying client, mainly for tests.
	HTTPClient pkghttp.IClient
	// BreakerThreshold is the number of consecutive failures that opens
	// the circuit breaker.
	BreakerThreshold int
	// BreakerCooldown is how long the breaker stays open before the next
	// attempt is allowed through.
	BreakerCooldown time.Duration
}

// Credentials is the login/register request body.
type Credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// Result is the proxied outcome: the auth service's exact status and body.
// Transport-level failures surface as an error instead.
type Result struct {
	Status int
	Body   []byte
}

// clientImpl implements IAuthService.
type clientImpl struct {
	baseURL    string
	httpClient pkghttp.IClient
	breaker    *breaker
}

// breaker is a consecutive-failure circuit breaker. While open, calls fail
// fast with ErrUnavailable until the cooldown elapses.
type breaker struct {
	mu        sync.Mutex
	threshold int
	cooldown  time.Duration
	failures  int
	openUntil time.Time
}

func newBreaker(threshold int, cooldown time.Duration) *breaker {
	return &breaker{threshold: threshold, cooldown: cooldown}
}

// allow reports whether a call may proceed.
func (b *breaker) allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return time.Now().After(b.openUntil)
}

func (b *breaker) recordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures = 0
}

func (b *breaker) recordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures++
	if b.failures >= b.threshold {
		b.openUntil = time.Now().Add(b.cooldown)
		b.failures = 0
	}
}
