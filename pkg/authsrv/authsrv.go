package authsrv

import (
	"context"
	"fmt"
)

// Login proxies a login request. The auth service's status and body are
// relayed verbatim; transport failures surface as ErrUnavailable.
func (c *clientImpl) Login(ctx context.Context, creds Credentials) (Result, error) {
	return c.post(ctx, PathLogin, creds)
}

// Register proxies a registration request.
func (c *clientImpl) Register(ctx context.Context, creds Credentials) (Result, error) {
	return c.post(ctx, PathRegister, creds)
}

// Logout proxies a logout request.
func (c *clientImpl) Logout(ctx context.Context) (Result, error) {
	return c.post(ctx, PathLogout, nil)
}

func (c *clientImpl) post(ctx context.Context, path string, body any) (Result, error) {
	if !c.breaker.allow() {
		return Result{}, fmt.Errorf("%w: circuit breaker open", ErrUnavailable)
	}

	respBody, status, err := c.httpClient.Post(ctx, c.baseURL+path, body, nil)
	if err != nil {
		c.breaker.recordFailure()
		return Result{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	c.breaker.recordSuccess()
	return Result{Status: status, Body: respBody}, nil
}
