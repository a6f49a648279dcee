package model

// Scope is the authenticated principal attached to a request after the auth
// middleware verifies a token. Lifetime is a single request.
type Scope struct {
	Username string
	Roles    []string
}
