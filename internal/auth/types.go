package auth

import "cloud-srv/internal/model"

// LoginInput carries the submitted credentials.
type LoginInput struct {
	Login    string
	Password string
}

// LoginOutput carries the issued access token.
type LoginOutput struct {
	Token string
}

// RegisterInput carries the new account data. Role is decided by the caller;
// the public endpoint always passes RoleUser.
type RegisterInput struct {
	Login    string
	Password string
	Role     model.Role
}
