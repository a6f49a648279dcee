package model

import "time"

// Role is the access role assigned to a user. Each user carries exactly one.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// IsValid reports whether the role is one of the known values.
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User represents a stored credential record.
type User struct {
	ID           string
	Login        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}
