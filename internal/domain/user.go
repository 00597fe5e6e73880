package domain

import "time"

type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	Id        UserId
	Name      string
	Email     Email
	Role      Role
	IsActive  bool
	CreatedAt time.Time
}

// Credential is stored separately from the user row and never leaves the
// auth service. Immutable after registration (no password-change flow).
type Credential struct {
	UserId       UserId
	PasswordHash string
}

// Claims is the identity snapshot embedded in an access token. Role and name
// reflect the user at issuance time and can go stale until the token expires.
type Claims struct {
	UserId UserId
	Email  Email
	Role   Role
	Name   string
}
