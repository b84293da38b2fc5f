package models

import (
	"fmt"
	"time"
)

// Role is the authorization tag carried by every user account and every
// session token. It is a closed enumeration: accounts are created as either
// job seeker or employer and never change role afterwards.
type Role string

const (
	RoleJobSeeker Role = "job_seeker"
	RoleEmployer  Role = "employer"

	// RoleAny is a wildcard accepted by access guards to mean "any
	// authenticated role". It is never a valid stored role.
	RoleAny Role = ""
)

// ParseRole converts the wire representation of a role into a Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleJobSeeker:
		return RoleJobSeeker, nil
	case RoleEmployer:
		return RoleEmployer, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Valid reports whether r is one of the enumerated account roles.
func (r Role) Valid() bool {
	return r == RoleJobSeeker || r == RoleEmployer
}

// User represents a user account in the system.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose this to the client
	Role         Role      `json:"role"`
	DisplayName  string    `json:"displayName,omitempty"` // Person or company name, presentation only
	CreatedAt    time.Time `json:"createdAt"`
}
