package entity

import "github.com/golang-jwt/jwt/v5"

// Claims is the identity carried by a verified bearer token.
type Claims struct {
	UserID   string   `json:"userId"`
	Username string   `json:"username,omitempty"`
	Email    string   `json:"email,omitempty"`
	Role     UserRole `json:"role"`
	jwt.RegisteredClaims
}

// Actor is the authenticated caller of a use case.
type Actor struct {
	UserID string
	Role   UserRole
}

func (a Actor) IsAdmin() bool {
	return a.Role == UserRoleAdmin
}
