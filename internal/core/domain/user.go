package domain

import (
	"errors"
	"strings"
	"time"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidToken = errors.New("invalid token")
var ErrForbidden = errors.New("access forbidden")

// User models a registered actor. Role is assigned once at creation time and
// never changes afterwards; there is no deletion path in this system.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// NormalizeEmail folds an email for storage and lookup. Every path that
// touches the users collection must go through this so that the spelling a
// caller registers with and the spelling they present later always meet on
// the same key.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
