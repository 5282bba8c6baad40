package ports

import (
	"context"

	"github.com/clientinfo/client-registry/internal/core/domain"
)

// CreateUserInput carries the data needed to register a user. Role is not
// accepted from the caller; the service assigns it from the admin allowlist.
type CreateUserInput struct {
	Name  string
	Email string
}

// CreateUserResult is returned by CreateUser.
type CreateUserResult struct {
	User *domain.User
	// AlreadyExisted is true when a user with the same email was already
	// registered; the call is then an idempotent no-op, not an error.
	AlreadyExisted bool
}

// UserService defines use-case operations for users.
type UserService interface {
	CreateUser(ctx context.Context, input CreateUserInput) (*CreateUserResult, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
}
