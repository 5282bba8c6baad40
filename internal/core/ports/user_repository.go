package ports

import (
	"context"

	"github.com/clientinfo/client-registry/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Create inserts a new user. Implementations must return
	// domain.ErrUserExists when the email is already taken, including when a
	// concurrent insert wins the race.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}
