package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/clientinfo/client-registry/internal/core/domain"
	"github.com/clientinfo/client-registry/internal/core/ports"
)

// UserService implements user registration and listing.
type UserService struct {
	repo   ports.UserRepository
	admins map[string]struct{}
	logger zerolog.Logger
}

// NewUserService builds a UserService. adminEmails is the allowlist of
// addresses that receive the admin role at creation; everyone else gets the
// user role. Matching is case-insensitive.
func NewUserService(repo ports.UserRepository, adminEmails []string, logger zerolog.Logger) *UserService {
	admins := make(map[string]struct{}, len(adminEmails))
	for _, e := range adminEmails {
		if e = domain.NormalizeEmail(e); e != "" {
			admins[e] = struct{}{}
		}
	}
	return &UserService{repo: repo, admins: admins, logger: logger}
}

// CreateUser registers a user, assigning the role from the allowlist. A repeat
// call with the same email is an idempotent no-op reported via AlreadyExisted,
// never an error. The unique index on email makes a lost concurrent race look
// exactly like the sequential repeat.
func (s *UserService) CreateUser(ctx context.Context, input ports.CreateUserInput) (*ports.CreateUserResult, error) {
	email := domain.NormalizeEmail(input.Email)

	existing, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return &ports.CreateUserResult{User: existing, AlreadyExisted: true}, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	user := &domain.User{
		Name:      input.Name,
		Email:     email,
		Role:      s.roleFor(email),
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if errors.Is(err, domain.ErrUserExists) {
		// Lost the insert race; the winner's document is the answer.
		winner, findErr := s.repo.FindByEmail(ctx, email)
		if findErr != nil {
			return nil, findErr
		}
		return &ports.CreateUserResult{User: winner, AlreadyExisted: true}, nil
	}
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create user")
		return nil, err
	}

	s.logger.Info().Str("email", created.Email).Str("role", created.Role).Msg("user created")
	return &ports.CreateUserResult{User: created}, nil
}

// ListUsers returns every user document.
func (s *UserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) roleFor(email string) string {
	if _, ok := s.admins[email]; ok {
		return domain.RoleAdmin
	}
	return domain.RoleUser
}
