package api

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/clientinfo/client-registry/internal/core/domain"
)

type stubUserRepo struct {
	users map[string]*domain.User
	calls int
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.calls++
	if u, ok := r.users[email]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	return u, nil
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	return nil, nil
}

func TestRoleDirectory_NoCacheFallsThroughToStore(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*domain.User{
		"boss@example.com": {Email: "boss@example.com", Role: domain.RoleAdmin},
	}}
	dir := newRoleDirectory(repo, nil, zerolog.Nop())

	role, err := dir.RoleFor(context.Background(), "boss@example.com")
	if err != nil {
		t.Fatalf("RoleFor returned error: %v", err)
	}
	if role != domain.RoleAdmin {
		t.Fatalf("expected admin, got %s", role)
	}
	if repo.calls != 1 {
		t.Fatalf("expected exactly one store lookup, got %d", repo.calls)
	}
}

func TestRoleDirectory_UnknownUserPropagates(t *testing.T) {
	dir := newRoleDirectory(&stubUserRepo{users: map[string]*domain.User{}}, nil, zerolog.Nop())

	_, err := dir.RoleFor(context.Background(), "ghost@example.com")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
