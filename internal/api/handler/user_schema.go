package handler

import "github.com/clientinfo/client-registry/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type createUserRequest struct {
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type createUserResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user,omitempty"`
}
