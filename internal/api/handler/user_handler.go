package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clientinfo/client-registry/internal/api/metrics"
	"github.com/clientinfo/client-registry/internal/core/ports"
)

// UserHandler handles user registration and listing.
type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Create handles POST /users — registers a user, assigning the role from the
// admin allowlist. Repeating the call with the same email is a no-op that
// answers 200 with an already-exists message instead of an error.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "User details"
// @Success      200   {object}  createUserResponse  "email already registered; no change"
// @Success      201   {object}  createUserResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.users.CreateUser(c.Request().Context(), ports.CreateUserInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		return err
	}

	if result.AlreadyExisted {
		return c.JSON(http.StatusOK, createUserResponse{Message: "user already exists"})
	}

	metrics.UsersCreatedTotal.WithLabelValues(result.User.Role).Inc()
	return c.JSON(http.StatusCreated, createUserResponse{
		Message: "user created",
		User:    result.User,
	})
}

// List handles GET /users — returns every user document.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.users.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}
