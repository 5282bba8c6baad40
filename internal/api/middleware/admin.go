package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clientinfo/client-registry/internal/core/domain"
)

// RoleLookup resolves the stored role for an authenticated email. The token's
// own role claim is deliberately not trusted here: the gate re-reads the
// stored role so a token issued before any hypothetical role change cannot
// outrank the database.
type RoleLookup interface {
	RoleFor(ctx context.Context, email string) (string, error)
}

// AdminOnly permits the request only when the authenticated user's stored
// role is admin. Requires Auth to have run first; a missing email claim means
// the chain is miswired and is treated as unauthenticated.
func AdminOnly(roles RoleLookup) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, _ := c.Get("email").(string)
			if email == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}

			role, err := roles.RoleFor(c.Request().Context(), email)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					return echo.NewHTTPError(http.StatusForbidden, "forbidden")
				}
				return err
			}
			if role != domain.RoleAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}

			return next(c)
		}
	}
}
