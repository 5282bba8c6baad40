package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clientinfo/client-registry/internal/api/metrics"
	"github.com/clientinfo/client-registry/internal/core/domain"
	"github.com/clientinfo/client-registry/internal/core/ports"
)

// TokenHandler handles JWT issuance.
type TokenHandler struct {
	tokens ports.TokenService
}

func NewTokenHandler(tokens ports.TokenService) *TokenHandler {
	return &TokenHandler{tokens: tokens}
}

type issueTokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type issueTokenResponse struct {
	Token string `json:"token"`
}

// Issue handles POST /jwt — issues a 24h bearer token for a registered email.
//
// @Summary      Issue a JWT for a registered user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      issueTokenRequest  true  "User email"
// @Success      200   {object}  issueTokenResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /jwt [post]
func (h *TokenHandler) Issue(c echo.Context) error {
	var req issueTokenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	token, err := h.tokens.IssueToken(c.Request().Context(), req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.TokenRejectionsTotal.Inc()
		}
		return err
	}

	metrics.TokensIssuedTotal.Inc()
	return c.JSON(http.StatusOK, issueTokenResponse{Token: token})
}
