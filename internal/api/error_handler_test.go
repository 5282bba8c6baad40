package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/clientinfo/client-registry/internal/core/domain"
)

func renderError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewHTTPErrorHandler(zerolog.Nop())
	handler(err, c)
	return rec
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"unknown user on token issuance", domain.ErrUserNotFound, http.StatusUnauthorized, "user not found"},
		{"invalid token", domain.ErrInvalidToken, http.StatusUnauthorized, "invalid token"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "access forbidden"},
		{"duplicate client", domain.ErrDuplicateClient, http.StatusConflict, "client record already exists"},
		{"user exists", domain.ErrUserExists, http.StatusConflict, "user already exists"},
		{"client not found", domain.ErrClientNotFound, http.StatusNotFound, "client record not found"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := renderError(t, tc.err)
			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			if !strings.Contains(rec.Body.String(), tc.msg) {
				t.Fatalf("expected message %q in body %s", tc.msg, rec.Body.String())
			}
		})
	}
}

func TestHTTPErrorHandler_EchoErrorsPassThrough(t *testing.T) {
	rec := renderError(t, echo.NewHTTPError(http.StatusUnprocessableEntity, "name is required"))
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "name is required") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestHTTPErrorHandler_UnexpectedErrorIsGeneric(t *testing.T) {
	rec := renderError(t, errors.New("connection reset by peer"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "connection reset") {
		t.Fatalf("internal detail leaked to client: %s", rec.Body.String())
	}
}
