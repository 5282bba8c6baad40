package ports

import "context"

// TokenClaims is the decoded identity carried by a bearer token. It is a
// snapshot of the user at issuance time, not a live view.
type TokenClaims struct {
	Email string
	Role  string
}

// TokenService issues and verifies signed, expiring identity tokens.
type TokenService interface {
	// IssueToken looks up the user by email and returns a signed token with
	// the service's fixed TTL. Returns domain.ErrUserNotFound for unknown
	// emails; a token is never issued for an email that has no user.
	IssueToken(ctx context.Context, email string) (string, error)
	// VerifyToken validates signature and expiry and returns the embedded
	// claims. All failure modes (malformed, expired, bad signature) collapse
	// into domain.ErrInvalidToken.
	VerifyToken(token string) (*TokenClaims, error)
}
