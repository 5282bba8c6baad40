package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/clientinfo/client-registry/internal/core/domain"
	"github.com/clientinfo/client-registry/internal/core/ports"
)

// TokenService issues and verifies HS256 bearer tokens carrying an
// {email, role} snapshot of the user at issuance time.
type TokenService struct {
	repo      ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewTokenService(repo ports.UserRepository, jwtSecret string, tokenTTL time.Duration) *TokenService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &TokenService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// IssueToken signs a token for an existing user. Unknown emails never yield a
// token. The lookup is normalized the same way registration stores it, so the
// spelling a user signed up with always resolves.
func (s *TokenService) IssueToken(ctx context.Context, email string) (string, error) {
	user, err := s.repo.FindByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"email": user.Email,
		"role":  user.Role,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// VerifyToken validates signature and expiry. Malformed, expired, and
// badly-signed tokens are indistinguishable to the caller.
func (s *TokenService) VerifyToken(token string) (*ports.TokenClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}

	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	if email == "" {
		return nil, domain.ErrInvalidToken
	}

	return &ports.TokenClaims{Email: email, Role: role}, nil
}
