package domain

import (
	"errors"
	"strings"
	"time"
)

var ErrClientNotFound = errors.New("client record not found")
var ErrDuplicateClient = errors.New("client record already exists")

// ClientRecord is a flat contact-log document keyed by phone number: at most
// one record exists per phone number. CreatedAt is set on insert and never
// touched again; UpdatedAt is set only when the purpose changes.
type ClientRecord struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	PhoneNumber string     `json:"phone_number"`
	Purpose     string     `json:"purpose"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// NormalizePurpose folds a purpose string for equivalence checks: two purposes
// that differ only in case or surrounding whitespace count as the same visit
// reason and must not produce a second write.
func NormalizePurpose(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// SamePurpose reports whether two purpose strings are equivalent under
// NormalizePurpose.
func SamePurpose(a, b string) bool {
	return NormalizePurpose(a) == NormalizePurpose(b)
}
