package ports

import (
	"context"
	"time"

	"github.com/clientinfo/client-registry/internal/core/domain"
)

// ClientRepository defines persistence operations for client records.
type ClientRepository interface {
	FindByPhoneNumber(ctx context.Context, phoneNumber string) (*domain.ClientRecord, error)
	// Insert stores a new record. Implementations must return
	// domain.ErrDuplicateClient when the phone number is already taken,
	// including when a concurrent insert wins the race.
	Insert(ctx context.Context, record *domain.ClientRecord) (*domain.ClientRecord, error)
	// UpdatePurpose sets a new purpose and updated_at on the record with the
	// given phone number and reports how many documents matched.
	UpdatePurpose(ctx context.Context, phoneNumber, purpose string, updatedAt time.Time) (int64, error)
	List(ctx context.Context) ([]*domain.ClientRecord, error)
}
