package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/clientinfo/client-registry/internal/core/domain"
	"github.com/clientinfo/client-registry/internal/core/ports"
)

// displayTimeLayout matches the en-US locale string the registry UI expects,
// e.g. "6/2/2025, 10:30:00 AM".
const displayTimeLayout = "1/2/2006, 3:04:05 PM"

// noTimestamp is rendered when a record carries no created_at value.
const noTimestamp = "N/A"

// ClientService implements the create-or-update flow and the formatted list
// view for client records.
type ClientService struct {
	repo      ports.ClientRepository
	displayTZ *time.Location
	logger    zerolog.Logger
}

// NewClientService builds a ClientService rendering timestamps in displayTZ.
// A nil location falls back to UTC.
func NewClientService(repo ports.ClientRepository, displayTZ *time.Location, logger zerolog.Logger) *ClientService {
	if displayTZ == nil {
		displayTZ = time.UTC
	}
	return &ClientService{repo: repo, displayTZ: displayTZ, logger: logger}
}

// UpsertClient resolves the three-way branch keyed on phone number:
//
//   - no existing record        → insert with created_at, OutcomeInserted
//   - exists, different purpose → update purpose + updated_at, OutcomeUpdated
//   - exists, same purpose      → domain.ErrDuplicateClient, no mutation
//
// Purpose comparison is case-insensitive and whitespace-trimmed. The unique
// index on phone_number closes the find-then-insert race: a lost race surfaces
// as ErrDuplicateClient from Insert, the same outcome a sequential duplicate
// would get.
func (s *ClientService) UpsertClient(ctx context.Context, input ports.UpsertClientInput) (*ports.UpsertClientResult, error) {
	phone := strings.TrimSpace(input.PhoneNumber)

	existing, err := s.repo.FindByPhoneNumber(ctx, phone)
	switch {
	case err == nil:
		if domain.SamePurpose(existing.Purpose, input.Purpose) {
			return nil, domain.ErrDuplicateClient
		}
		now := time.Now().UTC()
		matched, err := s.repo.UpdatePurpose(ctx, phone, input.Purpose, now)
		if err != nil {
			s.logger.Error().Err(err).Str("phone_number", phone).Msg("failed to update client record")
			return nil, err
		}
		if matched == 0 {
			// Deleted between find and update; treat as gone.
			return nil, domain.ErrClientNotFound
		}
		s.logger.Info().Str("phone_number", phone).Msg("client purpose updated")
		return &ports.UpsertClientResult{Outcome: ports.OutcomeUpdated, ID: existing.ID}, nil

	case errors.Is(err, domain.ErrClientNotFound):
		now := time.Now().UTC()
		record := &domain.ClientRecord{
			Name:        input.Name,
			PhoneNumber: phone,
			Purpose:     input.Purpose,
			CreatedAt:   &now,
		}
		created, err := s.repo.Insert(ctx, record)
		if err != nil {
			if errors.Is(err, domain.ErrDuplicateClient) {
				return nil, err
			}
			s.logger.Error().Err(err).Str("phone_number", phone).Msg("failed to insert client record")
			return nil, err
		}
		s.logger.Info().Str("phone_number", phone).Msg("client record created")
		return &ports.UpsertClientResult{Outcome: ports.OutcomeInserted, ID: created.ID}, nil

	default:
		return nil, err
	}
}

// ListClients returns all records with created_at rendered in the display
// timezone. Formatting happens at read time only; the stored instant is never
// rewritten.
func (s *ClientService) ListClients(ctx context.Context) ([]ports.ClientRecordView, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]ports.ClientRecordView, len(records))
	for i, r := range records {
		views[i] = ports.ClientRecordView{
			ID:          r.ID,
			Name:        r.Name,
			PhoneNumber: r.PhoneNumber,
			Purpose:     r.Purpose,
			CreatedAt:   s.displayTime(r.CreatedAt),
		}
		if r.UpdatedAt != nil {
			views[i].UpdatedAt = s.displayTime(r.UpdatedAt)
		}
	}
	return views, nil
}

func (s *ClientService) displayTime(t *time.Time) string {
	if t == nil {
		return noTimestamp
	}
	return t.In(s.displayTZ).Format(displayTimeLayout)
}
