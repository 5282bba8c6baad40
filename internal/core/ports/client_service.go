package ports

import (
	"context"
)

// UpsertClientInput carries the data for the create-or-update endpoint.
type UpsertClientInput struct {
	Name        string
	PhoneNumber string
	Purpose     string
}

// UpsertOutcome names the three possible results of an upsert.
type UpsertOutcome string

const (
	OutcomeInserted UpsertOutcome = "inserted"
	OutcomeUpdated  UpsertOutcome = "updated"
)

// UpsertClientResult is returned by UpsertClient. Exactly one of the outcome
// fields applies; the duplicate case surfaces as domain.ErrDuplicateClient
// instead of a result.
type UpsertClientResult struct {
	Outcome UpsertOutcome
	// ID is the record identity: the new document id on insert, the existing
	// one on update.
	ID string
}

// ClientRecordView is the read model for the list endpoint. CreatedAt is the
// stored instant rendered in the configured display timezone, or the literal
// "N/A" when the record has no timestamp.
type ClientRecordView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Purpose     string `json:"purpose"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

// ClientService defines use-case operations for client records.
type ClientService interface {
	UpsertClient(ctx context.Context, input UpsertClientInput) (*UpsertClientResult, error)
	ListClients(ctx context.Context) ([]ClientRecordView, error)
}
