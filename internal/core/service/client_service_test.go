package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/clientinfo/client-registry/internal/core/domain"
	"github.com/clientinfo/client-registry/internal/core/ports"
)

type stubClientRepo struct {
	records map[string]*domain.ClientRecord
}

func newStubClientRepo() *stubClientRepo {
	return &stubClientRepo{records: make(map[string]*domain.ClientRecord)}
}

func cloneRecord(r *domain.ClientRecord) *domain.ClientRecord {
	if r == nil {
		return nil
	}
	clone := *r
	if r.CreatedAt != nil {
		t := *r.CreatedAt
		clone.CreatedAt = &t
	}
	if r.UpdatedAt != nil {
		t := *r.UpdatedAt
		clone.UpdatedAt = &t
	}
	return &clone
}

func (r *stubClientRepo) FindByPhoneNumber(_ context.Context, phone string) (*domain.ClientRecord, error) {
	if rec, ok := r.records[phone]; ok {
		return cloneRecord(rec), nil
	}
	return nil, domain.ErrClientNotFound
}

func (r *stubClientRepo) Insert(_ context.Context, record *domain.ClientRecord) (*domain.ClientRecord, error) {
	if _, exists := r.records[record.PhoneNumber]; exists {
		return nil, domain.ErrDuplicateClient
	}
	copy := cloneRecord(record)
	if copy.ID == "" {
		copy.ID = record.PhoneNumber
	}
	r.records[copy.PhoneNumber] = cloneRecord(copy)
	return cloneRecord(copy), nil
}

func (r *stubClientRepo) UpdatePurpose(_ context.Context, phone, purpose string, updatedAt time.Time) (int64, error) {
	rec, ok := r.records[phone]
	if !ok {
		return 0, nil
	}
	rec.Purpose = purpose
	rec.UpdatedAt = &updatedAt
	return 1, nil
}

func (r *stubClientRepo) List(_ context.Context) ([]*domain.ClientRecord, error) {
	out := make([]*domain.ClientRecord, 0, len(r.records))
	for _, rec := range r.records {
		out = append(out, cloneRecord(rec))
	}
	return out, nil
}

func TestClientService_Upsert_NewPhoneInserts(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, time.UTC, zerolog.Nop())

	result, err := svc.UpsertClient(context.Background(), ports.UpsertClientInput{
		Name:        "Alice",
		PhoneNumber: "01700000001",
		Purpose:     "Consultation",
	})
	if err != nil {
		t.Fatalf("UpsertClient returned error: %v", err)
	}
	if result.Outcome != ports.OutcomeInserted {
		t.Fatalf("expected inserted outcome, got %s", result.Outcome)
	}

	stored := repo.records["01700000001"]
	if stored == nil {
		t.Fatalf("record not stored")
	}
	if stored.CreatedAt == nil {
		t.Fatalf("insert must stamp created_at")
	}
	if stored.UpdatedAt != nil {
		t.Fatalf("fresh insert must not carry updated_at")
	}
}

func TestClientService_Upsert_EquivalentPurposeIsDuplicate(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, time.UTC, zerolog.Nop())

	if _, err := svc.UpsertClient(context.Background(), ports.UpsertClientInput{
		Name: "Alice", PhoneNumber: "01700000001", Purpose: "Consultation",
	}); err != nil {
		t.Fatalf("seed insert failed: %v", err)
	}
	before := cloneRecord(repo.records["01700000001"])

	// Case and surrounding whitespace must not count as a new purpose.
	_, err := svc.UpsertClient(context.Background(), ports.UpsertClientInput{
		Name: "Alice", PhoneNumber: "01700000001", Purpose: "  CONSULTATION ",
	})
	if err != domain.ErrDuplicateClient {
		t.Fatalf("expected ErrDuplicateClient, got %v", err)
	}

	after := repo.records["01700000001"]
	if after.Purpose != before.Purpose || after.UpdatedAt != nil {
		t.Fatalf("duplicate submission must not mutate the record: %+v", after)
	}
}

func TestClientService_Upsert_DifferentPurposeUpdates(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, time.UTC, zerolog.Nop())

	if _, err := svc.UpsertClient(context.Background(), ports.UpsertClientInput{
		Name: "Alice", PhoneNumber: "01700000001", Purpose: "Consultation",
	}); err != nil {
		t.Fatalf("seed insert failed: %v", err)
	}
	createdAt := *repo.records["01700000001"].CreatedAt

	result, err := svc.UpsertClient(context.Background(), ports.UpsertClientInput{
		Name: "Alice", PhoneNumber: "01700000001", Purpose: "Follow-up",
	})
	if err != nil {
		t.Fatalf("UpsertClient returned error: %v", err)
	}
	if result.Outcome != ports.OutcomeUpdated {
		t.Fatalf("expected updated outcome, got %s", result.Outcome)
	}

	stored := repo.records["01700000001"]
	if stored.Purpose != "Follow-up" {
		t.Fatalf("purpose not updated: %q", stored.Purpose)
	}
	if stored.UpdatedAt == nil {
		t.Fatalf("update must stamp updated_at")
	}
	if !stored.CreatedAt.Equal(createdAt) {
		t.Fatalf("update must not touch created_at")
	}
	if stored.PhoneNumber != "01700000001" {
		t.Fatalf("update must not touch phone_number")
	}
}

// raceClientRepo seeds a competing record after the initial lookup, simulating
// a concurrent writer landing between find and insert.
type raceClientRepo struct {
	*stubClientRepo
}

func (r *raceClientRepo) Insert(ctx context.Context, record *domain.ClientRecord) (*domain.ClientRecord, error) {
	now := time.Now().UTC()
	r.records[record.PhoneNumber] = &domain.ClientRecord{
		ID: "winner", PhoneNumber: record.PhoneNumber, Purpose: record.Purpose, CreatedAt: &now,
	}
	return r.stubClientRepo.Insert(ctx, record)
}

func TestClientService_Upsert_LostInsertRaceIsDuplicate(t *testing.T) {
	repo := &raceClientRepo{stubClientRepo: newStubClientRepo()}
	svc := NewClientService(repo, time.UTC, zerolog.Nop())

	_, err := svc.UpsertClient(context.Background(), ports.UpsertClientInput{
		Name: "Bob", PhoneNumber: "01700000002", Purpose: "Consultation",
	})
	if err != domain.ErrDuplicateClient {
		t.Fatalf("expected ErrDuplicateClient from lost race, got %v", err)
	}
}

func TestClientService_List_FormatsCreatedAtInDisplayZone(t *testing.T) {
	dhaka, err := time.LoadLocation("Asia/Dhaka")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	repo := newStubClientRepo()
	created := time.Date(2025, 6, 2, 4, 30, 0, 0, time.UTC) // 10:30 AM in Dhaka (+06)
	repo.records["01700000001"] = &domain.ClientRecord{
		ID: "1", Name: "Alice", PhoneNumber: "01700000001", Purpose: "Consultation", CreatedAt: &created,
	}

	svc := NewClientService(repo, dhaka, zerolog.Nop())
	views, err := svc.ListClients(context.Background())
	if err != nil {
		t.Fatalf("ListClients returned error: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 view, got %d", len(views))
	}
	if views[0].CreatedAt != "6/2/2025, 10:30:00 AM" {
		t.Fatalf("unexpected display time: %q", views[0].CreatedAt)
	}
}

func TestClientService_List_MissingCreatedAtRendersNA(t *testing.T) {
	repo := newStubClientRepo()
	repo.records["01700000009"] = &domain.ClientRecord{
		ID: "9", Name: "Legacy", PhoneNumber: "01700000009", Purpose: "Unknown",
	}

	svc := NewClientService(repo, time.UTC, zerolog.Nop())
	views, err := svc.ListClients(context.Background())
	if err != nil {
		t.Fatalf("ListClients returned error: %v", err)
	}
	if views[0].CreatedAt != "N/A" {
		t.Fatalf("expected N/A marker, got %q", views[0].CreatedAt)
	}
}
