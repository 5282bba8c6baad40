package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/clientinfo/client-registry/internal/core/domain"
)

const clientsCollection = "clients"

// ClientRepository persists client records keyed by phone number. The unique
// phone_number index (see EnsureIndexes) is the source of truth for the
// at-most-one-record-per-phone invariant.
type ClientRepository struct {
	coll *mongo.Collection
}

func NewClientRepository(db *mongo.Database) *ClientRepository {
	return &ClientRepository{coll: db.Collection(clientsCollection)}
}

type mongoClient struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	PhoneNumber string             `bson:"phone_number"`
	Purpose     string             `bson:"purpose"`
	CreatedAt   *time.Time         `bson:"created_at,omitempty"`
	UpdatedAt   *time.Time         `bson:"updated_at,omitempty"`
}

func (mc mongoClient) toDomain() *domain.ClientRecord {
	rec := &domain.ClientRecord{
		ID:          mc.ID.Hex(),
		Name:        mc.Name,
		PhoneNumber: mc.PhoneNumber,
		Purpose:     mc.Purpose,
	}
	if mc.CreatedAt != nil {
		t := mc.CreatedAt.UTC()
		rec.CreatedAt = &t
	}
	if mc.UpdatedAt != nil {
		t := mc.UpdatedAt.UTC()
		rec.UpdatedAt = &t
	}
	return rec
}

func (r *ClientRepository) Insert(ctx context.Context, record *domain.ClientRecord) (*domain.ClientRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoClient{
		Name:        record.Name,
		PhoneNumber: record.PhoneNumber,
		Purpose:     record.Purpose,
		CreatedAt:   record.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateClient
		}
		return nil, fmt.Errorf("insert client record: %w", err)
	}

	created := *record
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *ClientRepository) FindByPhoneNumber(ctx context.Context, phoneNumber string) (*domain.ClientRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mc mongoClient
	if err := r.coll.FindOne(ctx, bson.M{"phone_number": phoneNumber}).Decode(&mc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("find client record: %w", err)
	}
	return mc.toDomain(), nil
}

// UpdatePurpose sets purpose and updated_at on the matching record; created_at
// and phone_number are never touched.
func (r *ClientRepository) UpdatePurpose(ctx context.Context, phoneNumber, purpose string, updatedAt time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"phone_number": phoneNumber},
		bson.M{"$set": bson.M{"purpose": purpose, "updated_at": updatedAt}},
	)
	if err != nil {
		return 0, fmt.Errorf("update client record: %w", err)
	}
	return res.MatchedCount, nil
}

func (r *ClientRepository) List(ctx context.Context) ([]*domain.ClientRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list client records: %w", err)
	}
	defer cur.Close(ctx)

	records := make([]*domain.ClientRecord, 0)
	for cur.Next(ctx) {
		var mc mongoClient
		if err := cur.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode client record: %w", err)
		}
		records = append(records, mc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list client records: %w", err)
	}
	return records, nil
}

// EnsureIndexes creates the unique phone_number index.
func (r *ClientRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "phone_number", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
