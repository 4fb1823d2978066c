package repository

import (
	"context"
	"errors"

	"github.com/rafaelleal24/sales/internal/adapters/mongo/document"
	"github.com/rafaelleal24/sales/internal/adapters/outbox"
	"github.com/rafaelleal24/sales/internal/core/serviceerrors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type OutboxRepository struct {
	*BaseRepository[document.OutboxDocument]
}

func NewOutboxRepository(db *mongo.Database) outbox.Repository {
	repo := &OutboxRepository{
		BaseRepository: NewBaseRepository[document.OutboxDocument](db, "outbox"),
	}
	repo.EnsureIndexes(context.Background(), mongo.IndexModel{
		Keys: bson.D{{Key: "parked", Value: 1}, {Key: "created_at", Value: 1}},
	})
	return repo
}

// Insert uses ctx, so the entry commits with the surrounding session when there is one.
func (r *OutboxRepository) Insert(ctx context.Context, entry outbox.Entry) error {
	_, err := r.BaseRepository.Insert(ctx, document.ToOutboxDocument(entry))
	return err
}

func (r *OutboxRepository) FetchPending(ctx context.Context, limit int) ([]outbox.Entry, error) {
	opts := options.Find().
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})

	docs, err := r.Find(ctx, bson.M{"parked": bson.M{"$ne": true}}, opts)
	if err != nil {
		return nil, err
	}

	entries := make([]outbox.Entry, len(docs))
	for i := range docs {
		entries[i] = docs[i].ToEntry()
	}
	return entries, nil
}

func (r *OutboxRepository) RecordFailure(ctx context.Context, id string, cause string) (int, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, parseError(err)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc document.OutboxDocument
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, bson.M{
		"$inc": bson.M{"attempts": 1},
		"$set": bson.M{"last_error": cause},
	}, opts).Decode(&doc)
	if err != nil {
		return 0, parseError(err)
	}
	return doc.Attempts, nil
}

func (r *OutboxRepository) Park(ctx context.Context, id string) error {
	return r.Update(ctx, id, bson.M{"parked": true})
}

func (r *OutboxRepository) Delete(ctx context.Context, id string) error {
	err := r.DeleteByID(ctx, id)
	var svcErr *serviceerrors.ServiceError
	// already relayed by a concurrent handler
	if errors.As(err, &svcErr) && svcErr.Kind == serviceerrors.KindNotFound {
		return nil
	}
	return err
}
