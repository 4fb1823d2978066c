package repository

import (
	"context"
	"errors"
	"time"

	"github.com/rafaelleal24/sales/internal/adapters/mongo/document"
	"github.com/rafaelleal24/sales/internal/adapters/outbox"
	"github.com/rafaelleal24/sales/internal/core/domain"
	"github.com/rafaelleal24/sales/internal/core/port"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ReservationRepository struct {
	*BaseRepository[document.ReservationDocument]
	outbox outbox.Repository
}

func NewReservationRepository(db *mongo.Database, outbox outbox.Repository) port.ReservationPort {
	repo := &ReservationRepository{
		BaseRepository: NewBaseRepository[document.ReservationDocument](db, "reservations"),
		outbox:         outbox,
	}

	repo.EnsureIndexes(context.Background(), mongo.IndexModel{
		Keys: bson.D{{Key: "client.id", Value: 1}, {Key: "status", Value: 1}},
	})

	return repo
}

func (r *ReservationRepository) Create(ctx context.Context, reservation *domain.Reservation) error {
	if reservation.ID != "" {
		return errors.New("cannot create reservation with existing ID")
	}

	id, err := r.Insert(ctx, document.ToReservationDocument(reservation))
	if err != nil {
		return err
	}

	reservation.ID = id
	return nil
}

func (r *ReservationRepository) Load(ctx context.Context, id domain.ID) (*domain.Reservation, error) {
	doc, err := r.FindByID(ctx, string(id))
	if err != nil {
		return nil, err
	}
	return doc.ToDomain(), nil
}

// Save replaces the stored reservation and appends its pending events to the outbox.
// Callers run it inside a transaction so both writes commit together.
func (r *ReservationRepository) Save(ctx context.Context, reservation *domain.Reservation) error {
	doc := document.ToReservationDocument(reservation)
	doc.UpdatedAt = time.Now()

	if err := r.Replace(ctx, doc); err != nil {
		return err
	}

	return insertEvents(ctx, r.outbox, reservation.PullEvents()...)
}
