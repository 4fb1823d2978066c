package document

import (
	"time"

	"github.com/rafaelleal24/sales/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReservationItemDocument struct {
	Product  SnapshotDocument `bson:"product"`
	Quantity int              `bson:"quantity"`
}

type ReservationDocument struct {
	ID        primitive.ObjectID        `bson:"_id,omitempty"`
	Status    string                    `bson:"status"`
	Client    ClientDataDocument        `bson:"client"`
	Items     []ReservationItemDocument `bson:"items"`
	CreatedAt time.Time                 `bson:"created_at"`
	UpdatedAt time.Time                 `bson:"updated_at"`
}

func (doc ReservationDocument) GetID() primitive.ObjectID {
	return doc.ID
}

func (doc *ReservationDocument) ToDomain() *domain.Reservation {
	items := make([]domain.ReservationItem, len(doc.Items))
	for i, item := range doc.Items {
		items[i] = domain.ReservationItem{
			Product:  item.Product.ToDomain(),
			Quantity: item.Quantity,
		}
	}

	return domain.RestoreReservation(
		DomainID(doc.ID),
		domain.ReservationStatus(doc.Status),
		doc.Client.ToDomain(),
		doc.CreatedAt,
		items,
	)
}

func ToReservationDocument(r *domain.Reservation) *ReservationDocument {
	reservationItems := r.Items()
	items := make([]ReservationItemDocument, len(reservationItems))
	for i, item := range reservationItems {
		items[i] = ReservationItemDocument{
			Product:  ToSnapshotDocument(item.Product),
			Quantity: item.Quantity,
		}
	}

	doc := &ReservationDocument{
		Status:    string(r.Status()),
		Client:    ToClientDataDocument(r.Client),
		Items:     items,
		CreatedAt: r.CreatedAt,
		UpdatedAt: time.Now(),
	}

	doc.ID = ObjectID(r.ID)

	return doc
}
