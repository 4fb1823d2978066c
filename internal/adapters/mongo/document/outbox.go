package document

import (
	"time"

	"github.com/rafaelleal24/sales/internal/adapters/outbox"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OutboxDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	EventName  string             `bson:"event_name"`
	EntityName string             `bson:"entity_name"`
	EventData  string             `bson:"event_data"`
	Attempts   int                `bson:"attempts"`
	LastError  string             `bson:"last_error,omitempty"`
	Parked     bool               `bson:"parked"`
	CreatedAt  time.Time          `bson:"created_at"`
}

func (doc OutboxDocument) GetID() primitive.ObjectID {
	return doc.ID
}

func (doc *OutboxDocument) ToEntry() outbox.Entry {
	return outbox.Entry{
		ID:         doc.ID.Hex(),
		EventName:  doc.EventName,
		EntityName: doc.EntityName,
		EventData:  []byte(doc.EventData),
		Attempts:   doc.Attempts,
		CreatedAt:  doc.CreatedAt,
	}
}

func ToOutboxDocument(entry outbox.Entry) *OutboxDocument {
	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	return &OutboxDocument{
		EventName:  entry.EventName,
		EntityName: entry.EntityName,
		EventData:  string(entry.EventData),
		CreatedAt:  createdAt,
	}
}
