package document

import (
	"time"

	"github.com/rafaelleal24/sales/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ClientDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (doc ClientDocument) GetID() primitive.ObjectID {
	return doc.ID
}

func (doc *ClientDocument) ToDomain() *domain.Client {
	return &domain.Client{
		ID:        DomainID(doc.ID),
		Name:      doc.Name,
		CreatedAt: doc.CreatedAt,
	}
}

func ToClientDocument(c *domain.Client) *ClientDocument {
	return &ClientDocument{
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
	}
}

type ClientDataDocument struct {
	ID   primitive.ObjectID `bson:"id"`
	Name string             `bson:"name"`
}

func (doc ClientDataDocument) ToDomain() domain.ClientData {
	return domain.NewClientData(DomainID(doc.ID), doc.Name)
}

func ToClientDataDocument(c domain.ClientData) ClientDataDocument {
	return ClientDataDocument{ID: ObjectID(c.ID), Name: c.Name}
}
