package document

import (
	"github.com/rafaelleal24/sales/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Document is a stored aggregate keyed by a Mongo ObjectID.
type Document interface {
	GetID() primitive.ObjectID
}

// ObjectID converts a domain id. Empty or malformed ids yield the zero ObjectID, which
// the driver replaces on insert and which never matches on lookups.
func ObjectID(id domain.ID) primitive.ObjectID {
	if id == "" {
		return primitive.NilObjectID
	}
	objectID, err := primitive.ObjectIDFromHex(string(id))
	if err != nil {
		return primitive.NilObjectID
	}
	return objectID
}

func DomainID(objectID primitive.ObjectID) domain.ID {
	if objectID.IsZero() {
		return ""
	}
	return domain.ID(objectID.Hex())
}
