package document

import (
	"time"

	"github.com/rafaelleal24/sales/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Price     int64              `bson:"price"`
	Type      string             `bson:"type"`
	Available bool               `bson:"available"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (doc ProductDocument) GetID() primitive.ObjectID {
	return doc.ID
}

func (doc *ProductDocument) ToDomain() *domain.Product {
	return &domain.Product{
		ID:        DomainID(doc.ID),
		Name:      doc.Name,
		Price:     domain.NewMoneyFromCents(doc.Price),
		Type:      domain.ProductType(doc.Type),
		Available: doc.Available,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}

func ToProductDocument(p *domain.Product) *ProductDocument {
	doc := &ProductDocument{
		Name:      p.Name,
		Price:     p.Price.Cents(),
		Type:      string(p.Type),
		Available: p.Available,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	doc.ID = ObjectID(p.ID)
	return doc
}

// SnapshotDocument is the product copy embedded in reservations and invoices.
type SnapshotDocument struct {
	ID    primitive.ObjectID `bson:"id"`
	Name  string             `bson:"name"`
	Price int64              `bson:"price"`
	Type  string             `bson:"type"`
}

func (doc SnapshotDocument) ToDomain() domain.ProductSnapshot {
	return domain.NewProductSnapshot(DomainID(doc.ID), doc.Name, domain.NewMoneyFromCents(doc.Price), domain.ProductType(doc.Type))
}

func ToSnapshotDocument(s domain.ProductSnapshot) SnapshotDocument {
	return SnapshotDocument{
		ID:    ObjectID(s.ID),
		Name:  s.Name,
		Price: s.Price.Cents(),
		Type:  string(s.Type),
	}
}
