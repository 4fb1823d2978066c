package repository

import (
	"context"

	"github.com/rafaelleal24/sales/internal/adapters/mongo/document"
	"github.com/rafaelleal24/sales/internal/adapters/outbox"
	"github.com/rafaelleal24/sales/internal/core/domain"
	"github.com/rafaelleal24/sales/internal/core/port"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type InvoiceRepository struct {
	*BaseRepository[document.InvoiceDocument]
	outbox outbox.Repository
}

func NewInvoiceRepository(db *mongo.Database, outbox outbox.Repository) port.InvoicePort {
	repo := &InvoiceRepository{
		BaseRepository: NewBaseRepository[document.InvoiceDocument](db, "invoices"),
		outbox:         outbox,
	}

	repo.EnsureIndexes(context.Background(),
		mongo.IndexModel{
			Keys:    bson.D{{Key: "number", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		mongo.IndexModel{Keys: bson.D{{Key: "client.id", Value: 1}, {Key: "issued_at", Value: -1}}},
	)

	return repo
}

// Create stores the invoice and records invoice.issued. Callers run it inside a
// transaction so both writes commit together.
func (r *InvoiceRepository) Create(ctx context.Context, invoice *domain.Invoice) error {
	id, err := r.Insert(ctx, document.ToInvoiceDocument(invoice))
	if err != nil {
		return err
	}

	invoice.ID = id
	return insertEvents(ctx, r.outbox, domain.NewInvoiceIssuedEvent(invoice))
}

func (r *InvoiceRepository) GetByID(ctx context.Context, id domain.ID) (*domain.Invoice, error) {
	doc, err := r.FindByID(ctx, string(id))
	if err != nil {
		return nil, err
	}
	return doc.ToDomain(), nil
}
