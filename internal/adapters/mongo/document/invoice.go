package document

import (
	"time"

	"github.com/rafaelleal24/sales/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type InvoiceLineDocument struct {
	Product        SnapshotDocument `bson:"product"`
	Quantity       int              `bson:"quantity"`
	TotalCost      int64            `bson:"total_cost"`
	TaxAmount      int64            `bson:"tax_amount"`
	TaxDescription string           `bson:"tax_description"`
}

type InvoiceDocument struct {
	ID       primitive.ObjectID    `bson:"_id,omitempty"`
	Number   string                `bson:"number"`
	Client   ClientDataDocument    `bson:"client"`
	Lines    []InvoiceLineDocument `bson:"lines"`
	Net      int64                 `bson:"net"`
	Tax      int64                 `bson:"tax"`
	IssuedAt time.Time             `bson:"issued_at"`
}

func (doc InvoiceDocument) GetID() primitive.ObjectID {
	return doc.ID
}

func (doc *InvoiceDocument) ToDomain() *domain.Invoice {
	lines := make([]domain.InvoiceLine, len(doc.Lines))
	for i, line := range doc.Lines {
		lines[i] = domain.InvoiceLine{
			Item: domain.NewRequestItem(line.Product.ToDomain(), line.Quantity, domain.NewMoneyFromCents(line.TotalCost)),
			Tax:  domain.NewTax(domain.NewMoneyFromCents(line.TaxAmount), line.TaxDescription),
		}
	}

	return &domain.Invoice{
		ID:       DomainID(doc.ID),
		Number:   doc.Number,
		Client:   doc.Client.ToDomain(),
		Lines:    lines,
		Net:      domain.NewMoneyFromCents(doc.Net),
		Tax:      domain.NewMoneyFromCents(doc.Tax),
		IssuedAt: doc.IssuedAt,
	}
}

func ToInvoiceDocument(inv *domain.Invoice) *InvoiceDocument {
	lines := make([]InvoiceLineDocument, len(inv.Lines))
	for i, line := range inv.Lines {
		lines[i] = InvoiceLineDocument{
			Product:        ToSnapshotDocument(line.Item.Product),
			Quantity:       line.Item.Quantity,
			TotalCost:      line.Item.TotalCost.Cents(),
			TaxAmount:      line.Tax.Amount.Cents(),
			TaxDescription: line.Tax.Description,
		}
	}

	return &InvoiceDocument{
		Number:   inv.Number,
		Client:   ToClientDataDocument(inv.Client),
		Lines:    lines,
		Net:      inv.Net.Cents(),
		Tax:      inv.Tax.Cents(),
		IssuedAt: inv.IssuedAt,
	}
}
