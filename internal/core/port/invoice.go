package port

import (
	"context"

	"github.com/rafaelleal24/sales/internal/core/domain"
)

//go:generate go tool mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type InvoicePort interface {
	Create(ctx context.Context, invoice *domain.Invoice) error
	GetByID(ctx context.Context, id domain.ID) (*domain.Invoice, error)
}

type InvoiceFactory interface {
	Create(client domain.ClientData) *domain.Invoice
}

type TaxPolicy interface {
	CalculateTax(productType domain.ProductType, price domain.Money) (domain.Tax, error)
}
