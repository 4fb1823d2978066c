package service

import (
	"context"

	"github.com/rafaelleal24/sales/internal/core/domain"
	"github.com/rafaelleal24/sales/internal/core/logger"
	"github.com/rafaelleal24/sales/internal/core/port"
	"github.com/rafaelleal24/sales/internal/core/serviceerrors"
)

// BookKeeper turns an invoice request into an invoice: one tax line per requested item,
// in request order.
type BookKeeper struct {
	invoiceFactory port.InvoiceFactory
}

func NewBookKeeper(invoiceFactory port.InvoiceFactory) *BookKeeper {
	return &BookKeeper{invoiceFactory: invoiceFactory}
}

func (b *BookKeeper) Issuance(ctx context.Context, request *domain.InvoiceRequest, policy port.TaxPolicy) (*domain.Invoice, error) {
	invoice := b.invoiceFactory.Create(request.Client)

	for _, item := range request.Items() {
		tax, err := policy.CalculateTax(item.Product.Type, item.Product.Price)
		if err != nil {
			logger.Error(ctx, "bookkeeper: tax calculation failed", err, map[string]any{
				"client_id":    request.Client.ID,
				"product_id":   item.Product.ID,
				"product_type": item.Product.Type,
			})
			return nil, serviceerrors.NewPolicyError("tax calculation failed", err)
		}
		invoice.AddLine(item, tax)
	}

	return invoice, nil
}
