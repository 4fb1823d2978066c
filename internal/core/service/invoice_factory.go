package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/rafaelleal24/sales/internal/core/domain"
)

type InvoiceFactory struct {
	now func() time.Time
}

func NewInvoiceFactory() *InvoiceFactory {
	return &InvoiceFactory{now: time.Now}
}

// Create returns an empty invoice for the client with a fresh invoice number.
func (f *InvoiceFactory) Create(client domain.ClientData) *domain.Invoice {
	return domain.NewInvoice(uuid.NewString(), client, f.now().UTC())
}
