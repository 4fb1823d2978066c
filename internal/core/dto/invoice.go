package dto

import "github.com/rafaelleal24/sales/internal/core/domain"

const InvoiceMaxItems = 100

type InvoiceItem struct {
	ProductID domain.ID `json:"product_id" validate:"required,len=24,hexadecimal"`
	Quantity  int       `json:"quantity" validate:"gt=0"`
}

type IssueInvoiceRequest struct {
	ClientID domain.ID     `json:"client_id" validate:"required,len=24,hexadecimal"`
	Items    []InvoiceItem `json:"items" validate:"required,min=1,max=100,dive"`
}
