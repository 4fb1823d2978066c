package dto

import "github.com/rafaelleal24/sales/internal/core/domain"

type OpenReservationRequest struct {
	ClientID domain.ID `json:"client_id" validate:"required,len=24,hexadecimal"`
}

// AddProductRequest is the body of POST /reservations/:id/items; the reservation id
// comes from the path.
type AddProductRequest struct {
	ProductID domain.ID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity"`
}
