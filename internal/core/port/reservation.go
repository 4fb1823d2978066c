package port

import (
	"context"

	"github.com/rafaelleal24/sales/internal/core/domain"
)

//go:generate go tool mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// ReservationPort persists reservations. Save writes the full reservation state together
// with the events it recorded.
type ReservationPort interface {
	Create(ctx context.Context, reservation *domain.Reservation) error
	Load(ctx context.Context, id domain.ID) (*domain.Reservation, error)
	Save(ctx context.Context, reservation *domain.Reservation) error
}
