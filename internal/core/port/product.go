package port

import (
	"context"

	"github.com/rafaelleal24/sales/internal/core/domain"
)

//go:generate go tool mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type ProductPort interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id domain.ID) (*domain.Product, error)
	GetAll(ctx context.Context) ([]*domain.Product, error)
	FindAvailableNearPrice(ctx context.Context, productType domain.ProductType, price domain.Money, limit int64) ([]*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
}
