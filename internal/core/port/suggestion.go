package port

import (
	"context"

	"github.com/rafaelleal24/sales/internal/core/domain"
)

//go:generate go tool mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type SuggestionPort interface {
	SuggestEquivalent(ctx context.Context, product *domain.Product, client *domain.Client) (*domain.Product, error)
}
