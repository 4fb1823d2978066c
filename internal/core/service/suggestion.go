package service

import (
	"context"

	"github.com/rafaelleal24/sales/internal/core/domain"
	"github.com/rafaelleal24/sales/internal/core/logger"
	"github.com/rafaelleal24/sales/internal/core/port"
	"github.com/rafaelleal24/sales/internal/core/serviceerrors"
)

// candidates fetched on each side of the removed product's price
const defaultSuggestionCandidates = 50

// SuggestionService proposes an available product of the same type whose price is
// closest to the unavailable one. Ties are broken by name.
type SuggestionService struct {
	productRepository port.ProductPort
	candidates        int64
}

func NewSuggestionService(productRepository port.ProductPort, candidates int64) *SuggestionService {
	if candidates <= 0 {
		candidates = defaultSuggestionCandidates
	}
	return &SuggestionService{productRepository: productRepository, candidates: candidates}
}

func (s *SuggestionService) SuggestEquivalent(ctx context.Context, product *domain.Product, client *domain.Client) (*domain.Product, error) {
	candidates, err := s.productRepository.FindAvailableNearPrice(ctx, product.Type, product.Price, s.candidates)
	if err != nil {
		return nil, err
	}

	var best *domain.Product
	for _, candidate := range candidates {
		if candidate.ID == product.ID || !candidate.Available {
			continue
		}
		if best == nil || closer(candidate, best, product.Price) {
			best = candidate
		}
	}

	if best == nil {
		logger.Warn(ctx, "suggestion: no equivalent product", map[string]any{
			"product_id": product.ID,
			"type":       product.Type,
			"client_id":  client.ID,
		})
		return nil, serviceerrors.NewPolicyError("no equivalent product available", nil)
	}

	logger.Info(ctx, "suggestion: equivalent product found", map[string]any{
		"product_id":    product.ID,
		"substitute_id": best.ID,
		"client_id":     client.ID,
	})
	return best, nil
}

func closer(a, b *domain.Product, target domain.Money) bool {
	da, db := distance(a.Price, target), distance(b.Price, target)
	if da != db {
		return da < db
	}
	return a.Name < b.Name
}

func distance(a, b domain.Money) int64 {
	d := a.Cents() - b.Cents()
	if d < 0 {
		return -d
	}
	return d
}
