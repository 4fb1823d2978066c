package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rafaelleal24/sales/internal/core/domain"
	"github.com/rafaelleal24/sales/internal/core/dto"
	"github.com/rafaelleal24/sales/internal/core/logger"
	"github.com/rafaelleal24/sales/internal/core/port"
	"github.com/rafaelleal24/sales/internal/core/serviceerrors"
	"github.com/rafaelleal24/sales/internal/core/validation"
)

type ProductService struct {
	productRepository port.ProductPort
	productCache      port.CachePort[domain.Product]
	cacheTTL          time.Duration
}

func NewProductService(productRepository port.ProductPort, productCache port.CachePort[domain.Product], cacheTTL time.Duration) *ProductService {
	return &ProductService{
		productRepository: productRepository,
		productCache:      productCache,
		cacheTTL:          cacheTTL,
	}
}

func (s *ProductService) getCacheKey(productID domain.ID) string {
	return fmt.Sprintf("product:%s", productID)
}

func (s *ProductService) CreateProduct(ctx context.Context, request *dto.CreateProductRequest) (*domain.Product, error) {
	if err := validation.Validate(request); err != nil {
		return nil, err
	}

	product := domain.NewProduct(request.Name, domain.NewMoneyFromCents(request.Price), request.Type)

	if err := s.productRepository.Create(ctx, product); err != nil {
		logger.Error(ctx, "product: create failed", err, map[string]any{
			"name":  request.Name,
			"price": request.Price,
			"type":  request.Type,
		})
		return nil, err
	}

	logger.Info(ctx, "Product created", map[string]any{"product_id": product.ID})
	return product, nil
}

func (s *ProductService) GetProductByID(ctx context.Context, id domain.ID) (*domain.Product, error) {
	cached, err := s.productCache.Get(ctx, s.getCacheKey(id))
	if err != nil {
		logger.Error(ctx, "cache: get product failed", err, map[string]any{
			"product_id": id,
		})
	}
	if cached != nil {
		return cached, nil
	}

	product, err := s.productRepository.GetByID(ctx, id)
	if err != nil {
		return nil, serviceerrors.WithMessage(err, serviceerrors.KindNotFound, "product not found")
	}

	if err := s.productCache.Set(ctx, s.getCacheKey(id), product, s.cacheTTL); err != nil {
		logger.Error(ctx, "cache: set product failed", err, map[string]any{
			"product_id": id,
		})
	}
	return product, nil
}

func (s *ProductService) GetAll(ctx context.Context) ([]*domain.Product, error) {
	return s.productRepository.GetAll(ctx)
}

// RemoveProduct withdraws a product from sale. Reservations keep the snapshot they took.
func (s *ProductService) RemoveProduct(ctx context.Context, id domain.ID) error {
	product, err := s.productRepository.GetByID(ctx, id)
	if err != nil {
		return serviceerrors.WithMessage(err, serviceerrors.KindNotFound, "product not found")
	}
	if !product.Available {
		return serviceerrors.NewUnprocessableEntityError("product already removed")
	}

	product.MarkAsRemoved()
	if err := s.productRepository.Update(ctx, product); err != nil {
		logger.Error(ctx, "product: remove failed", err, map[string]any{
			"product_id": id,
		})
		return err
	}

	if err := s.productCache.Del(ctx, s.getCacheKey(id)); err != nil {
		logger.Error(ctx, "cache: delete product failed", err, map[string]any{
			"product_id": id,
		})
	}

	logger.Info(ctx, "Product removed", map[string]any{"product_id": id})
	return nil
}
