package repository

import (
	"context"
	"time"

	"github.com/rafaelleal24/sales/internal/adapters/mongo/document"
	"github.com/rafaelleal24/sales/internal/adapters/outbox"
	"github.com/rafaelleal24/sales/internal/core/domain"
	"github.com/rafaelleal24/sales/internal/core/port"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProductRepository struct {
	*BaseRepository[document.ProductDocument]
	txManager port.TransactionManager
	outbox    outbox.Repository
}

func NewProductRepository(db *mongo.Database, outbox outbox.Repository, txManager port.TransactionManager) port.ProductPort {
	repo := &ProductRepository{
		BaseRepository: NewBaseRepository[document.ProductDocument](db, "products"),
		txManager:      txManager,
		outbox:         outbox,
	}

	// serves FindAvailableNearPrice
	repo.EnsureIndexes(context.Background(), mongo.IndexModel{
		Keys: bson.D{
			{Key: "type", Value: 1},
			{Key: "available", Value: 1},
			{Key: "price", Value: 1},
		},
	})

	return repo
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	id, err := r.Insert(ctx, document.ToProductDocument(product))
	if err != nil {
		return err
	}

	product.ID = id
	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id domain.ID) (*domain.Product, error) {
	doc, err := r.FindByID(ctx, string(id))
	if err != nil {
		return nil, err
	}

	return doc.ToDomain(), nil
}

func (r *ProductRepository) GetAll(ctx context.Context) ([]*domain.Product, error) {
	docs, err := r.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	return toProducts(docs), nil
}

// FindAvailableNearPrice returns up to limit available products priced at or above
// price and up to limit priced below it, each side ordered outward from price.
// The closest match is always among them.
func (r *ProductRepository) FindAvailableNearPrice(ctx context.Context, productType domain.ProductType, price domain.Money, limit int64) ([]*domain.Product, error) {
	filter := func(op string) bson.M {
		return bson.M{
			"type":      string(productType),
			"available": true,
			"price":     bson.M{op: price.Cents()},
		}
	}

	above, err := r.Find(ctx, filter("$gte"), options.Find().
		SetLimit(limit).
		SetSort(bson.D{{Key: "price", Value: 1}, {Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}

	below, err := r.Find(ctx, filter("$lt"), options.Find().
		SetLimit(limit).
		SetSort(bson.D{{Key: "price", Value: -1}, {Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}

	return append(toProducts(above), toProducts(below)...), nil
}

// Update writes the product fields. Removing a product from sale also records a
// product.removed event in the same transaction.
func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	return r.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		product.UpdatedAt = time.Now()
		err := r.BaseRepository.Update(txCtx, string(product.ID), bson.M{
			"name":       product.Name,
			"price":      product.Price.Cents(),
			"type":       string(product.Type),
			"available":  product.Available,
			"updated_at": product.UpdatedAt,
		})
		if err != nil {
			return err
		}

		if !product.Available {
			return insertEvents(txCtx, r.outbox, domain.NewProductRemovedEvent(product))
		}
		return nil
	})
}

func toProducts(docs []document.ProductDocument) []*domain.Product {
	products := make([]*domain.Product, len(docs))
	for i, doc := range docs {
		products[i] = doc.ToDomain()
	}
	return products
}
