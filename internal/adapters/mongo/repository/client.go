package repository

import (
	"context"

	"github.com/rafaelleal24/sales/internal/adapters/mongo/document"
	"github.com/rafaelleal24/sales/internal/core/domain"
	"github.com/rafaelleal24/sales/internal/core/port"
	"go.mongodb.org/mongo-driver/mongo"
)

type ClientRepository struct {
	*BaseRepository[document.ClientDocument]
}

func NewClientRepository(db *mongo.Database) port.ClientPort {
	return &ClientRepository{
		BaseRepository: NewBaseRepository[document.ClientDocument](db, "clients"),
	}
}

func (r *ClientRepository) Create(ctx context.Context, client *domain.Client) error {
	id, err := r.Insert(ctx, document.ToClientDocument(client))
	if err != nil {
		return err
	}
	client.ID = id
	return nil
}

func (r *ClientRepository) GetByID(ctx context.Context, id domain.ID) (*domain.Client, error) {
	doc, err := r.FindByID(ctx, string(id))
	if err != nil {
		return nil, err
	}
	return doc.ToDomain(), nil
}
