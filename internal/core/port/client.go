package port

import (
	"context"

	"github.com/rafaelleal24/sales/internal/core/domain"
)

//go:generate go tool mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type ClientPort interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, id domain.ID) (*domain.Client, error)
}

// SystemContext exposes the user acting on behalf of the current request.
type SystemContext interface {
	SystemUser(ctx context.Context) (domain.SystemUser, error)
}
