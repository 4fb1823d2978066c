package port

import "context"

//go:generate go tool mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// TransactionManager runs fn atomically. fn may be retried and must reload the
// aggregates it changes from the context it receives.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
