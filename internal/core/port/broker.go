package port

import (
	"context"

	"github.com/rafaelleal24/sales/internal/core/domain"
)

//go:generate go tool mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// BrokerPort publishes domain events. Events go to the "exchange.<entity>" exchange
// with the event name as routing key.
type BrokerPort interface {
	Publish(ctx context.Context, event domain.Event) error
	PublishRaw(ctx context.Context, eventName, entityName string, data []byte) error
	Close() error
}
