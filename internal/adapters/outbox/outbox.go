package outbox

import (
	"context"
	"time"
)

// Entry is a domain event waiting to be relayed to the broker. EntityName selects the
// exchange and EventName is the routing key.
type Entry struct {
	ID         string
	EventName  string
	EntityName string
	EventData  []byte
	Attempts   int
	CreatedAt  time.Time
}

//go:generate go tool mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
type Repository interface {
	Insert(ctx context.Context, entry Entry) error
	// FetchPending returns the oldest entries that are not parked.
	FetchPending(ctx context.Context, limit int) ([]Entry, error)
	// RecordFailure stores the publish error and returns the updated attempt count.
	RecordFailure(ctx context.Context, id string, cause string) (int, error)
	// Park takes an entry out of the relay without deleting it.
	Park(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
