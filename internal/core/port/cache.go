package port

import (
	"context"
	"time"
)

//go:generate go tool mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// CachePort is a best effort key/value store. Get returns (nil, nil) on a miss; callers
// treat errors as misses and fall back to the repository.
type CachePort[T any] interface {
	Get(ctx context.Context, key string) (*T, error)
	Set(ctx context.Context, key string, value *T, ttl time.Duration) error
	// SetNX stores value only if key is absent and reports whether it did.
	SetNX(ctx context.Context, key string, value *T, ttl time.Duration) (bool, error)
	Del(ctx context.Context, key string) error
}
