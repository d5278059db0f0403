package usecase

import (
	"context"
	"time"
)

// Cache is the read-through cache surface the usecases need. A nil value may
// be passed; callers must treat misses and errors as "go to the store".
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
