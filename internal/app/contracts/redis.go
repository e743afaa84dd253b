package contracts

import (
	"context"
	"time"
)

type RedisRepository interface {
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	// GetDelete reads and removes key in one step. A missing key yields "".
	GetDelete(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}
