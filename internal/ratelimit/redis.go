package ratelimit

import (
	"errors"
	"fmt"
	"time"

	"github.com/ulule/limiter/v3"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"

	"replygen/internal/redis"
)

// NewRedis shares counters between replicas through Redis.
func NewRedis(client *redis.Client, limit int, window time.Duration) (*Limiter, error) {
	if client.Raw() == nil {
		return nil, errors.New("redis client required")
	}
	store, err := sredis.NewStoreWithOptions(client.Raw(), limiter.StoreOptions{Prefix: keyPrefix})
	if err != nil {
		return nil, fmt.Errorf("init redis rate limit store: %w", err)
	}
	return New(store, limit, window), nil
}
