package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

const keyPrefix = "ratelimit"

// Limiter allows a fixed number of requests per key in each window.
type Limiter struct {
	inner *limiter.Limiter
}

// New builds a Limiter over any limiter store.
func New(store limiter.Store, limit int, window time.Duration) *Limiter {
	rate := limiter.Rate{Period: window, Limit: int64(limit)}
	return &Limiter{inner: limiter.New(store, rate)}
}

// NewMemory keeps counters in process memory. Expired counters are swept by the store.
func NewMemory(limit int, window time.Duration) *Limiter {
	store := memory.NewStoreWithOptions(limiter.StoreOptions{
		Prefix:          keyPrefix,
		CleanUpInterval: limiter.DefaultCleanUpInterval,
	})
	return New(store, limit, window)
}

// Take counts one request for key and reports the state of its window.
func (l *Limiter) Take(ctx context.Context, key string) (limiter.Context, error) {
	return l.inner.Get(ctx, key)
}

func (l *Limiter) Limit() int            { return int(l.inner.Rate.Limit) }
func (l *Limiter) Window() time.Duration { return l.inner.Rate.Period }

// Describe renders the limit the way the 429 body reports it, e.g. "5 per 1 minute".
func (l *Limiter) Describe() string {
	w := l.Window()
	switch {
	case w >= time.Hour && w%time.Hour == 0:
		return fmt.Sprintf("%d per %d hour", l.Limit(), int(w/time.Hour))
	case w >= time.Minute && w%time.Minute == 0:
		return fmt.Sprintf("%d per %d minute", l.Limit(), int(w/time.Minute))
	default:
		return fmt.Sprintf("%d per %d second", l.Limit(), int(w/time.Second))
	}
}
