package ratelimit

import (
	"context"
	"net"
	"os"
	"strconv"
	"testing"
	"time"

	"replygen/internal/config"
	"replygen/internal/redis"
)

func TestRedisRejectsSixthCall(t *testing.T) {
	client, cleanup := newTestRedis(t)
	defer cleanup()

	l, err := NewRedis(client, 5, time.Minute)
	if err != nil {
		t.Fatalf("new redis limiter: %v", err)
	}
	ctx := context.Background()
	key := "test:" + strconv.FormatInt(time.Now().UnixNano(), 10)

	for i := 0; i < 5; i++ {
		state, err := l.Take(ctx, key)
		if err != nil || state.Reached {
			t.Fatalf("call %d should be allowed: reached=%v err=%v", i+1, state.Reached, err)
		}
	}
	state, err := l.Take(ctx, key)
	if err != nil || !state.Reached {
		t.Fatalf("6th call in window should be rejected: reached=%v err=%v", state.Reached, err)
	}
	if wait := retryAfter(state.Reset, time.Now()); wait < 1 || wait > 60 {
		t.Fatalf("unexpected retry after %d", wait)
	}
}

func TestNewRedisRequiresClient(t *testing.T) {
	if _, err := NewRedis(nil, 5, time.Minute); err == nil {
		t.Fatalf("expected error for nil client")
	}
}

func newTestRedis(t *testing.T) (*redis.Client, func()) {
	t.Helper()
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("set TEST_REDIS_ADDR to run redis-backed rate limit tests")
	}
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		t.Fatalf("split host port: %v", err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		t.Fatalf("atoi port: %v", err)
	}
	cfg := &config.Config{Redis: config.RedisConfig{Enabled: true, Host: host, Port: port}}
	client, err := redis.NewRedisClient(cfg)
	if err != nil {
		t.Fatalf("redis client: %v", err)
	}
	return client, func() { client.Close() }
}
