package middleware

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

func TestRedisRateLimiterStore_FailsOpen(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	logger := zerolog.Nop()
	store := NewRedisRateLimiterStore(client, 1, time.Minute, &logger)

	for i := 0; i < 3; i++ {
		allowed, err := store.Allow("192.0.2.1")
		if err != nil || !allowed {
			t.Fatalf("attempt %d: allowed=%v err=%v", i, allowed, err)
		}
	}
}

func TestRedisRateLimiterStore_FixedWindow(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set; skipping Redis rate limiter test")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Fatalf("ping redis: %v", err)
	}

	logger := zerolog.Nop()
	store := NewRedisRateLimiterStore(client, 2, time.Minute, &logger)

	now := time.Unix(1700000000, 0)
	store.now = func() time.Time { return now }

	first := store.key("198.51.100.7")
	now = now.Add(time.Minute)
	second := store.key("198.51.100.7")
	now = now.Add(-time.Minute)
	client.Del(context.Background(), first, second)

	for i, want := range []bool{true, true, false} {
		allowed, err := store.Allow("198.51.100.7")
		if err != nil {
			t.Fatalf("Allow: %v", err)
		}
		if allowed != want {
			t.Fatalf("request %d: allowed=%v want %v", i, allowed, want)
		}
	}

	// A new window starts from zero.
	now = now.Add(time.Minute)
	if allowed, _ := store.Allow("198.51.100.7"); !allowed {
		t.Fatal("next window should allow")
	}
}
