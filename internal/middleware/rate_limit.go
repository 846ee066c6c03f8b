package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/deppfellow/offered-places/internal/errs"
	"github.com/deppfellow/offered-places/internal/server"
)

// rateLimitKeyPrefix namespaces the Redis counters.
const rateLimitKeyPrefix = "offered-places:ratelimit"

// redisCallTimeout bounds a single counter round trip.
const redisCallTimeout = 200 * time.Millisecond

// RateLimitMiddleware limits requests per client IP. Counters live in Redis
// when a client is configured and in process memory otherwise.
type RateLimitMiddleware struct {
	server *server.Server
}

func NewRateLimitMiddleware(s *server.Server) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		server: s,
	}
}

// Enabled reports whether limiting is switched on in the config.
func (r *RateLimitMiddleware) Enabled() bool {
	cfg := r.server.Config.RateLimit
	return cfg != nil && cfg.Enabled
}

// Limit returns the limiter middleware, or a pass-through when disabled.
func (r *RateLimitMiddleware) Limit() echo.MiddlewareFunc {
	if !r.Enabled() {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: r.store(),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return errs.NewTooManyRequestsError("Unable to identify the client")
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			r.RecordRateLimitHit(c.Path())
			GetLogger(c).Warn().
				Str("client", identifier).
				Msg("rate limit exceeded")
			return errs.NewTooManyRequestsError("Too many requests, slow down")
		},
	})
}

func (r *RateLimitMiddleware) store() middleware.RateLimiterStore {
	cfg := r.server.Config.RateLimit

	if r.server.Redis != nil {
		return NewRedisRateLimiterStore(r.server.Redis, cfg.Requests, cfg.Window, r.server.Logger)
	}

	return middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Every(cfg.Window / time.Duration(cfg.Requests)),
		Burst:     cfg.Requests,
		ExpiresIn: 3 * time.Minute,
	})
}

// RecordRateLimitHit sends a RateLimitHit custom event to New Relic.
func (r *RateLimitMiddleware) RecordRateLimitHit(endpoint string) {
	if r.server.LoggerService != nil && r.server.LoggerService.GetApplication() != nil {
		r.server.LoggerService.GetApplication().RecordCustomEvent("RateLimitHit", map[string]interface{}{
			"endpoint": endpoint,
		})
	}
}

// RedisRateLimiterStore is a fixed-window counter shared by every instance
// of the service. When Redis is unreachable requests are allowed.
type RedisRateLimiterStore struct {
	client redis.Cmdable
	limit  int
	window time.Duration
	log    *zerolog.Logger
	now    func() time.Time
}

func NewRedisRateLimiterStore(client redis.Cmdable, limit int, window time.Duration, log *zerolog.Logger) *RedisRateLimiterStore {
	return &RedisRateLimiterStore{
		client: client,
		limit:  limit,
		window: window,
		log:    log,
		now:    time.Now,
	}
}

// Allow implements middleware.RateLimiterStore.
func (s *RedisRateLimiterStore) Allow(identifier string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisCallTimeout)
	defer cancel()

	key := s.key(identifier)

	var incr *redis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, s.window)
		return nil
	})
	if err != nil {
		if s.log != nil {
			s.log.Warn().Err(err).Str("client", identifier).Msg("rate limit store unavailable, allowing request")
		}
		return true, nil
	}

	return incr.Val() <= int64(s.limit), nil
}

// key names the counter of identifier for the current window.
func (s *RedisRateLimiterStore) key(identifier string) string {
	window := s.now().UnixNano() / int64(s.window)
	return fmt.Sprintf("%s:%s:%d", rateLimitKeyPrefix, identifier, window)
}
