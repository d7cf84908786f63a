// Package ratelimit throttles API clients per IP address. Counters live in
// Redis when a URL is configured, so several server instances share one
// budget, and in process memory otherwise.
package ratelimit

import (
	"context"
	"fmt"

	"codeberg.org/randseq/server/internal/errors"
	"codeberg.org/randseq/server/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

const keyPrefix = "randseq:ratelimit"

// per-IP request limiter backed by a memory or Redis store
type Limiter struct {
	limiter *limiter.Limiter
	redis   *redis.Client
	backend string
}

// creates a limiter for a formatted rate such as "60-M"; an empty redisURL
// selects the in-memory store
func New(rate, redisURL string) (*Limiter, error) {
	r, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		return nil, fmt.Errorf("invalid rate %q: %w", rate, err)
	}

	if redisURL == "" {
		store := memory.NewStoreWithOptions(limiter.StoreOptions{
			Prefix:          keyPrefix,
			CleanUpInterval: limiter.DefaultCleanUpInterval,
		})
		return &Limiter{limiter: limiter.New(store, r), backend: "memory"}, nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	store, err := sredis.NewStoreWithOptions(client, limiter.StoreOptions{Prefix: keyPrefix})
	if err != nil {
		client.Close() //nolint:errcheck,gosec // best-effort cleanup on init failure
		return nil, fmt.Errorf("failed to create redis rate limit store: %w", err)
	}

	return &Limiter{limiter: limiter.New(store, r), redis: client, backend: "redis"}, nil
}

// returns "memory" or "redis"
func (l *Limiter) Backend() string {
	return l.backend
}

// returns the Gin middleware enforcing the limit per client IP
func (l *Limiter) Middleware() gin.HandlerFunc {
	return mgin.NewMiddleware(l.limiter,
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			logger.Warn("rate limit exceeded", "ip", c.ClientIP(), "path", c.Request.URL.Path)
			c.Header("Retry-After", "60")
			errors.TooManyRequests(c, "too many requests. please slow down.")
		}),
		mgin.WithErrorHandler(func(c *gin.Context, err error) {
			// fail open: a broken store must not take generation down
			logger.ErrorErr(err, "rate limit store failed", "backend", l.backend)
			c.Next()
		}),
	)
}

// checks the backing store; the memory store is always healthy
func (l *Limiter) Ping(ctx context.Context) error {
	if l.redis == nil {
		return nil
	}

	return l.redis.Ping(ctx).Err()
}

// releases the Redis connection if one was opened
func (l *Limiter) Close() error {
	if l.redis == nil {
		return nil
	}

	return l.redis.Close()
}
