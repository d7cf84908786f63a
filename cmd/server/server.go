package main

import (
	"fmt"

	"codeberg.org/randseq/server/internal/config"
	"codeberg.org/randseq/server/internal/logger"
	"codeberg.org/randseq/server/internal/ratelimit"
	"codeberg.org/randseq/server/internal/sequence"
	"github.com/gin-gonic/gin"
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	limiter, err := ratelimit.New(cfg.RateLimit, cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize rate limiter: %w", err)
	}

	logger.Info("rate limiter initialized",
		"backend", limiter.Backend(),
		"rate", cfg.RateLimit,
	)

	router := gin.New()
	router.Use(gin.Recovery())

	// ClientIP keys the rate limiter; only listed proxies may set X-Forwarded-For
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		limiter.Close() //nolint:errcheck,gosec // best-effort cleanup on init failure
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}

	server := &Server{
		config:    cfg,
		generator: sequence.Local{MaxCount: cfg.MaxCount},
		limiter:   limiter,
		router:    router,
	}

	RegisterRoutes(router, server)

	return server, nil
}
