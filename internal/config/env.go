package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"codeberg.org/randseq/server/internal/sequence"
	"github.com/joho/godotenv"
	"github.com/ulule/limiter/v3"
)

const (
	defaultPort      = "8080"
	defaultRateLimit = "60-M"
)

// values per request when MAX_COUNT is unset; also the TUI's local limit
const DefaultMaxCount = 10000

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	port := os.Getenv("PORT")
	environment := os.Getenv("ENVIRONMENT")
	rateLimit := os.Getenv("RATE_LIMIT")

	if port == "" {
		port = defaultPort
	}

	if environment == "" {
		environment = "development"
	}

	if rateLimit == "" {
		rateLimit = defaultRateLimit
	}

	if _, err := limiter.NewRateFromFormatted(rateLimit); err != nil {
		return nil, fmt.Errorf("RATE_LIMIT is not a valid rate (e.g. 60-M): %w", err)
	}

	maxCount := int64(DefaultMaxCount)
	if raw := os.Getenv("MAX_COUNT"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n <= 0 || n > sequence.MaxCount {
			return nil, fmt.Errorf("MAX_COUNT must be an integer between 1 and %d, got %q", sequence.MaxCount, raw)
		}
		maxCount = n
	}

	var delay time.Duration
	if raw := os.Getenv("GENERATE_DELAY"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d < 0 {
			return nil, fmt.Errorf("GENERATE_DELAY must be a non-negative duration, got %q", raw)
		}
		delay = d
	}

	return &Config{
		Port:           port,
		Environment:    environment,
		RedisURL:       os.Getenv("REDIS_URL"),
		RateLimit:      rateLimit,
		AllowedOrigins: splitOrigins(os.Getenv("ALLOWED_ORIGINS")),
		TrustedProxies: splitList(os.Getenv("TRUSTED_PROXIES")),
		MaxCount:       maxCount,
		GenerateDelay:  delay,
	}, nil
}

// returns true when running with production settings
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// empty means any origin
func splitOrigins(raw string) []string {
	origins := splitList(raw)
	if len(origins) == 0 {
		return []string{"*"}
	}

	return origins
}

// comma separated values, blanks dropped; nil when nothing remains
func splitList(raw string) []string {
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}

	return items
}
