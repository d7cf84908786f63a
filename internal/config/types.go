package config

import "time"

type Config struct {
	Port           string
	Environment    string
	RedisURL       string
	RateLimit      string
	AllowedOrigins []string
	TrustedProxies []string // nil trusts no proxy; ClientIP is then the peer address
	MaxCount       int64
	GenerateDelay  time.Duration
}

type Flags struct {
	Remote   bool
	Endpoint string
	Mode     string
}
