package health

import "context"

// Response represents the health check response
type Response struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Version   string `json:"version,omitempty"`
	RateStore string `json:"rate_store,omitempty"`
}

type PingResponse struct {
	Message string `json:"message"`
}

// Store is the backing store whose reachability is part of service health
type Store interface {
	Backend() string
	Ping(ctx context.Context) error
}
