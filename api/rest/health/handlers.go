package health

import (
	"context"
	"net/http"
	"time"

	"codeberg.org/randseq/server/internal/logger"
	"github.com/gin-gonic/gin"
)

const (
	serviceName    = "randseq"
	serviceVersion = "1.0.0"
	storeTimeout   = 2 * time.Second
)

// returns the server health status; degraded when the rate limit store is unreachable
func Handler(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := Response{
			Status:  "healthy",
			Service: serviceName,
			Version: serviceVersion,
		}

		if store != nil {
			resp.RateStore = store.Backend()

			ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
			defer cancel()

			if err := store.Ping(ctx); err != nil {
				logger.ErrorErr(err, "health check: rate limit store unreachable", "backend", store.Backend())
				resp.Status = "degraded"
				c.JSON(http.StatusServiceUnavailable, resp)
				return
			}
		}

		c.JSON(http.StatusOK, resp)
	}
}

// responds with pong for testing
func PingHandler(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{
		Message: "pong",
	})
}
