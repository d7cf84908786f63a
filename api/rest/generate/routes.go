package generate

import (
	"time"

	"codeberg.org/randseq/server/internal/sequence"
	"github.com/gin-gonic/gin"
)

// registers number generation routes
func RegisterRoutes(router *gin.RouterGroup, generator sequence.Generator, maxCount int64, delay time.Duration) {
	router.POST("/generate", Handler(generator, maxCount, delay))
}
