package main

import (
	"codeberg.org/randseq/server/internal/config"
	"codeberg.org/randseq/server/internal/ratelimit"
	"codeberg.org/randseq/server/internal/sequence"
	"github.com/gin-gonic/gin"
)

// holds all dependencies and state for the API server
type Server struct {
	config    *config.Config
	generator sequence.Generator
	limiter   *ratelimit.Limiter
	router    *gin.Engine
}
