package main

import (
	"net/http"

	"codeberg.org/randseq/server/api/docs"
	"codeberg.org/randseq/server/api/rest/generate"
	"codeberg.org/randseq/server/api/rest/health"
	"github.com/gin-gonic/gin"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(RequestIDMiddleware())
	router.Use(RequestLoggerMiddleware())
	router.Use(CORSMiddleware(server.config.AllowedOrigins))
	router.GET("/health", health.Handler(server.limiter))

	cfg := server.config

	api := router.Group("/api")
	api.Use(server.limiter.Middleware())

	{
		// path used by the web form
		generate.RegisterRoutes(api, server.generator, cfg.MaxCount, cfg.GenerateDelay)
	}

	v1 := api.Group("/v1")

	{
		v1.GET("/ping", health.PingHandler)
		v1.GET("/docs/doc.json", func(c *gin.Context) {
			c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(docs.SwaggerInfo.ReadDoc()))
		})

		generate.RegisterRoutes(v1, server.generator, cfg.MaxCount, cfg.GenerateDelay)
	}
}
