package main

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"memedrop.backend/internal/interfaces/http/handlers"
	"memedrop.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	tokenHandler    *handlers.TokenHandler
	waitlistHandler *handlers.WaitlistHandler
	healthHandler   *handlers.HealthHandler
	apiKey          string
}

func registerRoutes(r *gin.Engine, d routeDeps) {
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	r.GET("/health", d.healthHandler.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")
	{
		// Token routes (shared-secret gated)
		tokens := v1.Group("/tokens")
		tokens.Use(middleware.APIKeyAuth(d.apiKey))
		{
			tokens.GET("", d.tokenHandler.ListTokens)
			tokens.POST("", middleware.IdempotencyMiddleware(), d.tokenHandler.CreateToken)
			tokens.GET("/:id", d.tokenHandler.GetToken)
			tokens.PUT("/:id", d.tokenHandler.UpdateToken)
			tokens.DELETE("/:id", d.tokenHandler.DeleteToken)
		}

		// Waitlist route (public)
		v1.POST("/waitlist", d.waitlistHandler.JoinWaitlist)
	}
}
