package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/travelmate/community-hub/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Community endpoints (public read access)
		v1.GET("/communities", handler.ListCommunities)
		v1.GET("/communities/:ledger_id", handler.GetCommunity)

		// Community creation submits a ledger transaction (requires authentication)
		v1.POST("/communities", middleware.Auth(authCfg), handler.CreateCommunity)

		// Joining mutates membership only (requires authentication)
		v1.POST("/communities/:ledger_id/join", middleware.Auth(authCfg), handler.JoinCommunity)
	}
}
