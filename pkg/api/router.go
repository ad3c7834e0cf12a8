package api

import (
	"net/http"

	"github.com/Pietroro/config2spec/pkg/api/handlers"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	// Create handlers
	healthHandler := handlers.NewHealthHandler(s.store)
	policyHandler := handlers.NewPolicyHandler(s.store)
	statsHandler := handlers.NewStatsHandler(s.store)

	// API v1 group
	v1 := s.router.Group("/api/v1")
	{
		// Health and status endpoints
		v1.GET("/health", healthHandler.GetHealth)
		v1.GET("/status", healthHandler.GetStatus)

		// Policy management endpoints
		policies := v1.Group("/policies")
		{
			policies.POST("", policyHandler.CreatePolicy)
			policies.GET("", policyHandler.ListPolicies)
			policies.GET("/:id", policyHandler.GetPolicy)
			policies.DELETE("/:id", policyHandler.DeletePolicy)
		}

		// Statistics endpoints
		v1.GET("/stats", statsHandler.GetStats)

		// Configuration endpoint
		v1.GET("/config", s.handleGetConfig)
	}

	// Prometheus metrics
	if s.config.EnableMetrics {
		handlers.RegisterMetrics(s.store)
		s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}
}

// handleGetConfig returns the active server configuration
func (s *Server) handleGetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, s.config)
}
