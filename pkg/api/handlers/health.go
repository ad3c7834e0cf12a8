package handlers

import (
	"net/http"
	"time"

	"github.com/Pietroro/config2spec/pkg/api/models"
	"github.com/Pietroro/config2spec/pkg/policy"
	"github.com/gin-gonic/gin"
)

var startTime = time.Now()

// Version is the build version reported by the status endpoint.
const Version = "0.2.0"

// HealthHandler handles health check requests
type HealthHandler struct {
	store policy.Store
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(store policy.Store) *HealthHandler {
	return &HealthHandler{
		store: store,
	}
}

// GetHealth handles GET /api/v1/health
// Simple health check endpoint
func (h *HealthHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:  "ok",
		Message: "API server is healthy",
	})
}

// GetStatus handles GET /api/v1/status
// Detailed status including the size of the policy set
func (h *HealthHandler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, models.StatusResponse{
		Status:        "ok",
		Version:       Version,
		PolicyCount:   h.store.Count(),
		TotalCoverage: h.store.TotalCoverage(),
		Uptime:        int64(time.Since(startTime).Seconds()),
	})
}
