package handlers

import (
	"net/http"

	"github.com/Pietroro/config2spec/pkg/api/models"
	"github.com/Pietroro/config2spec/pkg/policy"
	"github.com/gin-gonic/gin"
)

// StatsHandler handles policy-set statistics requests
type StatsHandler struct {
	store policy.Store
}

// NewStatsHandler creates a new statistics handler
func NewStatsHandler(store policy.Store) *StatsHandler {
	return &StatsHandler{
		store: store,
	}
}

// GetStats handles GET /api/v1/stats
// Returns set size, total coverage and a per-kind breakdown. Negated
// reachability policies are reported as isolation.
func (h *StatsHandler) GetStats(c *gin.Context) {
	policies := h.store.ListPolicies()

	kinds := make(map[string]int)
	coverage := 0
	for _, p := range policies {
		kind := p.Kind()
		if kind == policy.KindReachability && p.Negated() {
			kind = "isolation"
		}
		kinds[kind]++
		coverage += p.Coverage()
	}

	c.JSON(http.StatusOK, models.StatsResponse{
		Count:         len(policies),
		TotalCoverage: coverage,
		Kinds:         kinds,
	})
}
