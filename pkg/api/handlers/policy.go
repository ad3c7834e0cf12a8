package handlers

import (
	"fmt"
	"net/http"

	"github.com/Pietroro/config2spec/pkg/api/models"
	"github.com/Pietroro/config2spec/pkg/policy"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// PolicyHandler handles policy management requests
type PolicyHandler struct {
	store policy.Store
}

// NewPolicyHandler creates a new policy handler
func NewPolicyHandler(store policy.Store) *PolicyHandler {
	return &PolicyHandler{
		store: store,
	}
}

// toPolicyResponse converts a policy to its API representation
func toPolicyResponse(p policy.Policy) models.PolicyResponse {
	sources := make([]string, len(p.Sources()))
	for i, s := range p.Sources() {
		sources[i] = s.Router
	}

	destinations := make([]models.DestinationResponse, len(p.Destinations()))
	for i, d := range p.Destinations() {
		destinations[i] = models.DestinationResponse{
			Router:    d.Router,
			Interface: d.Interface,
			Subnet:    d.Subnet,
		}
	}

	response := models.PolicyResponse{
		ID:           policy.HashKey(p),
		Kind:         p.Kind(),
		Sources:      sources,
		Destinations: destinations,
		Negate:       p.Negated(),
		Coverage:     p.Coverage(),
		Rendering:    p.String(),
	}

	switch v := p.(type) {
	case *policy.WaypointPolicy:
		response.Waypoints = v.Waypoints()
	case *policy.LoadBalancingPolicy:
		response.NumPaths = v.NumPaths()
	}

	return response
}

// CreatePolicy handles POST /api/v1/policies
func (h *PolicyHandler) CreatePolicy(c *gin.Context) {
	var req models.PolicyRequest

	// Bind and validate JSON request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewErrorResponse(
			http.StatusBadRequest,
			"validation_error",
			"Invalid request body",
			err.Error(),
		))
		return
	}

	// Build the policy through the record ingestion path
	p, err := policy.FromRecord(policy.Record{
		Type:         req.Type,
		Source:       req.Source,
		Destinations: req.Destinations,
		Specifics:    req.Specifics,
	})
	if err != nil {
		recordsRejected.Inc()
		c.JSON(http.StatusBadRequest, models.NewErrorResponse(
			http.StatusBadRequest,
			"record_error",
			"Failed to build policy from record",
			err.Error(),
		))
		return
	}

	if err := h.store.AddPolicy(p); err != nil {
		log.Errorf("Failed to add policy: %v", err)
		c.JSON(http.StatusInternalServerError, models.NewErrorResponse(
			http.StatusInternalServerError,
			"policy_error",
			"Failed to add policy",
			err.Error(),
		))
		return
	}

	policiesAdded.Inc()
	c.JSON(http.StatusCreated, toPolicyResponse(p))
}

// ListPolicies handles GET /api/v1/policies
func (h *PolicyHandler) ListPolicies(c *gin.Context) {
	policies := h.store.ListPolicies()

	policyResponses := make([]models.PolicyResponse, 0, len(policies))
	for _, p := range policies {
		policyResponses = append(policyResponses, toPolicyResponse(p))
	}

	c.JSON(http.StatusOK, models.PolicyListResponse{
		Policies: policyResponses,
		Count:    len(policyResponses),
	})
}

// GetPolicy handles GET /api/v1/policies/:id
func (h *PolicyHandler) GetPolicy(c *gin.Context) {
	id := c.Param("id")

	p, ok := h.store.GetPolicy(id)
	if !ok {
		c.JSON(http.StatusNotFound, models.NewErrorResponse(
			http.StatusNotFound,
			"not_found",
			fmt.Sprintf("Policy %s not found", id),
			nil,
		))
		return
	}

	c.JSON(http.StatusOK, toPolicyResponse(p))
}

// DeletePolicy handles DELETE /api/v1/policies/:id
func (h *PolicyHandler) DeletePolicy(c *gin.Context) {
	id := c.Param("id")

	if _, ok := h.store.GetPolicy(id); !ok {
		c.JSON(http.StatusNotFound, models.NewErrorResponse(
			http.StatusNotFound,
			"not_found",
			fmt.Sprintf("Policy %s not found", id),
			nil,
		))
		return
	}

	if err := h.store.RemovePolicy(id); err != nil {
		log.Errorf("Failed to delete policy: %v", err)
		c.JSON(http.StatusInternalServerError, models.NewErrorResponse(
			http.StatusInternalServerError,
			"policy_error",
			"Failed to delete policy",
			err.Error(),
		))
		return
	}

	policiesRemoved.Inc()
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Policy %s deleted successfully", id),
	})
}
