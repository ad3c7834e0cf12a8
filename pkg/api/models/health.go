package models

// HealthResponse represents the health check response
type HealthResponse struct {
	Status  string `json:"status"` // "ok", "degraded", "down"
	Message string `json:"message"`
}

// StatusResponse represents detailed system status
type StatusResponse struct {
	Status        string `json:"status"` // "ok", "degraded", "down"
	Version       string `json:"version"`
	PolicyCount   int    `json:"policy_count"`
	TotalCoverage int    `json:"total_coverage"`
	Uptime        int64  `json:"uptime_seconds"`
}

// StatsResponse represents the policy-set statistics
type StatsResponse struct {
	Count         int            `json:"count"`
	TotalCoverage int            `json:"total_coverage"`
	Kinds         map[string]int `json:"kinds"`
}
