// Package api provides a RESTful HTTP API server for the network policy
// intent store.
//
// The API server exposes endpoints for:
//   - Policy ingestion from tabular records (create, read, delete)
//   - Policy-set statistics (count, coverage, per-kind breakdown)
//   - Health checks and system status monitoring
//   - Prometheus metrics
//
// # Architecture
//
// The API server is built on the Gin web framework and operates on a
// policy.Store, the deduplicated policy set with optional SQLite
// persistence behind it.
//
// # Example Usage
//
// Basic server setup:
//
//	cfg := api.DefaultConfig()
//	cfg.Port = 8080
//
//	server, err := api.NewAPIServer(cfg, manager)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := server.Start(); err != nil {
//	    log.Fatal(err)
//	}
//	defer server.Stop()
//
// # Endpoints
//
// Health check:
//   - GET /api/v1/health  - Simple health check
//   - GET /api/v1/status  - Detailed system status
//
// Policy management:
//   - POST   /api/v1/policies     - Ingest a policy record
//   - GET    /api/v1/policies     - List all policies
//   - GET    /api/v1/policies/:id - Get a policy by hash
//   - DELETE /api/v1/policies/:id - Delete a policy by hash
//
// Statistics:
//   - GET /api/v1/stats - Policy-set statistics
//   - GET /metrics      - Prometheus metrics
package api
