// Package api provides the RESTful HTTP API server for managing the policy
// set. It exposes endpoints for policy ingestion and retrieval, policy-set
// statistics, health checks and configuration.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Pietroro/config2spec/pkg/policy"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Server represents the HTTP API server that provides RESTful endpoints for
// policy ingestion, retrieval and monitoring. It uses the Gin framework and
// operates on any policy.Store implementation.
type Server struct {
	config     *Config
	store      policy.Store
	httpServer *http.Server
	router     *gin.Engine
}

// NewAPIServer creates and initializes a new API server instance.
// It sets up the Gin router, configures middleware, and registers all routes.
func NewAPIServer(cfg *Config, store policy.Store) (*Server, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	// Set Gin mode based on log level
	if cfg.LogLevel == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	server := &Server{
		config: cfg,
		store:  store,
		router: router,
	}

	server.setupMiddleware()
	server.setupRoutes()

	return server, nil
}

// Start starts the HTTP server in a background goroutine. The server listens
// on the configured host and port; this method returns immediately.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	log.Infof("Starting API server on %s", addr)

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start API server: %v", err)
		}
	}()

	return nil
}

// Stop gracefully shuts down the HTTP server, waiting for in-flight requests
// to complete (up to 30 seconds).
func (s *Server) Stop() error {
	if s.httpServer == nil {
		return nil
	}

	log.Info("Shutting down API server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Errorf("API server forced to shutdown: %v", err)
		return err
	}

	log.Info("API server stopped gracefully")
	return nil
}

// GetRouter returns the underlying Gin router instance. This is primarily
// useful for testing, to inject HTTP requests without starting the server.
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}
