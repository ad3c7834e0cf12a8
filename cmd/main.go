// SPDX-License-Identifier: GPL-2.0 OR BSD-3-Clause
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Pietroro/config2spec/pkg/api"
	"github.com/Pietroro/config2spec/pkg/policy"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	recordsPath string
	dbPath      string
	configPath  string
	logLevel    string
	enableAPI   bool
	apiHost     string
	apiPort     int
)

var rootCmd = &cobra.Command{
	Use:   "policyd",
	Short: "Network policy intent store",
	Long:  `A store for network-wide policy intents (reachability, isolation, waypoint and load-balancing constraints) with tabular record ingestion and a REST API`,
	Run:   runStore,
}

func init() {
	rootCmd.Flags().StringVarP(&recordsPath, "records", "r", "", "CSV file of policy records to load on startup")
	rootCmd.Flags().StringVarP(&dbPath, "db", "d", "", "SQLite database for policy persistence (empty disables persistence)")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file for the API server")
	rootCmd.Flags().StringVarP(&logLevel, "log-level", "l", "info", "Log level (debug, info, warn, error)")
	rootCmd.Flags().BoolVarP(&enableAPI, "enable-api", "a", true, "Enable REST API server")
	rootCmd.Flags().StringVar(&apiHost, "api-host", "127.0.0.1", "API server host")
	rootCmd.Flags().IntVar(&apiPort, "api-port", 8080, "API server port")
}

func runStore(cmd *cobra.Command, args []string) {
	// Setup logging
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		log.Fatalf("Invalid log level: %v", err)
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})

	log.Info("Starting policy intent store")

	// Create policy manager, with persistence if configured
	var manager *policy.Manager
	if dbPath != "" {
		storage, err := policy.NewSQLiteStorage(dbPath)
		if err != nil {
			log.Fatalf("Failed to open policy storage: %v", err)
		}
		defer storage.Close()

		manager = policy.NewManagerWithStorage(storage)
		if err := manager.LoadPersisted(); err != nil {
			log.Fatalf("Failed to restore policies: %v", err)
		}
	} else {
		manager = policy.NewManager()
	}

	log.Info("✓ Policy manager initialized")

	// Load policy records from CSV if provided
	if recordsPath != "" {
		loaded, skipped, err := loadRecords(manager, recordsPath)
		if err != nil {
			log.Fatalf("Failed to load records: %v", err)
		}
		log.Infof("✓ Loaded %d policies from %s (%d records skipped)", loaded, recordsPath, skipped)
	}

	// Start API server if enabled
	var apiServer *api.Server
	if enableAPI {
		apiConfig, err := buildAPIConfig(cmd)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		apiServer, err = api.NewAPIServer(apiConfig, manager)
		if err != nil {
			log.Fatalf("Failed to create API server: %v", err)
		}

		if err := apiServer.Start(); err != nil {
			log.Fatalf("Failed to start API server: %v", err)
		}

		log.Infof("✓ API server started on http://%s:%d", apiConfig.Host, apiConfig.Port)
	}

	// Wait for interrupt signal
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	log.Info("✓ Store running. Press Ctrl+C to exit")

	<-sig
	log.Info("Shutting down...")

	if apiServer != nil {
		if err := apiServer.Stop(); err != nil {
			log.Errorf("Error stopping API server: %v", err)
		}
	}
}

// buildAPIConfig merges the optional config file with command-line flags.
// Explicitly set flags win over file values.
func buildAPIConfig(cmd *cobra.Command) (*api.Config, error) {
	cfg := api.DefaultConfig()
	if configPath != "" {
		loaded, err := api.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("api-host") || configPath == "" {
		cfg.Host = apiHost
	}
	if cmd.Flags().Changed("api-port") || configPath == "" {
		cfg.Port = apiPort
	}
	cfg.LogLevel = logLevel

	return cfg, nil
}

// loadRecords ingests a CSV file of policy records into the manager. Rows
// that fail to parse are skipped with a warning rather than aborting the
// whole load.
func loadRecords(manager *policy.Manager, path string) (loaded, skipped int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to open records file: %w", err)
	}
	defer f.Close()

	records, err := policy.ReadRecords(f)
	if err != nil {
		return 0, 0, err
	}

	for i, rec := range records {
		p, err := policy.FromRecord(rec)
		if err != nil {
			log.Warnf("Skipping record %d: %v", i+1, err)
			skipped++
			continue
		}
		if err := manager.AddPolicy(p); err != nil {
			log.Warnf("Skipping record %d: %v", i+1, err)
			skipped++
			continue
		}
		loaded++
	}
	return loaded, skipped, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
