/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the leave engine server. Handles configuration,
  dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Load configuration (file and/or environment)
  2. Initialize SQLite store
  3. Wire domain services and API handler
  4. Start the nightly entitlement scheduler (if enabled)
  5. Start server with graceful shutdown

CONFIGURATION:
  CONFIG_PATH env or -config flag points at a YAML file; with neither set,
  defaults apply and environment variables (HTTP_ADDRESS, STORAGE_PATH,
  SCHEDULER_ENABLED) override them. Use STORAGE_PATH=":memory:" for an
  in-memory database.

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Stop the scheduler and close the database
  4. Exit

SEE ALSO:
  - config/config.go: Configuration loading
  - api/server.go: Router configuration
  - store/sqlite/sqlite.go: Database implementation
*/
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/warp/leave-engine/api"
	"github.com/warp/leave-engine/calendar"
	"github.com/warp/leave-engine/config"
	"github.com/warp/leave-engine/leave"
	"github.com/warp/leave-engine/store/sqlite"
)

func main() {
	cfg := config.MustLoad()

	// Initialize store
	store, err := sqlite.New(cfg.StoragePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer store.Close()

	// Wire services
	clock := calendar.SystemClock()
	employees := leave.NewEmployeeService(store.Employees, store.LeaveRequests, clock)
	requests := leave.NewLeaveRequestService(store.LeaveRequests, store.Employees, clock)

	handler := api.NewHandler(employees, requests)
	router := api.NewRouter(handler)

	// Nightly entitlement refresh
	scheduler := api.NewEntitlementScheduler(employees)
	if cfg.Scheduler.Enabled {
		scheduler.Start()
		defer scheduler.Stop()
	} else {
		log.Println("[Scheduler] Disabled, not starting")
	}

	server := &http.Server{
		Addr:         cfg.HTTPServer.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on %s (env: %s)", cfg.HTTPServer.Addr, cfg.Env)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
