// Wheelbot admin panel — HTTP API for managing the question pool and the
// admin accounts that maintain it.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/wordwheel/wheelbot/pkg/api"
	"github.com/wordwheel/wheelbot/pkg/config"
	"github.com/wordwheel/wheelbot/pkg/database"
	"github.com/wordwheel/wheelbot/pkg/services"
	"github.com/wordwheel/wheelbot/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	// Load .env from the working directory
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	httpPort := getEnv("ADMIN_HTTP_PORT", "8080")
	slog.Info("Starting admin panel", "version", version.Full(), "http_port", httpPort)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(config.ResolvePath())
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
	dbClient, err := database.NewClient(ctx, database.FromApp(cfg.Database))
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Bootstrap the base admin account from config
	adminService := services.NewAdminService(dbClient.Client)
	admin, err := adminService.BootstrapAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password)
	if err != nil {
		slog.Error("Failed to bootstrap admin account", "email", cfg.Admin.Email, "error", err)
		os.Exit(1)
	}
	slog.Info("Admin account ready", "admin_id", admin.ID, "email", admin.Email)

	// 4. Create HTTP server
	httpServer := api.NewServer(dbClient, cfg.Session.Key)

	// 5. Start HTTP server (non-blocking)
	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	// 6. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 7. Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
