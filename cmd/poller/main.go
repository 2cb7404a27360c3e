// Wheelbot poller — long-polls the chat platform and shards every update
// into the broker queues the workers consume. Exactly one poller runs per
// deployment.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/wordwheel/wheelbot/pkg/broker"
	"github.com/wordwheel/wheelbot/pkg/config"
	"github.com/wordwheel/wheelbot/pkg/poller"
	"github.com/wordwheel/wheelbot/pkg/telegram"
	"github.com/wordwheel/wheelbot/pkg/version"
)

func main() {
	// Load .env from the working directory
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	slog.Info("Starting poller", "version", version.Full())

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(config.ResolvePath())
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Create the chat API client
	tgClient, err := telegram.NewClient(cfg.Bot.Token)
	if err != nil {
		slog.Error("Failed to initialize chat client", "error", err)
		os.Exit(1)
	}
	slog.Info("Chat client initialized", "bot_username", tgClient.BotUsername())

	// 3. Create the broker client; the poll loop dials and redials it itself
	brokerClient := broker.NewClient(cfg.Broker)
	defer func() {
		if err := brokerClient.Close(); err != nil {
			slog.Error("Error closing broker client", "error", err)
		}
	}()

	// 4. Start polling
	p := poller.NewPoller(tgClient, brokerClient, cfg.Broker.NumberQueues)
	p.Start(ctx)

	slog.Info("Poller started successfully", "queues", cfg.Broker.NumberQueues)

	// 5. Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	sig := <-sigCh
	slog.Info("Shutdown signal received", "signal", sig)

	// 6. Graceful shutdown: the in-flight long poll is allowed to complete,
	// so the budget exceeds the poll hold time.
	done := make(chan struct{})
	go func() {
		p.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Poller stopped gracefully")
	case <-time.After(35 * time.Second):
		slog.Warn("Poller shutdown timeout exceeded")
	}

	slog.Info("Shutdown complete")
}
