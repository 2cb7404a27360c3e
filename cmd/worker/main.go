// Wheelbot worker — consumes one shard of the update queues and drives the
// games of the chats pinned to it. Run one worker process per queue.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/wordwheel/wheelbot/pkg/bot"
	"github.com/wordwheel/wheelbot/pkg/broker"
	"github.com/wordwheel/wheelbot/pkg/config"
	"github.com/wordwheel/wheelbot/pkg/database"
	"github.com/wordwheel/wheelbot/pkg/fsm"
	"github.com/wordwheel/wheelbot/pkg/metrics"
	"github.com/wordwheel/wheelbot/pkg/services"
	"github.com/wordwheel/wheelbot/pkg/telegram"
	"github.com/wordwheel/wheelbot/pkg/version"
)

func main() {
	// Parse command-line flags
	queueID := flag.Int("queue-id", -1,
		"Index of the update queue this worker consumes (required)")
	flag.Parse()

	// Load .env from the working directory
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	slog.Info("Starting worker", "version", version.Full(), "queue_id", *queueID)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(config.ResolvePath())
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	if *queueID < 0 || *queueID >= cfg.Broker.NumberQueues {
		slog.Error("Flag --queue-id must name one of the configured queues",
			"queue_id", *queueID, "number_queues", cfg.Broker.NumberQueues)
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

	// 3. Initialize domain services
	userService := services.NewUserService(dbClient.Client)
	gameService := services.NewGameService(dbClient.Client)
	questionService := services.NewQuestionService(dbClient.Client)
	slog.Info("Services initialized")

	// 4. Create the chat API client
	tgClient, err := telegram.NewClient(cfg.Bot.Token)
	if err != nil {
		slog.Error("Failed to initialize chat client", "error", err)
		os.Exit(1)
	}
	slog.Info("Chat client initialized", "bot_username", tgClient.BotUsername())

	// 5. Wire the per-chat state machines and the command handlers
	manager := fsm.NewManager(gameService, questionService, tgClient, fsm.NewConfig(cfg.Game))
	registry := bot.NewRegistry(tgClient)
	handlers := bot.NewHandlers(userService, gameService, tgClient, manager)
	handlers.Register(registry)

	// 6. Start consuming the shard queue; the consume loop dials the broker
	brokerClient := broker.NewClient(cfg.Broker)
	defer func() {
		if err := brokerClient.Close(); err != nil {
			slog.Error("Error closing broker client", "error", err)
		}
	}()

	worker := bot.NewWorker(brokerClient, registry, *queueID)
	worker.Start(ctx)

	// 7. Start metrics exposition
	metricsServer := metrics.NewServer(cfg.Metrics.Port)
	metricsServer.Start()

	slog.Info("Worker started successfully",
		"queue", broker.QueueNameFor(*queueID),
		"prefetch", cfg.Broker.PrefetchCount,
		"metrics_port", cfg.Metrics.Port)

	// 8. Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	sig := <-sigCh
	slog.Info("Shutdown signal received", "signal", sig)

	// 9. Graceful shutdown: let the in-flight delivery finish
	done := make(chan struct{})
	go func() {
		worker.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker stopped gracefully")
	case <-time.After(30 * time.Second):
		slog.Warn("Worker shutdown timeout exceeded, unacked delivery will be redelivered")
	}

	// Stop metrics server with its own timeout budget
	metricsShutdownCtx, metricsCancel := context.WithTimeout(ctx, 5*time.Second)
	defer metricsCancel()
	if err := metricsServer.Stop(metricsShutdownCtx); err != nil {
		slog.Error("Metrics server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
