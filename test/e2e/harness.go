// Package e2e drives the whole pipeline the way production runs it: updates
// enter through a fake Bot API, travel poller → broker → worker → state
// machine → storage across real PostgreSQL and RabbitMQ containers, and the
// assertions read what the bot sent back.
package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/wordwheel/wheelbot/pkg/bot"
	"github.com/wordwheel/wheelbot/pkg/broker"
	"github.com/wordwheel/wheelbot/pkg/database"
	"github.com/wordwheel/wheelbot/pkg/fsm"
	"github.com/wordwheel/wheelbot/pkg/poller"
	"github.com/wordwheel/wheelbot/pkg/services"
	"github.com/wordwheel/wheelbot/pkg/telegram"
	testbroker "github.com/wordwheel/wheelbot/test/broker"
	testdb "github.com/wordwheel/wheelbot/test/database"
)

// TestApp boots the full pipeline against test containers.
type TestApp struct {
	Telegram *fakeTelegram
	DB       *database.Client
	Users    *services.UserService
	Games    *services.GameService
	Manager  *fsm.Manager

	Poller  *poller.Poller
	Workers []*bot.Worker
}

// testAppConfig holds options accumulated before creating the TestApp.
type testAppConfig struct {
	numQueues  int
	minPlayers int
	sectors    []int
	questions  map[string]string
}

// TestAppOption configures the test app.
type TestAppOption func(*testAppConfig)

// WithNumQueues sets the shard count; one worker consumes each queue.
func WithNumQueues(n int) TestAppOption {
	return func(c *testAppConfig) { c.numQueues = n }
}

// WithMinPlayers overrides the quorum for starting a round.
func WithMinPlayers(n int) TestAppOption {
	return func(c *testAppConfig) { c.minPlayers = n }
}

// WithQuestion seeds one question into the pool.
func WithQuestion(text, answer string) TestAppOption {
	return func(c *testAppConfig) { c.questions[text] = answer }
}

// NewTestApp starts storage, broker, workers and the poller, and registers
// their teardown in reverse start order.
func NewTestApp(t *testing.T, opts ...TestAppOption) *TestApp {
	t.Helper()
	ctx := context.Background()

	cfg := &testAppConfig{
		numQueues:  1,
		minPlayers: 2,
		sectors:    []int{100, 200, 300},
		questions:  map[string]string{},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	// Storage with the seeded question pool.
	db := testdb.NewTestClient(t)
	questionService := services.NewQuestionService(db.Client)
	for text, answer := range cfg.questions {
		_, err := questionService.CreateQuestion(ctx, text, answer)
		require.NoError(t, err)
	}

	// The chat API fake and the real client pointed at it.
	fake := newFakeTelegram(t)
	tgClient, err := telegram.NewClientWithEndpoint("e2e-token", fake.Endpoint())
	require.NoError(t, err)

	// Worker-side wiring. Production runs one process per queue; here every
	// worker shares one registry, which keeps the single-writer-per-chat
	// property because each chat still lands on exactly one queue.
	userService := services.NewUserService(db.Client)
	gameService := services.NewGameService(db.Client)
	manager := fsm.NewManager(gameService, questionService, tgClient, fsm.Config{
		MinPlayers:     cfg.minPlayers,
		Sectors:        cfg.sectors,
		WaitingTimeout: time.Minute,
		TurnTimeout:    time.Minute,
	})
	registry := bot.NewRegistry(tgClient)
	bot.NewHandlers(userService, gameService, tgClient, manager).Register(registry)

	brokerCfg := testbroker.NewTestConfig(t)
	brokerCfg.NumberQueues = cfg.numQueues

	app := &TestApp{
		Telegram: fake,
		DB:       db,
		Users:    userService,
		Games:    gameService,
		Manager:  manager,
	}

	for i := 0; i < cfg.numQueues; i++ {
		client := broker.NewClient(brokerCfg)
		w := bot.NewWorker(client, registry, i)
		w.Start(ctx)
		app.Workers = append(app.Workers, w)
		t.Cleanup(func() {
			w.Stop()
			_ = client.Close()
		})
	}

	pollerClient := broker.NewClient(brokerCfg)
	app.Poller = poller.NewPoller(tgClient, pollerClient, cfg.numQueues)
	app.Poller.Start(ctx)
	t.Cleanup(func() {
		app.Poller.Stop()
		_ = pollerClient.Close()
	})

	return app
}
