package bot

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/wordwheel/wheelbot/pkg/broker"
	"github.com/wordwheel/wheelbot/pkg/config"
	"github.com/wordwheel/wheelbot/pkg/telegram"
	testbroker "github.com/wordwheel/wheelbot/test/broker"
)

// uniqueQueueID keeps worker tests off each other's queues, also across
// repeated runs against a long-lived CI broker.
func uniqueQueueID() int {
	return int(time.Now().UnixNano() % 1_000_000_000)
}

// startWorker runs a worker for queueID whose shutdown is tied to the test.
func startWorker(t *testing.T, cfg config.BrokerConfig, reg *Registry, queueID int) *Worker {
	t.Helper()

	client := broker.NewClient(cfg)
	w := NewWorker(client, reg, queueID)
	w.Start(context.Background())
	t.Cleanup(func() {
		w.Stop()
		_ = client.Close()
	})
	return w
}

// publishUpdate marshals and publishes one update to the queue.
func publishUpdate(t *testing.T, cfg config.BrokerConfig, queueID int, u telegram.Update) {
	t.Helper()
	ctx := context.Background()

	pub := broker.NewClient(cfg)
	require.NoError(t, pub.Connect(ctx))
	defer func() { _ = pub.Close() }()

	queue := broker.QueueNameFor(queueID)
	require.NoError(t, pub.DeclareQueue(queue))

	payload, err := json.Marshal(u)
	require.NoError(t, err)
	require.NoError(t, pub.PublishUpdate(ctx, queue, payload, u.Body.Chat()))
}

func startCallback(chatID int64) telegram.Update {
	return telegram.Update{
		UpdateID: 1,
		Date:     1700000000,
		Body: telegram.CallbackQuery{
			CallbackID:   "cb-1",
			ChatID:       chatID,
			Command:      "/start",
			MessageID:    3,
			FromID:       42,
			FromUsername: "alice",
		},
	}
}

func TestWorker_ConsumesAndAcks(t *testing.T) {
	cfg := testbroker.NewTestConfig(t)
	queueID := uniqueQueueID()

	var handled atomic.Int32
	var got atomic.Int64
	reg := NewRegistry(&chatRecorder{})
	reg.Add("/start", func(_ context.Context, q telegram.CallbackQuery) error {
		handled.Add(1)
		got.Store(q.ChatID)
		return nil
	})

	startWorker(t, cfg, reg, queueID)
	publishUpdate(t, cfg, queueID, startCallback(-100777))

	require.Eventually(t, func() bool { return handled.Load() == 1 },
		15*time.Second, 50*time.Millisecond)
	require.Equal(t, int64(-100777), got.Load())

	// Acked: nothing comes back.
	time.Sleep(300 * time.Millisecond)
	require.Equal(t, int32(1), handled.Load())
}

func TestWorker_RequeuesFailedUpdate(t *testing.T) {
	cfg := testbroker.NewTestConfig(t)
	queueID := uniqueQueueID()

	// First attempt fails; the redelivery succeeds.
	var calls atomic.Int32
	reg := NewRegistry(&chatRecorder{})
	reg.Add("/start", func(context.Context, telegram.CallbackQuery) error {
		if calls.Add(1) == 1 {
			return errors.New("transient storage outage")
		}
		return nil
	})

	startWorker(t, cfg, reg, queueID)
	publishUpdate(t, cfg, queueID, startCallback(5))

	require.Eventually(t, func() bool { return calls.Load() >= 2 },
		20*time.Second, 100*time.Millisecond)
}

func TestWorker_DropsMalformedPayload(t *testing.T) {
	cfg := testbroker.NewTestConfig(t)
	queueID := uniqueQueueID()
	ctx := context.Background()

	var handled atomic.Int32
	reg := NewRegistry(&chatRecorder{})
	reg.Add("/start", func(context.Context, telegram.CallbackQuery) error {
		handled.Add(1)
		return nil
	})

	startWorker(t, cfg, reg, queueID)

	// Garbage first, then a real update: only the real one is dispatched
	// and the garbage does not wedge the queue.
	pub := broker.NewClient(cfg)
	require.NoError(t, pub.Connect(ctx))
	t.Cleanup(func() { _ = pub.Close() })
	queue := broker.QueueNameFor(queueID)
	require.NoError(t, pub.DeclareQueue(queue))
	require.NoError(t, pub.PublishUpdate(ctx, queue, []byte("{not json"), 5))

	publishUpdate(t, cfg, queueID, startCallback(5))

	require.Eventually(t, func() bool { return handled.Load() == 1 },
		15*time.Second, 50*time.Millisecond)
	time.Sleep(300 * time.Millisecond)
	require.Equal(t, int32(1), handled.Load())
}

func TestWorker_StopIsIdempotent(t *testing.T) {
	// An unreachable broker keeps the worker in its reconnect loop; Stop
	// must still return promptly, also when called twice.
	client := broker.NewClient(config.BrokerConfig{Host: "127.0.0.1", Port: 1})
	w := NewWorker(client, NewRegistry(&chatRecorder{}), 0)
	w.Start(context.Background())

	done := make(chan struct{})
	go func() {
		w.Stop()
		w.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("worker did not stop")
	}
}
