// Package bot consumes a shard of the update queues and drives the games of
// the chats pinned to it: registry dispatch, command handlers and the
// consume loop itself.
package bot

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/wordwheel/wheelbot/pkg/broker"
	"github.com/wordwheel/wheelbot/pkg/telegram"
)

const (
	// handlerErrorPause throttles redeliveries of a failing update.
	handlerErrorPause = time.Second

	// reconnectPause is the backoff after losing the broker connection.
	reconnectPause = 5 * time.Second
)

// Worker consumes one update queue. Because every chat is sharded onto
// exactly one queue and deliveries are acked one at a time, the worker is
// the single writer for its chats' games.
type Worker struct {
	broker   *broker.Client
	registry *Registry
	queue    string
	logger   *slog.Logger
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewWorker creates a worker bound to the queueID-th update queue.
func NewWorker(brokerClient *broker.Client, registry *Registry, queueID int) *Worker {
	queue := broker.QueueNameFor(queueID)
	return &Worker{
		broker:   brokerClient,
		registry: registry,
		queue:    queue,
		logger:   slog.Default().With("component", "bot-worker", "queue", queue),
		stopCh:   make(chan struct{}),
	}
}

// Start begins consuming in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for the in-flight delivery to
// finish. Safe to call multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()
	w.logger.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			w.logger.Info("Worker shutting down")
			return
		case <-ctx.Done():
			w.logger.Info("Context cancelled, worker shutting down")
			return
		default:
		}

		if err := w.consume(ctx); err != nil {
			w.logger.Error("Consume loop failed, reconnecting", "error", err)
			w.sleep(reconnectPause)
		}
	}
}

// consume connects, declares the queue and processes deliveries until the
// connection dies or the worker stops.
func (w *Worker) consume(ctx context.Context) error {
	if err := w.broker.Connect(ctx); err != nil {
		return err
	}
	if err := w.broker.DeclareQueue(w.queue); err != nil {
		return err
	}
	deliveries, err := w.broker.Consume(w.queue)
	if err != nil {
		return err
	}
	closed := w.broker.NotifyClose()

	w.logger.Info("Consuming updates")
	for {
		select {
		case <-w.stopCh:
			return nil
		case <-ctx.Done():
			return nil
		case amqpErr := <-closed:
			if amqpErr != nil {
				return fmt.Errorf("broker connection lost: %w", amqpErr)
			}
			return fmt.Errorf("broker connection closed")
		case d, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("delivery channel closed")
			}
			w.handleDelivery(ctx, d)
		}
	}
}

// handleDelivery acks an update once its handler succeeds. Handler failures
// requeue the update after a pause, so a transient outage retries the same
// update instead of losing it. Payloads that do not parse are dropped:
// redelivery cannot fix those.
func (w *Worker) handleDelivery(ctx context.Context, d amqp.Delivery) {
	var update telegram.Update
	if err := json.Unmarshal(d.Body, &update); err != nil {
		w.logger.Error("Failed to decode update, dropping", "error", err)
		w.ack(d)
		return
	}

	if err := w.dispatch(ctx, update); err != nil {
		w.logger.Error("Failed to handle update, requeueing", "update_id", update.UpdateID, "error", err)
		w.sleep(handlerErrorPause)
		if err := d.Nack(false, true); err != nil {
			w.logger.Warn("Failed to nack delivery", "error", err)
		}
		return
	}
	w.ack(d)
}

// dispatch runs the registry and converts a handler panic into an error so
// one broken update cannot take the worker down.
func (w *Worker) dispatch(ctx context.Context, update telegram.Update) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in handler: %v", r)
		}
	}()
	return w.registry.Dispatch(ctx, update)
}

func (w *Worker) ack(d amqp.Delivery) {
	if err := d.Ack(false); err != nil {
		w.logger.Warn("Failed to ack delivery", "error", err)
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}
