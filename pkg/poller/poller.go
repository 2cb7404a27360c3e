// Package poller fetches updates from the chat platform and shards them
// into the broker queues the workers consume. One poller runs per
// deployment; it is the only component that talks to getUpdates.
package poller

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/wordwheel/wheelbot/pkg/broker"
	"github.com/wordwheel/wheelbot/pkg/telegram"
)

const (
	// defaultPollTimeout is the long-poll hold time in seconds.
	defaultPollTimeout = 30

	// errorPause is the backoff after a transport failure.
	errorPause = 5 * time.Second

	// maxPublishAttempts bounds how often one update is retried before
	// the broker connection is torn down and redialed.
	maxPublishAttempts = 4

	// publishBackoff is the initial pause between publish attempts; it
	// doubles on every retry.
	publishBackoff = 500 * time.Millisecond
)

// UpdateSource fetches raw updates from the chat platform.
// *telegram.Client implements it.
type UpdateSource interface {
	FetchUpdates(ctx context.Context, offset int64, timeout int) ([]tgbotapi.Update, error)
}

// UpdatePublisher hands updates to the broker. *broker.Client implements
// it; publishes must be confirmed so an acknowledged update is never lost.
type UpdatePublisher interface {
	Connect(ctx context.Context) error
	EnableConfirms() error
	DeclareQueue(name string) error
	PublishUpdate(ctx context.Context, queue string, payload []byte, chatID int64) error
}

// Poller long-polls the chat platform and publishes every normalized
// update to its chat's shard queue. The offset only advances past an
// update once the broker has confirmed it (or the update turned out to be
// unusable), so a crash or broker outage never drops one.
type Poller struct {
	source    UpdateSource
	publisher UpdatePublisher
	numQueues int
	logger    *slog.Logger

	pollTimeout  int
	errorPause   time.Duration
	retryBackoff time.Duration

	offset int64

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewPoller creates a poller publishing into numQueues shard queues.
func NewPoller(source UpdateSource, publisher UpdatePublisher, numQueues int) *Poller {
	return &Poller{
		source:       source,
		publisher:    publisher,
		numQueues:    numQueues,
		logger:       slog.Default().With("component", "poller"),
		pollTimeout:  defaultPollTimeout,
		errorPause:   errorPause,
		retryBackoff: publishBackoff,
		stopCh:       make(chan struct{}),
	}
}

// Start begins polling in a goroutine.
func (p *Poller) Start(ctx context.Context) {
	p.wg.Add(1)
	go p.run(ctx)
}

// Stop signals the poller to stop and waits for the loop to exit. The
// in-flight long-poll is allowed to complete. Safe to call multiple times.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()
}

// Offset returns the next update id the poller will request.
func (p *Poller) Offset() int64 {
	return p.offset
}

func (p *Poller) run(ctx context.Context) {
	defer p.wg.Done()
	p.logger.Info("Poller started", "queues", p.numQueues)

	for {
		select {
		case <-p.stopCh:
			p.logger.Info("Poller shutting down")
			return
		case <-ctx.Done():
			p.logger.Info("Context cancelled, poller shutting down")
			return
		default:
		}

		if err := p.poll(ctx); err != nil {
			p.logger.Error("Polling failed, reconnecting", "error", err)
			p.sleep(p.errorPause)
		}
	}
}

// poll connects the publisher, declares every shard queue and fetches
// batches until the poller stops or the broker transport fails.
func (p *Poller) poll(ctx context.Context) error {
	if err := p.publisher.Connect(ctx); err != nil {
		return err
	}
	if err := p.publisher.EnableConfirms(); err != nil {
		return err
	}
	for i := 0; i < p.numQueues; i++ {
		if err := p.publisher.DeclareQueue(broker.QueueNameFor(i)); err != nil {
			return err
		}
	}
	p.logger.Info("Polling updates", "offset", p.offset)

	for {
		select {
		case <-p.stopCh:
			return nil
		case <-ctx.Done():
			return nil
		default:
		}

		batch, err := p.source.FetchUpdates(ctx, p.offset, p.pollTimeout)
		if err != nil {
			// Fetch failures do not invalidate the broker channel; pause
			// and re-poll from the same offset.
			p.logger.Error("Failed to fetch updates", "offset", p.offset, "error", err)
			p.sleep(p.errorPause)
			continue
		}

		if err := p.dispatchBatch(ctx, batch); err != nil {
			return err
		}
	}
}

// dispatchBatch publishes the batch in order. Updates the bot has no use
// for are skipped, but the offset still advances past them so one odd
// update cannot stall the feed. A publish failure stops the batch with the
// offset still pointing at the failed update; the next fetch re-reads it.
func (p *Poller) dispatchBatch(ctx context.Context, batch []tgbotapi.Update) error {
	for _, raw := range batch {
		u, err := telegram.ParseUpdate(raw)
		if err != nil {
			p.logger.Warn("Skipping update", "update_id", raw.UpdateID, "error", err)
			p.offset = int64(raw.UpdateID) + 1
			continue
		}

		if err := p.publish(ctx, u); err != nil {
			return fmt.Errorf("failed to publish update %d: %w", u.UpdateID, err)
		}
		p.offset = u.UpdateID + 1
	}
	return nil
}

// publish pushes one update to its chat's shard queue, retrying with
// doubling backoff until the attempts are exhausted.
func (p *Poller) publish(ctx context.Context, u telegram.Update) error {
	payload, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to marshal update: %w", err)
	}
	chatID := u.Body.Chat()
	queue := broker.QueueName(chatID, p.numQueues)

	backoff := p.retryBackoff
	var lastErr error
	for attempt := 1; attempt <= maxPublishAttempts; attempt++ {
		if attempt > 1 {
			if !p.sleep(backoff) {
				return lastErr
			}
			backoff *= 2
		}

		if lastErr = p.publisher.PublishUpdate(ctx, queue, payload, chatID); lastErr == nil {
			p.logger.Debug("Published update",
				"update_id", u.UpdateID, "chat_id", chatID, "queue", queue)
			return nil
		}
		p.logger.Warn("Publish failed",
			"update_id", u.UpdateID, "queue", queue, "attempt", attempt, "error", lastErr)
	}
	return lastErr
}

// sleep waits for the given duration; false means the poller was stopped
// while waiting.
func (p *Poller) sleep(d time.Duration) bool {
	select {
	case <-p.stopCh:
		return false
	case <-time.After(d):
		return true
	}
}
