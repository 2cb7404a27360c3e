package poller

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordwheel/wheelbot/pkg/broker"
	"github.com/wordwheel/wheelbot/pkg/telegram"
)

// fakeSource serves scripted batches and records the offset of every fetch.
type fakeSource struct {
	mu      sync.Mutex
	batches [][]tgbotapi.Update
	offsets []int64
}

func (f *fakeSource) FetchUpdates(ctx context.Context, offset int64, timeout int) ([]tgbotapi.Update, error) {
	f.mu.Lock()
	f.offsets = append(f.offsets, offset)
	var batch []tgbotapi.Update
	if len(f.batches) > 0 {
		batch = f.batches[0]
		f.batches = f.batches[1:]
	}
	f.mu.Unlock()

	if batch == nil {
		// Stand in for the long-poll hold so the loop does not spin hot.
		select {
		case <-ctx.Done():
		case <-time.After(10 * time.Millisecond):
		}
	}
	return batch, nil
}

func (f *fakeSource) seenOffsets() []int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int64(nil), f.offsets...)
}

type publishedUpdate struct {
	queue   string
	payload []byte
	chatID  int64
}

// fakePublisher records publishes; failures > 0 fails that many calls,
// failures < 0 fails every call.
type fakePublisher struct {
	mu        sync.Mutex
	connects  int
	confirms  int
	declared  []string
	published []publishedUpdate
	attempts  int
	failures  int
}

func (f *fakePublisher) Connect(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.connects++
	return nil
}

func (f *fakePublisher) EnableConfirms() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.confirms++
	return nil
}

func (f *fakePublisher) DeclareQueue(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.declared = append(f.declared, name)
	return nil
}

func (f *fakePublisher) PublishUpdate(ctx context.Context, queue string, payload []byte, chatID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.attempts++
	if f.failures != 0 {
		if f.failures > 0 {
			f.failures--
		}
		return errors.New("channel is not open")
	}
	f.published = append(f.published, publishedUpdate{queue: queue, payload: payload, chatID: chatID})
	return nil
}

func (f *fakePublisher) publishedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.published)
}

func (f *fakePublisher) connectCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.connects
}

func (f *fakePublisher) attemptCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.attempts
}

func (f *fakePublisher) publishedUpdates() []publishedUpdate {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]publishedUpdate(nil), f.published...)
}

func newTestPoller(source UpdateSource, publisher UpdatePublisher, numQueues int) *Poller {
	p := NewPoller(source, publisher, numQueues)
	p.errorPause = time.Millisecond
	p.retryBackoff = time.Millisecond
	return p
}

func messageUpdate(updateID int, chatID int64, text string) tgbotapi.Update {
	return tgbotapi.Update{
		UpdateID: updateID,
		Message: &tgbotapi.Message{
			MessageID: updateID * 10,
			Date:      1700000000,
			Chat:      &tgbotapi.Chat{ID: chatID},
			From:      &tgbotapi.User{ID: 500, UserName: "vera"},
			Text:      text,
		},
	}
}

func callbackUpdate(updateID int, chatID int64, data string) tgbotapi.Update {
	return tgbotapi.Update{
		UpdateID: updateID,
		CallbackQuery: &tgbotapi.CallbackQuery{
			ID:   "cb-1",
			Data: data,
			From: &tgbotapi.User{ID: 501, UserName: "maks"},
			Message: &tgbotapi.Message{
				MessageID: 42,
				Date:      1700000001,
				Chat:      &tgbotapi.Chat{ID: chatID},
			},
		},
	}
}

func TestPollerPublishesBatch(t *testing.T) {
	source := &fakeSource{batches: [][]tgbotapi.Update{{
		messageUpdate(10, 77, "/start"),
		callbackUpdate(11, -100123, "/join"),
	}}}
	publisher := &fakePublisher{}
	p := newTestPoller(source, publisher, 2)

	p.Start(context.Background())
	require.Eventually(t, func() bool { return publisher.publishedCount() == 2 },
		2*time.Second, 10*time.Millisecond)
	// Wait for the fetch after the batch so the advanced offset is visible.
	require.Eventually(t, func() bool {
		offsets := source.seenOffsets()
		return offsets[len(offsets)-1] == 12
	}, 2*time.Second, 10*time.Millisecond)
	p.Stop()

	assert.Equal(t, []string{"update_queue_0", "update_queue_1"}, publisher.declared)
	assert.Equal(t, int64(12), p.Offset())

	published := publisher.publishedUpdates()
	require.Len(t, published, 2)

	assert.Equal(t, broker.QueueName(77, 2), published[0].queue)
	assert.Equal(t, int64(77), published[0].chatID)
	var first telegram.Update
	require.NoError(t, json.Unmarshal(published[0].payload, &first))
	assert.Equal(t, int64(10), first.UpdateID)
	msg, ok := first.Body.(telegram.Message)
	require.True(t, ok)
	assert.Equal(t, "/start", msg.Text)
	assert.Equal(t, "vera", msg.FromUsername)

	assert.Equal(t, broker.QueueName(-100123, 2), published[1].queue)
	assert.Equal(t, int64(-100123), published[1].chatID)
	var second telegram.Update
	require.NoError(t, json.Unmarshal(published[1].payload, &second))
	query, ok := second.Body.(telegram.CallbackQuery)
	require.True(t, ok)
	assert.Equal(t, "/join", query.Command)

	// The very first fetch started from offset zero.
	offsets := source.seenOffsets()
	require.NotEmpty(t, offsets)
	assert.Equal(t, int64(0), offsets[0])
}

func TestPollerSkipsUnsupportedUpdates(t *testing.T) {
	source := &fakeSource{batches: [][]tgbotapi.Update{{
		{UpdateID: 5}, // neither message nor callback
		messageUpdate(6, 42, "привет"),
	}}}
	publisher := &fakePublisher{}
	p := newTestPoller(source, publisher, 1)

	p.Start(context.Background())
	require.Eventually(t, func() bool { return publisher.publishedCount() == 1 },
		2*time.Second, 10*time.Millisecond)
	p.Stop()

	// The unsupported update was not published but the offset moved past it.
	assert.Equal(t, int64(7), p.Offset())
	published := publisher.publishedUpdates()
	require.Len(t, published, 1)
	var u telegram.Update
	require.NoError(t, json.Unmarshal(published[0].payload, &u))
	assert.Equal(t, int64(6), u.UpdateID)
}

func TestPollerRetriesFailedPublish(t *testing.T) {
	source := &fakeSource{batches: [][]tgbotapi.Update{{
		messageUpdate(3, 9, "буква а"),
	}}}
	publisher := &fakePublisher{failures: 1}
	p := newTestPoller(source, publisher, 1)

	p.Start(context.Background())
	require.Eventually(t, func() bool { return publisher.publishedCount() == 1 },
		2*time.Second, 10*time.Millisecond)
	p.Stop()

	assert.Equal(t, 2, publisher.attemptCount())
	assert.Equal(t, int64(4), p.Offset())
}

func TestPollerKeepsOffsetWhenPublishExhausted(t *testing.T) {
	source := &fakeSource{batches: [][]tgbotapi.Update{{
		messageUpdate(9, 13, "/start"),
	}}}
	publisher := &fakePublisher{failures: -1}
	p := newTestPoller(source, publisher, 1)

	p.Start(context.Background())
	// The failed batch tears the session down; a second connect proves the
	// poller went through its reconnect path.
	require.Eventually(t, func() bool { return publisher.connectCount() >= 2 },
		2*time.Second, 10*time.Millisecond)
	p.Stop()

	assert.Zero(t, p.Offset())
	assert.Empty(t, publisher.publishedUpdates())
	assert.GreaterOrEqual(t, publisher.attemptCount(), maxPublishAttempts)
	for _, offset := range source.seenOffsets() {
		assert.Zero(t, offset)
	}
}

func TestPollerStopIsIdempotent(t *testing.T) {
	p := newTestPoller(&fakeSource{}, &fakePublisher{}, 1)
	p.Start(context.Background())
	p.Stop()
	p.Stop()
}
