package broker

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wordwheel/wheelbot/pkg/config"
)

// Header values every update message carries.
const (
	MessageTypeUpdate = "telegram_update"
	messageEncoding   = "utf-8"
	contentTypeJSON   = "application/json"
)

// Client owns one AMQP connection and channel. It is not safe for
// concurrent publishing; the poller and each worker hold their own Client.
type Client struct {
	cfg    config.BrokerConfig
	logger *slog.Logger

	mu       sync.Mutex
	conn     *amqp.Connection
	ch       *amqp.Channel
	confirms bool
}

// NewClient creates an unconnected broker client.
func NewClient(cfg config.BrokerConfig) *Client {
	return &Client{
		cfg:    cfg,
		logger: slog.Default().With("component", "broker-client"),
	}
}

// URL returns the AMQP connection URL the client dials.
func (c *Client) URL() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%d/", c.cfg.User, c.cfg.Password, c.cfg.Host, c.cfg.Port)
}

// Connect dials the broker and opens a channel with the configured
// prefetch. Safe to call again after a connection loss; any previous
// connection is torn down first.
func (c *Client) Connect(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.closeLocked()

	conn, err := amqp.Dial(c.URL())
	if err != nil {
		return fmt.Errorf("failed to dial broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("failed to open channel: %w", err)
	}

	if err := ch.Qos(c.cfg.PrefetchCount, 0, false); err != nil {
		_ = conn.Close()
		return fmt.Errorf("failed to set qos: %w", err)
	}

	c.conn = conn
	c.ch = ch
	c.confirms = false
	c.logger.Info("Connected to broker", "host", c.cfg.Host, "port", c.cfg.Port)
	return nil
}

// EnableConfirms puts the channel into publisher-confirm mode. The poller
// uses it so an offset is only advanced once the broker owns the message.
func (c *Client) EnableConfirms() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ch == nil {
		return fmt.Errorf("not connected")
	}
	if err := c.ch.Confirm(false); err != nil {
		return fmt.Errorf("failed to enable publisher confirms: %w", err)
	}
	c.confirms = true
	return nil
}

// DeclareQueue declares a durable queue, creating it on first use.
func (c *Client) DeclareQueue(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ch == nil {
		return fmt.Errorf("not connected")
	}
	if _, err := c.ch.QueueDeclare(name, true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", name, err)
	}
	return nil
}

// PublishUpdate publishes one serialized update to a queue as a persistent
// JSON message. With confirms enabled it blocks until the broker
// acknowledges the message.
func (c *Client) PublishUpdate(ctx context.Context, queue string, payload []byte, chatID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ch == nil {
		return fmt.Errorf("not connected")
	}

	msg := amqp.Publishing{
		ContentType:  contentTypeJSON,
		DeliveryMode: amqp.Persistent,
		Headers: amqp.Table{
			"message_type": MessageTypeUpdate,
			"encoding":     messageEncoding,
			"chat_id":      strconv.FormatInt(chatID, 10),
		},
		Body: payload,
	}

	if !c.confirms {
		if err := c.ch.PublishWithContext(ctx, "", queue, false, false, msg); err != nil {
			return fmt.Errorf("failed to publish to %s: %w", queue, err)
		}
		return nil
	}

	confirmation, err := c.ch.PublishWithDeferredConfirmWithContext(ctx, "", queue, false, false, msg)
	if err != nil {
		return fmt.Errorf("failed to publish to %s: %w", queue, err)
	}
	acked, err := confirmation.WaitContext(ctx)
	if err != nil {
		return fmt.Errorf("waiting for publish confirm on %s: %w", queue, err)
	}
	if !acked {
		return fmt.Errorf("broker nacked publish to %s", queue)
	}
	return nil
}

// Consume starts delivering a queue's messages for manual acknowledgement.
func (c *Client) Consume(queue string) (<-chan amqp.Delivery, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ch == nil {
		return nil, fmt.Errorf("not connected")
	}

	tag := fmt.Sprintf("%s-%s", queue, uuid.New().String()[:8])
	deliveries, err := c.ch.Consume(queue, tag, false, false, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to consume from %s: %w", queue, err)
	}
	return deliveries, nil
}

// NotifyClose reports asynchronous connection loss. The returned channel
// receives at most one error and is closed on graceful shutdown.
func (c *Client) NotifyClose() <-chan *amqp.Error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		closed := make(chan *amqp.Error)
		close(closed)
		return closed
	}
	return c.conn.NotifyClose(make(chan *amqp.Error, 1))
}

// Close tears down the channel and connection.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closeLocked()
	return nil
}

func (c *Client) closeLocked() {
	if c.ch != nil {
		_ = c.ch.Close()
		c.ch = nil
	}
	if c.conn != nil {
		_ = c.conn.Close()
		c.conn = nil
	}
	c.confirms = false
}
