// Package broker provides shared RabbitMQ test infrastructure.
//
// In CI (when CI_AMQP_URL is set) tests connect to an externally managed
// broker. In local development a single rabbitmq testcontainer is started
// per test binary and shared by every test in it.
package broker

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	tcrabbitmq "github.com/testcontainers/testcontainers-go/modules/rabbitmq"

	"github.com/wordwheel/wheelbot/pkg/config"
)

var (
	rabbitOnce sync.Once
	rabbitURL  string
	rabbitErr  error
)

// NewTestConfig returns a BrokerConfig pointing at a live RabbitMQ.
func NewTestConfig(t *testing.T) config.BrokerConfig {
	t.Helper()

	rabbitOnce.Do(func() {
		if ciURL := os.Getenv("CI_AMQP_URL"); ciURL != "" {
			rabbitURL = ciURL
			return
		}

		ctx := context.Background()
		container, err := tcrabbitmq.Run(ctx, "rabbitmq:3.13-alpine")
		if err != nil {
			rabbitErr = fmt.Errorf("failed to start rabbitmq container: %w", err)
			return
		}

		amqpURL, err := container.AmqpURL(ctx)
		if err != nil {
			rabbitErr = fmt.Errorf("failed to get amqp url: %w", err)
			return
		}
		rabbitURL = amqpURL
	})
	require.NoError(t, rabbitErr, "Failed to setup shared rabbitmq container")

	parsed, err := url.Parse(rabbitURL)
	require.NoError(t, err)
	port, err := strconv.Atoi(parsed.Port())
	require.NoError(t, err)
	password, _ := parsed.User.Password()

	return config.BrokerConfig{
		Host:          parsed.Hostname(),
		Port:          port,
		User:          parsed.User.Username(),
		Password:      password,
		NumberQueues:  4,
		PrefetchCount: 1,
	}
}
