package metrics

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGauges(t *testing.T) {
	ActiveGames.Set(0)
	ActivePlayers.Set(0)

	ActiveGames.Inc()
	ActivePlayers.Inc()
	ActivePlayers.Inc()
	ActivePlayers.Dec()

	// The registered values are observable through the exposition endpoint
	port := freePort(t)
	server := NewServer(port)
	server.Start()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = server.Stop(ctx)
	})

	body := scrape(t, port)
	assert.Contains(t, body, "app_active_games 1")
	assert.Contains(t, body, "app_active_players 1")

	ActiveGames.Dec()
	body = scrape(t, port)
	assert.Contains(t, body, "app_active_games 0")
}

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())
	return port
}

func scrape(t *testing.T, port int) string {
	t.Helper()

	url := fmt.Sprintf("http://127.0.0.1:%d/metrics", port)
	var lastErr error
	for i := 0; i < 50; i++ {
		resp, err := http.Get(url)
		if err != nil {
			lastErr = err
			time.Sleep(20 * time.Millisecond)
			continue
		}
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return string(body)
	}
	t.Fatalf("metrics endpoint never came up: %v", lastErr)
	return ""
}
