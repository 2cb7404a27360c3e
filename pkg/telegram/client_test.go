package telegram

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path"
	"sync"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// telegramCall captures one Bot API request to the mock.
type telegramCall struct {
	method string
	params url.Values
}

// mockTelegramServer mimics the Telegram Bot API, recording every request
// and serving canned responses.
type mockTelegramServer struct {
	mu    sync.Mutex
	calls []telegramCall

	server        *httptest.Server
	updates       []tgbotapi.Update
	failCallbacks bool
}

func newMockTelegramServer(t *testing.T) *mockTelegramServer {
	t.Helper()
	m := &mockTelegramServer{}
	m.server = httptest.NewServer(http.HandlerFunc(m.handle))
	t.Cleanup(m.server.Close)
	return m
}

func (m *mockTelegramServer) handle(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	method := path.Base(r.URL.Path)

	m.mu.Lock()
	m.calls = append(m.calls, telegramCall{method: method, params: r.PostForm})
	failCallbacks := m.failCallbacks
	updates := m.updates
	m.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	switch method {
	case "getMe":
		fmt.Fprint(w, `{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"Wheel","username":"wheel_bot"}}`)
	case "getUpdates":
		payload, _ := json.Marshal(updates)
		fmt.Fprintf(w, `{"ok":true,"result":%s}`, payload)
	case "sendMessage":
		fmt.Fprint(w, `{"ok":true,"result":{"message_id":99,"date":1,"chat":{"id":1,"type":"group"}}}`)
	case "answerCallbackQuery":
		if failCallbacks {
			fmt.Fprint(w, `{"ok":false,"error_code":400,"description":"Bad Request: query is too old"}`)
			return
		}
		fmt.Fprint(w, `{"ok":true,"result":true}`)
	default:
		fmt.Fprint(w, `{"ok":true,"result":true}`)
	}
}

// callsFor returns the recorded parameters of every call to a method.
func (m *mockTelegramServer) callsFor(method string) []url.Values {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []url.Values
	for _, c := range m.calls {
		if c.method == method {
			out = append(out, c.params)
		}
	}
	return out
}

func newTestClient(t *testing.T, m *mockTelegramServer) *Client {
	t.Helper()
	client, err := NewClientWithEndpoint("test-token", m.server.URL+"/bot%s/%s")
	require.NoError(t, err)
	return client
}

func TestClient_SendMessage(t *testing.T) {
	m := newMockTelegramServer(t)
	client := newTestClient(t, m)

	err := client.SendMessage(context.Background(), -100123, "Подключились (1/2) игроков")
	require.NoError(t, err)

	calls := m.callsFor("sendMessage")
	require.Len(t, calls, 1)
	assert.Equal(t, "-100123", calls[0].Get("chat_id"))
	assert.Equal(t, "Подключились (1/2) игроков", calls[0].Get("text"))
}

func TestClient_Buttons(t *testing.T) {
	m := newMockTelegramServer(t)
	client := newTestClient(t, m)
	ctx := context.Background()

	t.Run("start button", func(t *testing.T) {
		err := client.SendButtonStart(ctx, 555)
		require.NoError(t, err)

		calls := m.callsFor("sendMessage")
		require.NotEmpty(t, calls)
		last := calls[len(calls)-1]
		assert.Equal(t, "Запустить игру?", last.Get("text"))
		assert.Contains(t, last.Get("reply_markup"), "Начать игру")
		assert.Contains(t, last.Get("reply_markup"), "/start")
	})

	t.Run("join button", func(t *testing.T) {
		err := client.SendButtonJoin(ctx, 555)
		require.NoError(t, err)

		calls := m.callsFor("sendMessage")
		last := calls[len(calls)-1]
		assert.Equal(t, "Присоединиться к игре?", last.Get("text"))
		assert.Contains(t, last.Get("reply_markup"), "Присоединиться")
		assert.Contains(t, last.Get("reply_markup"), "/join")
	})

	t.Run("turn buttons carry all three actions", func(t *testing.T) {
		err := client.SendTurnButtons(ctx, 555, "alice", "Столица Франции", "П А Р И _", 100, 450)
		require.NoError(t, err)

		calls := m.callsFor("sendMessage")
		last := calls[len(calls)-1]
		text := last.Get("text")
		assert.Contains(t, text, "@alice")
		assert.Contains(t, text, "Столица Франции")
		assert.Contains(t, text, "П А Р И _")
		assert.Contains(t, text, "450")

		markup := last.Get("reply_markup")
		for _, want := range []string{"/leave_game", "/say_letter", "/say_word", "Покинуть игру", "Назвать букву", "Назвать слово"} {
			assert.Contains(t, markup, want)
		}
	})
}

func TestClient_AnswerCallback(t *testing.T) {
	m := newMockTelegramServer(t)
	client := newTestClient(t, m)
	ctx := context.Background()

	t.Run("acknowledges the press", func(t *testing.T) {
		client.AnswerCallback(ctx, "cb-1", "Старт игры")

		calls := m.callsFor("answerCallbackQuery")
		require.Len(t, calls, 1)
		assert.Equal(t, "cb-1", calls[0].Get("callback_query_id"))
		assert.Equal(t, "Старт игры", calls[0].Get("text"))
	})

	t.Run("swallows expired callbacks", func(t *testing.T) {
		m.mu.Lock()
		m.failCallbacks = true
		m.mu.Unlock()

		// Must not panic or surface the API error
		client.AnswerCallback(ctx, "cb-2", "")
		assert.Len(t, m.callsFor("answerCallbackQuery"), 2)
	})
}

func TestClient_FetchUpdates(t *testing.T) {
	m := newMockTelegramServer(t)
	m.updates = []tgbotapi.Update{
		{
			UpdateID: 301,
			Message: &tgbotapi.Message{
				MessageID: 1,
				Date:      1700000000,
				Text:      "/start",
				From:      &tgbotapi.User{ID: 42, UserName: "alice"},
				Chat:      &tgbotapi.Chat{ID: -100123},
			},
		},
		{
			UpdateID: 302,
			Message: &tgbotapi.Message{
				MessageID: 2,
				Date:      1700000001,
				Text:      "а",
				From:      &tgbotapi.User{ID: 43, UserName: "bob"},
				Chat:      &tgbotapi.Chat{ID: -100123},
			},
		},
	}
	client := newTestClient(t, m)

	updates, err := client.FetchUpdates(context.Background(), 301, 25)
	require.NoError(t, err)
	require.Len(t, updates, 2)
	assert.Equal(t, 301, updates[0].UpdateID)
	assert.Equal(t, 302, updates[1].UpdateID)

	calls := m.callsFor("getUpdates")
	require.Len(t, calls, 1)
	assert.Equal(t, "301", calls[0].Get("offset"))
	assert.Equal(t, "25", calls[0].Get("timeout"))
	assert.Contains(t, calls[0].Get("allowed_updates"), "callback_query")

	t.Run("cancelled context short-circuits", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := client.FetchUpdates(cancelled, 0, 0)
		assert.Error(t, err)
	})
}
