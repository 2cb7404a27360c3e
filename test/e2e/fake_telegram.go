package e2e

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// sentMessage is one outbound sendMessage recorded by the fake Bot API.
type sentMessage struct {
	ChatID int64
	Text   string
	Markup string
}

// fakeTelegram mimics the Bot API for the whole pipeline: getUpdates serves
// injected updates honoring the offset parameter the way the real API does,
// sendMessage records the outbound traffic the assertions read.
type fakeTelegram struct {
	server *httptest.Server

	mu      sync.Mutex
	updates []tgbotapi.Update
	nextID  int
	sent    []sentMessage
}

func newFakeTelegram(t *testing.T) *fakeTelegram {
	t.Helper()
	f := &fakeTelegram{nextID: 1}
	f.server = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.server.Close)
	return f
}

// Endpoint returns the Bot API endpoint template for NewClientWithEndpoint.
func (f *fakeTelegram) Endpoint() string {
	return f.server.URL + "/bot%s/%s"
}

func (f *fakeTelegram) handle(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	method := path.Base(r.URL.Path)

	w.Header().Set("Content-Type", "application/json")
	switch method {
	case "getMe":
		fmt.Fprint(w, `{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"Wheel","username":"wheel_bot"}}`)
	case "getUpdates":
		offset, _ := strconv.Atoi(r.PostForm.Get("offset"))
		batch := f.pending(offset)
		if len(batch) == 0 {
			// Short hold instead of the real long poll so empty polls
			// do not spin.
			time.Sleep(50 * time.Millisecond)
		}
		payload, _ := json.Marshal(batch)
		fmt.Fprintf(w, `{"ok":true,"result":%s}`, payload)
	case "sendMessage":
		chatID, _ := strconv.ParseInt(r.PostForm.Get("chat_id"), 10, 64)
		f.mu.Lock()
		f.sent = append(f.sent, sentMessage{
			ChatID: chatID,
			Text:   r.PostForm.Get("text"),
			Markup: r.PostForm.Get("reply_markup"),
		})
		f.mu.Unlock()
		fmt.Fprint(w, `{"ok":true,"result":{"message_id":1,"date":1,"chat":{"id":1,"type":"group"}}}`)
	default:
		fmt.Fprint(w, `{"ok":true,"result":true}`)
	}
}

// pending returns the injected updates the given offset has not consumed yet.
func (f *fakeTelegram) pending(offset int) []tgbotapi.Update {
	f.mu.Lock()
	defer f.mu.Unlock()

	var batch []tgbotapi.Update
	for _, u := range f.updates {
		if u.UpdateID >= offset {
			batch = append(batch, u)
		}
	}
	return batch
}

// InjectText queues a plain chat message for the poller to fetch.
func (f *fakeTelegram) InjectText(chatID, fromID int64, username, text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, tgbotapi.Update{
		UpdateID: f.nextID,
		Message: &tgbotapi.Message{
			MessageID: f.nextID,
			Date:      int(time.Now().Unix()),
			Text:      text,
			From:      &tgbotapi.User{ID: fromID, UserName: username},
			Chat:      &tgbotapi.Chat{ID: chatID},
		},
	})
	f.nextID++
}

// InjectCallback queues an inline-button press.
func (f *fakeTelegram) InjectCallback(chatID, fromID int64, username, command string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, tgbotapi.Update{
		UpdateID: f.nextID,
		CallbackQuery: &tgbotapi.CallbackQuery{
			ID:   fmt.Sprintf("cb-%d", f.nextID),
			Data: command,
			From: &tgbotapi.User{ID: fromID, UserName: username},
			Message: &tgbotapi.Message{
				MessageID: f.nextID,
				Date:      int(time.Now().Unix()),
				Chat:      &tgbotapi.Chat{ID: chatID},
			},
		},
	})
	f.nextID++
}

// SentTo snapshots every text sent to a chat so far, in send order.
func (f *fakeTelegram) SentTo(chatID int64) []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []string
	for _, m := range f.sent {
		if m.ChatID == chatID {
			out = append(out, m.Text)
		}
	}
	return out
}

// Count returns how many messages the chat has received so far.
func (f *fakeTelegram) Count(chatID int64) int {
	return len(f.SentTo(chatID))
}

// WaitSince blocks until a message containing substr arrives at the chat at
// message index since or later, returning its text.
func (f *fakeTelegram) WaitSince(t *testing.T, chatID int64, since int, substr string) string {
	t.Helper()

	deadline := time.Now().Add(15 * time.Second)
	for time.Now().Before(deadline) {
		msgs := f.SentTo(chatID)
		for i := since; i < len(msgs); i++ {
			if strings.Contains(msgs[i], substr) {
				return msgs[i]
			}
		}
		time.Sleep(25 * time.Millisecond)
	}

	t.Fatalf("no message containing %q reached chat %d; messages: %q",
		substr, chatID, f.SentTo(chatID))
	return ""
}

// WaitForMessage blocks until any message containing substr reaches the chat.
func (f *fakeTelegram) WaitForMessage(t *testing.T, chatID int64, substr string) string {
	t.Helper()
	return f.WaitSince(t, chatID, 0, substr)
}
