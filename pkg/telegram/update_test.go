package telegram

import (
	"encoding/json"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUpdate(t *testing.T) {
	t.Run("normalizes a chat message", func(t *testing.T) {
		raw := tgbotapi.Update{
			UpdateID: 101,
			Message: &tgbotapi.Message{
				MessageID: 55,
				Date:      1700000000,
				Text:      "Привет",
				From:      &tgbotapi.User{ID: 42, UserName: "alice"},
				Chat:      &tgbotapi.Chat{ID: -100123},
			},
		}

		u, err := ParseUpdate(raw)
		require.NoError(t, err)
		assert.Equal(t, int64(101), u.UpdateID)
		assert.Equal(t, int64(1700000000), u.Date)

		msg, ok := u.Body.(Message)
		require.True(t, ok)
		assert.Equal(t, int64(-100123), msg.ChatID)
		assert.Equal(t, "Привет", msg.Text)
		assert.Equal(t, 55, msg.MessageID)
		assert.Equal(t, int64(42), msg.FromID)
		assert.Equal(t, "alice", msg.FromUsername)
	})

	t.Run("normalizes a button press", func(t *testing.T) {
		raw := tgbotapi.Update{
			UpdateID: 102,
			CallbackQuery: &tgbotapi.CallbackQuery{
				ID:   "cb-1",
				Data: "/join",
				From: &tgbotapi.User{ID: 43, UserName: "bob"},
				Message: &tgbotapi.Message{
					MessageID: 56,
					Date:      1700000060,
					Chat:      &tgbotapi.Chat{ID: -100123},
				},
			},
		}

		u, err := ParseUpdate(raw)
		require.NoError(t, err)

		q, ok := u.Body.(CallbackQuery)
		require.True(t, ok)
		assert.Equal(t, "cb-1", q.CallbackID)
		assert.Equal(t, "/join", q.Command)
		assert.Equal(t, int64(-100123), q.ChatID)
		assert.Equal(t, int64(43), q.FromID)
		assert.Equal(t, "bob", q.FromUsername)
	})

	t.Run("falls back to first name without a username", func(t *testing.T) {
		raw := tgbotapi.Update{
			UpdateID: 103,
			Message: &tgbotapi.Message{
				MessageID: 57,
				Date:      1700000120,
				Text:      "hi",
				From:      &tgbotapi.User{ID: 44, FirstName: "Карл"},
				Chat:      &tgbotapi.Chat{ID: 777},
			},
		}

		u, err := ParseUpdate(raw)
		require.NoError(t, err)
		assert.Equal(t, "Карл", u.Body.(Message).FromUsername)
	})

	t.Run("rejects callback without source message", func(t *testing.T) {
		raw := tgbotapi.Update{
			UpdateID: 104,
			CallbackQuery: &tgbotapi.CallbackQuery{
				ID:   "cb-2",
				Data: "/start",
				From: &tgbotapi.User{ID: 45, UserName: "carol"},
			},
		}

		_, err := ParseUpdate(raw)
		assert.ErrorIs(t, err, ErrUnsupportedUpdate)
	})

	t.Run("rejects update without payload", func(t *testing.T) {
		_, err := ParseUpdate(tgbotapi.Update{UpdateID: 105})
		assert.ErrorIs(t, err, ErrUnsupportedUpdate)
	})
}

func TestUpdateJSON(t *testing.T) {
	t.Run("message body wire format", func(t *testing.T) {
		u := Update{
			UpdateID: 201,
			Date:     1700000000,
			Body: Message{
				ChatID:       -100123,
				Text:         "буква а",
				MessageID:    55,
				FromID:       42,
				FromUsername: "alice",
			},
		}

		data, err := json.Marshal(u)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"update_id": 201,
			"date": 1700000000,
			"body": {
				"chat_id": -100123,
				"text": "буква а",
				"message_id": 55,
				"from_id": 42,
				"from_username": "alice"
			}
		}`, string(data))
	})

	t.Run("callback body wire format", func(t *testing.T) {
		u := Update{
			UpdateID: 202,
			Date:     1700000060,
			Body: CallbackQuery{
				CallbackID:   "cb-1",
				ChatID:       -100123,
				Command:      "/join",
				MessageID:    56,
				FromID:       43,
				FromUsername: "bob",
			},
		}

		data, err := json.Marshal(u)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"update_id": 202,
			"date": 1700000060,
			"body": {
				"callback_id": "cb-1",
				"chat_id": -100123,
				"command": "/join",
				"message_id": 56,
				"from_id": 43,
				"from_username": "bob"
			}
		}`, string(data))
	})

	t.Run("round trip is byte identical", func(t *testing.T) {
		for name, u := range map[string]Update{
			"message": {
				UpdateID: 203,
				Date:     1700000120,
				Body:     Message{ChatID: 1, Text: "слово", MessageID: 2, FromID: 3, FromUsername: "dave"},
			},
			"callback": {
				UpdateID: 204,
				Date:     1700000180,
				Body:     CallbackQuery{CallbackID: "cb-9", ChatID: 1, Command: "/say_word", MessageID: 4, FromID: 5, FromUsername: "erin"},
			},
		} {
			t.Run(name, func(t *testing.T) {
				first, err := json.Marshal(u)
				require.NoError(t, err)

				var decoded Update
				require.NoError(t, json.Unmarshal(first, &decoded))
				assert.Equal(t, u, decoded)

				second, err := json.Marshal(decoded)
				require.NoError(t, err)
				assert.Equal(t, first, second)
			})
		}
	})
}
