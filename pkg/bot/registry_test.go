package bot

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordwheel/wheelbot/pkg/telegram"
)

func TestRegistry_DispatchCallback(t *testing.T) {
	reg := NewRegistry(&chatRecorder{})

	var got telegram.CallbackQuery
	reg.Add("/start", func(_ context.Context, q telegram.CallbackQuery) error {
		got = q
		return nil
	})

	u := telegram.Update{
		UpdateID: 1,
		Body: telegram.CallbackQuery{
			CallbackID:   "cb-1",
			ChatID:       -5,
			Command:      "/start",
			FromID:       42,
			FromUsername: "alice",
		},
	}
	require.NoError(t, reg.Dispatch(context.Background(), u))
	assert.Equal(t, "/start", got.Command)
	assert.Equal(t, int64(-5), got.ChatID)
	assert.Equal(t, "alice", got.FromUsername)
}

func TestRegistry_UnknownCommandIsAcked(t *testing.T) {
	chat := &chatRecorder{}
	reg := NewRegistry(chat)

	u := telegram.Update{Body: telegram.CallbackQuery{CallbackID: "cb-9", ChatID: 1, Command: "/unknown"}}
	require.NoError(t, reg.Dispatch(context.Background(), u))
	assert.Equal(t, []string{""}, chat.allAnswers())
}

func TestRegistry_TextGoesToDefault(t *testing.T) {
	reg := NewRegistry(&chatRecorder{})
	u := telegram.Update{Body: telegram.Message{ChatID: 7, Text: "hi"}}

	// Without a default handler text is dropped.
	require.NoError(t, reg.Dispatch(context.Background(), u))

	var got telegram.Message
	reg.SetDefault(func(_ context.Context, m telegram.Message) error {
		got = m
		return nil
	})
	require.NoError(t, reg.Dispatch(context.Background(), u))
	assert.Equal(t, "hi", got.Text)
	assert.Equal(t, int64(7), got.ChatID)
}

func TestRegistry_HandlerErrorPropagates(t *testing.T) {
	reg := NewRegistry(&chatRecorder{})

	boom := errors.New("boom")
	reg.Add("/join", func(context.Context, telegram.CallbackQuery) error { return boom })

	err := reg.Dispatch(context.Background(), telegram.Update{Body: telegram.CallbackQuery{Command: "/join"}})
	assert.ErrorIs(t, err, boom)
}
