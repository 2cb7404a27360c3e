package bot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wordwheel/wheelbot/pkg/fsm"
	"github.com/wordwheel/wheelbot/pkg/telegram"
)

// HandlerFunc processes one inline-button callback.
type HandlerFunc func(ctx context.Context, q telegram.CallbackQuery) error

// TextHandlerFunc processes one plain chat message.
type TextHandlerFunc func(ctx context.Context, m telegram.Message) error

// Registry routes normalized updates: callback queries by their command
// string, plain messages to the default text handler.
type Registry struct {
	chat     fsm.ChatClient
	logger   *slog.Logger
	handlers map[string]HandlerFunc
	text     TextHandlerFunc
}

// NewRegistry creates an empty registry. The chat client is used to
// acknowledge callbacks nobody handles.
func NewRegistry(chat fsm.ChatClient) *Registry {
	return &Registry{
		chat:     chat,
		logger:   slog.Default().With("component", "bot-registry"),
		handlers: make(map[string]HandlerFunc),
	}
}

// Add registers a handler for a callback command, replacing any previous one.
func (r *Registry) Add(command string, h HandlerFunc) {
	r.handlers[command] = h
}

// SetDefault registers the handler for plain text messages.
func (r *Registry) SetDefault(h TextHandlerFunc) {
	r.text = h
}

// Dispatch routes one update to its handler. Unknown callback commands are
// acknowledged and dropped; messages without a default handler are dropped.
func (r *Registry) Dispatch(ctx context.Context, u telegram.Update) error {
	switch body := u.Body.(type) {
	case telegram.CallbackQuery:
		r.logger.Info("Handling callback",
			"command", body.Command, "from_username", body.FromUsername, "chat_id", body.ChatID)
		h, ok := r.handlers[body.Command]
		if !ok {
			r.logger.Warn("No handler for command", "command", body.Command, "chat_id", body.ChatID)
			r.chat.AnswerCallback(ctx, body.CallbackID, "")
			return nil
		}
		return h(ctx, body)

	case telegram.Message:
		if r.text == nil {
			return nil
		}
		r.logger.Debug("Handling text message",
			"from_username", body.FromUsername, "chat_id", body.ChatID)
		return r.text(ctx, body)

	default:
		return fmt.Errorf("no route for update body %T", u.Body)
	}
}
