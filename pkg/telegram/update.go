// Package telegram wraps the Telegram Bot API and defines the normalized
// update format the poller publishes and the workers consume.
package telegram

import (
	"encoding/json"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// ErrUnsupportedUpdate marks raw updates the bot has no use for (edits,
// inline queries, messages without a chat). The poller logs and skips them
// but still advances its offset past them.
var ErrUnsupportedUpdate = errors.New("unsupported update payload")

// Message is the normalized form of an incoming chat message.
type Message struct {
	ChatID       int64  `json:"chat_id"`
	Text         string `json:"text"`
	MessageID    int    `json:"message_id"`
	FromID       int64  `json:"from_id"`
	FromUsername string `json:"from_username"`
}

// CallbackQuery is the normalized form of an inline button press. Command
// carries the button's callback data, e.g. "/join".
type CallbackQuery struct {
	CallbackID   string `json:"callback_id"`
	ChatID       int64  `json:"chat_id"`
	Command      string `json:"command"`
	MessageID    int    `json:"message_id"`
	FromID       int64  `json:"from_id"`
	FromUsername string `json:"from_username"`
}

// Body is the payload of a normalized update: either a Message or a
// CallbackQuery.
type Body interface {
	// Chat returns the chat the update belongs to; it drives queue sharding.
	Chat() int64
	body()
}

func (m Message) Chat() int64 { return m.ChatID }
func (m Message) body()       {}

func (q CallbackQuery) Chat() int64 { return q.ChatID }
func (q CallbackQuery) body()       {}

// Update is the unit of work that travels through the broker.
type Update struct {
	UpdateID int64 `json:"update_id"`
	Date     int64 `json:"date"`
	Body     Body  `json:"body"`
}

// UnmarshalJSON decodes the body into the concrete type it was published
// as. Callback queries are told apart by their callback_id, which messages
// never carry.
func (u *Update) UnmarshalJSON(data []byte) error {
	var raw struct {
		UpdateID int64           `json:"update_id"`
		Date     int64           `json:"date"`
		Body     json.RawMessage `json:"body"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	u.UpdateID = raw.UpdateID
	u.Date = raw.Date

	var probe struct {
		CallbackID string `json:"callback_id"`
	}
	if err := json.Unmarshal(raw.Body, &probe); err != nil {
		return fmt.Errorf("failed to probe update body: %w", err)
	}

	if probe.CallbackID != "" {
		var q CallbackQuery
		if err := json.Unmarshal(raw.Body, &q); err != nil {
			return fmt.Errorf("failed to decode callback query body: %w", err)
		}
		u.Body = q
		return nil
	}

	var m Message
	if err := json.Unmarshal(raw.Body, &m); err != nil {
		return fmt.Errorf("failed to decode message body: %w", err)
	}
	u.Body = m
	return nil
}

// ParseUpdate normalizes a raw SDK update into the wire format.
func ParseUpdate(raw tgbotapi.Update) (Update, error) {
	switch {
	case raw.CallbackQuery != nil:
		q := raw.CallbackQuery
		if q.Message == nil || q.Message.Chat == nil {
			return Update{}, fmt.Errorf("%w: callback query %s has no source message", ErrUnsupportedUpdate, q.ID)
		}
		return Update{
			UpdateID: int64(raw.UpdateID),
			Date:     int64(q.Message.Date),
			Body: CallbackQuery{
				CallbackID:   q.ID,
				ChatID:       q.Message.Chat.ID,
				Command:      q.Data,
				MessageID:    q.Message.MessageID,
				FromID:       q.From.ID,
				FromUsername: senderName(q.From),
			},
		}, nil

	case raw.Message != nil:
		m := raw.Message
		if m.Chat == nil || m.From == nil {
			return Update{}, fmt.Errorf("%w: message %d has no chat or sender", ErrUnsupportedUpdate, m.MessageID)
		}
		return Update{
			UpdateID: int64(raw.UpdateID),
			Date:     int64(m.Date),
			Body: Message{
				ChatID:       m.Chat.ID,
				Text:         m.Text,
				MessageID:    m.MessageID,
				FromID:       m.From.ID,
				FromUsername: senderName(m.From),
			},
		}, nil

	default:
		return Update{}, fmt.Errorf("%w: update %d", ErrUnsupportedUpdate, raw.UpdateID)
	}
}

// senderName prefers the public @username and falls back to the first name,
// which every Telegram account has.
func senderName(u *tgbotapi.User) string {
	if u == nil {
		return ""
	}
	if u.UserName != "" {
		return u.UserName
	}
	return u.FirstName
}
