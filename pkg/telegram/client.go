package telegram

import (
	"context"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Client is a thin wrapper around the Telegram Bot API SDK.
type Client struct {
	api    *tgbotapi.BotAPI
	logger *slog.Logger
}

// NewClient creates a new Telegram Bot API client.
func NewClient(token string) (*Client, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram client: %w", err)
	}
	return &Client{
		api:    api,
		logger: slog.Default().With("component", "telegram-client"),
	}, nil
}

// NewClientWithEndpoint creates a Telegram client that targets a custom API
// endpoint. Useful for testing with a mock server.
func NewClientWithEndpoint(token, endpoint string) (*Client, error) {
	api, err := tgbotapi.NewBotAPIWithAPIEndpoint(token, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram client: %w", err)
	}
	return &Client{
		api:    api,
		logger: slog.Default().With("component", "telegram-client"),
	}, nil
}

// BotUsername returns the authenticated bot's account name.
func (c *Client) BotUsername() string {
	return c.api.Self.UserName
}

// FetchUpdates long-polls the API for the next batch of updates. timeout is
// the long-poll hold time in seconds; offset acknowledges everything below
// it.
func (c *Client) FetchUpdates(ctx context.Context, offset int64, timeout int) ([]tgbotapi.Update, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	updates, err := c.api.GetUpdates(tgbotapi.UpdateConfig{
		Offset:         int(offset),
		Timeout:        timeout,
		AllowedUpdates: []string{"message", "callback_query"},
	})
	if err != nil {
		return nil, fmt.Errorf("getUpdates failed: %w", err)
	}
	return updates, nil
}

// SendMessage posts a plain text message to a chat.
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := c.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		return fmt.Errorf("sendMessage failed: %w", err)
	}
	return nil
}

// AnswerCallback acknowledges an inline button press. Failures are logged
// and swallowed: the common cause is a callback past Telegram's answer
// deadline, and an unacknowledged button only leaves a spinner in the chat.
func (c *Client) AnswerCallback(ctx context.Context, callbackID, text string) {
	if err := ctx.Err(); err != nil {
		return
	}

	if _, err := c.api.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		c.logger.Warn("answerCallbackQuery failed", "callback_id", callbackID, "error", err)
	}
}

// SendButtonStart offers to start a game in the chat.
func (c *Client) SendButtonStart(ctx context.Context, chatID int64) error {
	return c.sendKeyboard(ctx, chatID, "Запустить игру?", tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Начать игру", "/start"),
		),
	))
}

// SendButtonJoin invites chat members into the game being assembled.
func (c *Client) SendButtonJoin(ctx context.Context, chatID int64) error {
	return c.sendKeyboard(ctx, chatID, "Присоединиться к игре?", tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Присоединиться", "/join"),
		),
	))
}

// SendTurnButtons announces whose turn it is, with the question, the masked
// word and the stake, plus the three turn actions.
func (c *Client) SendTurnButtons(ctx context.Context, chatID int64, username, question, maskedWord string, points, bonus int) error {
	text := fmt.Sprintf(
		"@%s, ваш ход!\nВопрос: %s\nСлово: %s\nВаши очки: %d\nНа кону: %d очков",
		username, question, maskedWord, points, bonus,
	)
	return c.sendKeyboard(ctx, chatID, text, tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Покинуть игру", "/leave_game"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Назвать букву", "/say_letter"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Назвать слово", "/say_word"),
		),
	))
}

func (c *Client) sendKeyboard(ctx context.Context, chatID int64, text string, markup tgbotapi.InlineKeyboardMarkup) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = markup
	if _, err := c.api.Send(msg); err != nil {
		return fmt.Errorf("sendMessage with keyboard failed: %w", err)
	}
	return nil
}
