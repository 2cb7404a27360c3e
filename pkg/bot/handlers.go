package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/wordwheel/wheelbot/ent/game"
	"github.com/wordwheel/wheelbot/ent/participant"
	"github.com/wordwheel/wheelbot/pkg/fsm"
	"github.com/wordwheel/wheelbot/pkg/metrics"
	"github.com/wordwheel/wheelbot/pkg/services"
	"github.com/wordwheel/wheelbot/pkg/telegram"
)

const msgNoQuestions = "Нет вопросов для игры, попробуйте позже"

// Handlers implements the chat commands: game start, joining, leaving and
// the turn buttons. Each handler answers the pressed callback with a short
// toast and hands control to the chat's state machine.
type Handlers struct {
	users  *services.UserService
	games  *services.GameService
	chat   fsm.ChatClient
	fsms   *fsm.Manager
	logger *slog.Logger
}

// NewHandlers creates the command handlers.
func NewHandlers(users *services.UserService, games *services.GameService, chat fsm.ChatClient, fsms *fsm.Manager) *Handlers {
	return &Handlers{
		users:  users,
		games:  games,
		chat:   chat,
		fsms:   fsms,
		logger: slog.Default().With("component", "bot-handlers"),
	}
}

// Register binds every handler to its callback command.
func (h *Handlers) Register(r *Registry) {
	r.Add("/start", h.Start)
	r.Add("/join", h.Join)
	r.Add("/leave_game", h.LeaveGame)
	r.Add("/say_letter", h.SayLetter)
	r.Add("/say_word", h.SayWord)
	r.SetDefault(h.Text)
}

// Start launches a new round or, after a worker restart, revives the chat's
// persisted one.
func (h *Handlers) Start(ctx context.Context, q telegram.CallbackQuery) error {
	if h.fsms.Get(q.ChatID) != nil {
		h.chat.AnswerCallback(ctx, q.CallbackID, "Игра уже запущена")
		return nil
	}

	g, err := h.games.GetRunningGame(ctx, q.ChatID)
	if err != nil {
		return fmt.Errorf("failed to look up running game: %w", err)
	}

	f := h.fsms.Set(q.ChatID)
	if g != nil {
		h.logger.Info("Restoring game", "chat_id", q.ChatID, "game_id", g.ID)
		h.chat.AnswerCallback(ctx, q.CallbackID, "Игра восстановлена")
		if err := f.RestoreCurrentState(ctx, g); err != nil {
			h.fsms.Remove(q.ChatID)
			return fmt.Errorf("failed to restore game: %w", err)
		}
		return nil
	}

	h.logger.Info("Starting new game", "chat_id", q.ChatID)
	h.chat.AnswerCallback(ctx, q.CallbackID, "Старт игры")
	if err := f.SetCurrentState(ctx, game.StateWaitingForPlayers); err != nil {
		h.fsms.Remove(q.ChatID)
		if errors.Is(err, services.ErrNoQuestions) {
			if sendErr := h.chat.SendMessage(ctx, q.ChatID, msgNoQuestions); sendErr != nil {
				h.logger.Warn("Failed to send no-questions notice", "chat_id", q.ChatID, "error", sendErr)
			}
			return nil
		}
		return fmt.Errorf("failed to start game: %w", err)
	}
	return nil
}

// Join registers the presser as a participant of the waiting round.
func (h *Handlers) Join(ctx context.Context, q telegram.CallbackQuery) error {
	f := h.fsms.Get(q.ChatID)
	if f == nil {
		h.chat.AnswerCallback(ctx, q.CallbackID, "Нет активной игры")
		return nil
	}
	if f.CurrentState() != game.StateWaitingForPlayers {
		h.chat.AnswerCallback(ctx, q.CallbackID, "Игра на другом этапе")
		return nil
	}

	u, err := h.users.GetOrCreateUser(ctx, q.FromID, q.FromUsername)
	if err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}
	count, err := h.games.CountParticipants(ctx, f.GameID())
	if err != nil {
		return fmt.Errorf("failed to count participants: %w", err)
	}

	if _, err := h.games.CreateParticipant(ctx, f.GameID(), u.ID, count); err != nil {
		if errors.Is(err, services.ErrAlreadyRegistered) {
			h.logger.Warn("Player already registered", "chat_id", q.ChatID, "username", q.FromUsername)
			h.chat.AnswerCallback(ctx, q.CallbackID, fmt.Sprintf("%s - вы уже зарегистрированы", q.FromUsername))
			return nil
		}
		return fmt.Errorf("failed to register participant: %w", err)
	}

	metrics.ActivePlayers.Inc()
	h.chat.AnswerCallback(ctx, q.CallbackID, fmt.Sprintf("Игрок @%s присоединился к игре", q.FromUsername))

	if err := f.UpdateCurrentState(ctx, nil); err != nil {
		return fmt.Errorf("failed to advance game after join: %w", err)
	}
	return nil
}

// LeaveGame lets the active player abandon the round during their turn.
func (h *Handlers) LeaveGame(ctx context.Context, q telegram.CallbackQuery) error {
	f, ok := h.turnOwner(ctx, q)
	if !ok {
		return nil
	}

	active, err := h.games.GetActiveParticipant(ctx, f.GameID())
	if err != nil {
		return fmt.Errorf("failed to fetch active participant: %w", err)
	}
	if active == nil {
		h.chat.AnswerCallback(ctx, q.CallbackID, "Игра на другом этапе")
		return nil
	}

	h.chat.AnswerCallback(ctx, q.CallbackID, "Вы покинули игру")
	if err := h.chat.SendMessage(ctx, q.ChatID, fmt.Sprintf("@%s Покинул игру", f.CurrentPlayerUsername())); err != nil {
		h.logger.Warn("Failed to announce leave", "chat_id", q.ChatID, "error", err)
	}

	if err := h.games.UpdateParticipantState(ctx, active.ID, participant.StateLeft); err != nil {
		return fmt.Errorf("failed to mark participant left: %w", err)
	}
	metrics.ActivePlayers.Dec()

	if err := f.SetCurrentState(ctx, game.StateCheckWinner); err != nil {
		return fmt.Errorf("failed to advance game after leave: %w", err)
	}
	return nil
}

// SayLetter moves the round into letter guessing for the active player.
func (h *Handlers) SayLetter(ctx context.Context, q telegram.CallbackQuery) error {
	return h.claimTurn(ctx, q, game.StateWaitingForLetter)
}

// SayWord moves the round into word guessing for the active player.
func (h *Handlers) SayWord(ctx context.Context, q telegram.CallbackQuery) error {
	return h.claimTurn(ctx, q, game.StateWaitingForWord)
}

func (h *Handlers) claimTurn(ctx context.Context, q telegram.CallbackQuery, target game.State) error {
	f, ok := h.turnOwner(ctx, q)
	if !ok {
		return nil
	}

	h.chat.AnswerCallback(ctx, q.CallbackID, "")
	if err := f.SetCurrentState(ctx, target); err != nil {
		return fmt.Errorf("failed to enter %s: %w", target, err)
	}
	return nil
}

// turnOwner resolves the chat's FSM and verifies that a turn is in progress
// and that the presser owns it. On any failed guard it answers the callback
// and reports false.
func (h *Handlers) turnOwner(ctx context.Context, q telegram.CallbackQuery) (*fsm.FSM, bool) {
	f := h.fsms.Get(q.ChatID)
	if f == nil {
		h.chat.AnswerCallback(ctx, q.CallbackID, "Нет активной игры")
		return nil, false
	}
	if f.CurrentState() != game.StatePlayerTurn {
		h.chat.AnswerCallback(ctx, q.CallbackID, "Игра на другом этапе")
		return nil, false
	}
	if q.FromID != f.CurrentPlayerTGID() {
		h.chat.AnswerCallback(ctx, q.CallbackID, "Дождитесь своего хода")
		return nil, false
	}
	return f, true
}

// Text handles plain chat messages. During guessing states the active
// player's text is the guess; chats without a game are offered one.
func (h *Handlers) Text(ctx context.Context, m telegram.Message) error {
	f := h.fsms.Get(m.ChatID)
	if f == nil {
		return h.chat.SendButtonStart(ctx, m.ChatID)
	}

	switch f.CurrentState() {
	case game.StateWaitingForLetter, game.StateWaitingForWord:
		if m.FromID != f.CurrentPlayerTGID() {
			return nil
		}
		return f.UpdateCurrentState(ctx, &m)
	default:
		return nil
	}
}
