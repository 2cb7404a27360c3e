// Package fsm drives the per-chat game state machine: collecting players,
// rotating turns, scoring letter and word guesses, and finishing rounds.
// Game state lives in storage; the FSM holds only the chat-local caches
// (current player, points at stake) plus the per-chat timers.
package fsm

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/wordwheel/wheelbot/ent"
	"github.com/wordwheel/wheelbot/ent/game"
	"github.com/wordwheel/wheelbot/pkg/config"
	"github.com/wordwheel/wheelbot/pkg/services"
	"github.com/wordwheel/wheelbot/pkg/telegram"
)

// Production timer durations. Tests shorten them through Config.
const (
	defaultWaitingTimeout = 60 * time.Second
	defaultTurnTimeout    = 30 * time.Second
)

// ChatClient is the chat-API surface the game engine and its handlers use.
type ChatClient interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendButtonStart(ctx context.Context, chatID int64) error
	SendButtonJoin(ctx context.Context, chatID int64) error
	SendTurnButtons(ctx context.Context, chatID int64, username, question, maskedWord string, points, bonus int) error
	AnswerCallback(ctx context.Context, callbackID, text string)
}

// Config carries the game-rule tunables.
type Config struct {
	MinPlayers     int
	Sectors        []int
	Weights        []int
	WaitingTimeout time.Duration
	TurnTimeout    time.Duration
}

// NewConfig maps the YAML game section onto runtime rules with the
// production timer durations.
func NewConfig(gc config.GameConfig) Config {
	return Config{
		MinPlayers:     gc.MinNumberOfParticipants,
		Sectors:        gc.WheelSectors,
		Weights:        gc.SectorWeights,
		WaitingTimeout: defaultWaitingTimeout,
		TurnTimeout:    defaultTurnTimeout,
	}
}

// stateHooks bundles the callbacks of one FSM state. Hooks run with the
// FSM mutex held and may transition further via setState.
type stateHooks struct {
	enter  func(ctx context.Context) error
	exit   func()
	update func(ctx context.Context, msg *telegram.Message) error
}

// FSM drives a single chat's game. Sharding makes each chat single-owner,
// but Go timer callbacks run on their own goroutines, so every public
// entry point serializes on one mutex; transitions never interleave.
type FSM struct {
	games     *services.GameService
	questions *services.QuestionService
	chat      ChatClient
	manager   *Manager
	cfg       Config
	logger    *slog.Logger

	chatID int64

	mu      sync.Mutex
	gameID  int
	current game.State
	states  map[game.State]stateHooks

	currentPlayerTGID     int64
	currentPlayerUsername string
	bonusPoints           int

	timers TimerManager
	wheel  *Wheel
	rng    *rand.Rand
}

func newFSM(m *Manager, chatID int64) *FSM {
	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	f := &FSM{
		games:     m.games,
		questions: m.questions,
		chat:      m.chat,
		manager:   m,
		cfg:       m.cfg,
		logger:    m.logger.With("chat_id", chatID),
		chatID:    chatID,
		rng:       rng,
		wheel:     NewWheel(m.cfg.Sectors, m.cfg.Weights, rng),
	}
	f.states = map[game.State]stateHooks{
		game.StateWaitingForPlayers: {
			enter:  f.enterWaitingForPlayers,
			exit:   f.cancelTimer,
			update: f.updateWaitingForPlayers,
		},
		game.StateNextPlayerTurn: {
			enter: f.enterNextPlayerTurn,
		},
		game.StatePlayerTurn: {
			enter: f.enterPlayerTurn,
			exit:  f.cancelTimer,
		},
		game.StateWaitingForLetter: {
			enter:  f.enterWaitingForLetter,
			exit:   f.cancelTimer,
			update: f.updateWaitingForLetter,
		},
		game.StateWaitingForWord: {
			enter:  f.enterWaitingForWord,
			exit:   f.cancelTimer,
			update: f.updateWaitingForWord,
		},
		game.StateCheckWinner: {
			enter: f.enterCheckWinner,
		},
		game.StateGameFinished: {
			enter: f.enterGameFinished,
		},
	}
	return f
}

// ChatID returns the chat this FSM belongs to.
func (f *FSM) ChatID() int64 {
	return f.chatID
}

// GameID returns the storage id of the round in progress.
func (f *FSM) GameID() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.gameID
}

// CurrentState returns the state the FSM is in.
func (f *FSM) CurrentState() game.State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current
}

// CurrentPlayerTGID returns the platform id of the player whose turn it is.
func (f *FSM) CurrentPlayerTGID() int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.currentPlayerTGID
}

// CurrentPlayerUsername returns the username of the player whose turn it is.
func (f *FSM) CurrentPlayerUsername() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.currentPlayerUsername
}

// SetCurrentState transitions the FSM into target. Already being in target
// is a no-op. An error inside the target's enter leaves the FSM in the new
// state but is returned to the caller.
func (f *FSM) SetCurrentState(ctx context.Context, target game.State) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.setState(ctx, target)
}

// UpdateCurrentState feeds a chat message into the current state. States
// without an update hook ignore it.
func (f *FSM) UpdateCurrentState(ctx context.Context, msg *telegram.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.updateState(ctx, msg)
}

// RestoreCurrentState rehydrates the FSM from a persisted game after a
// worker restart: caches come back from the eager-loaded current player,
// then the stored state is re-entered so its timer restarts and the chat
// is re-announced. A waiting-for-players game instead re-checks the join
// count first (a redelivered join may already satisfy the minimum) and
// re-sends the join button.
func (f *FSM) RestoreCurrentState(ctx context.Context, g *ent.Game) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.gameID = g.ID
	f.bonusPoints = g.BonusPoints
	if cp := g.Edges.CurrentPlayer; cp != nil && cp.Edges.User != nil {
		f.currentPlayerTGID = cp.Edges.User.TgUserID
		f.currentPlayerUsername = cp.Edges.User.Username
	}

	if g.State == game.StateWaitingForPlayers {
		f.current = game.StateWaitingForPlayers
		count, err := f.games.CountParticipants(ctx, f.gameID)
		if err != nil {
			return err
		}
		if count >= f.cfg.MinPlayers {
			return f.setState(ctx, game.StateNextPlayerTurn)
		}
		if err := f.chat.SendButtonJoin(ctx, f.chatID); err != nil {
			return err
		}
		f.startWaitingTimer()
		return nil
	}

	// Re-enter the stored state through the regular transition so the
	// same-state no-op does not swallow it.
	target := g.State
	f.current = ""
	return f.setState(ctx, target)
}

// setState is the unlocked transition core. The initial transition runs
// before a game row exists, so persistence is skipped until the
// waiting-for-players enter has created one.
func (f *FSM) setState(ctx context.Context, target game.State) error {
	if f.current == target {
		return nil
	}
	if hooks, ok := f.states[f.current]; ok && hooks.exit != nil {
		hooks.exit()
	}
	if f.gameID != 0 {
		if err := f.games.UpdateGameState(ctx, f.gameID, target); err != nil {
			return fmt.Errorf("failed to persist game state %s: %w", target, err)
		}
	}
	f.logger.Info("Game state changed", "from", f.current, "to", target)
	f.current = target

	if hooks, ok := f.states[target]; ok && hooks.enter != nil {
		return hooks.enter(ctx)
	}
	return nil
}

func (f *FSM) updateState(ctx context.Context, msg *telegram.Message) error {
	if hooks, ok := f.states[f.current]; ok && hooks.update != nil {
		return hooks.update(ctx, msg)
	}
	return nil
}

func (f *FSM) cancelTimer() {
	f.timers.Cancel()
}

func (f *FSM) startWaitingTimer() {
	f.timers.Start(f.cfg.WaitingTimeout, f.onWaitingTimeout)
}

func (f *FSM) startTurnTimer() {
	f.timers.Start(f.cfg.TurnTimeout, f.onTurnTimeout)
}

// onWaitingTimeout aborts a round that never gathered enough players. The
// timer raced the exit-hook cancellation for the FSM mutex, so the state
// is re-checked before acting; a join that already hit the minimum makes
// the firing a no-op.
func (f *FSM) onWaitingTimeout() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.current != game.StateWaitingForPlayers {
		return
	}
	ctx := context.Background()

	count, err := f.games.CountParticipants(ctx, f.gameID)
	if err != nil {
		f.logger.Error("Waiting timeout: failed to count participants", "error", err)
		return
	}
	if count >= f.cfg.MinPlayers {
		return
	}
	if err := f.chat.SendMessage(ctx, f.chatID, notEnoughPlayersMessage(count, f.cfg.MinPlayers)); err != nil {
		f.logger.Warn("Failed to announce aborted round", "error", err)
	}
	if err := f.setState(ctx, game.StateGameFinished); err != nil {
		f.logger.Error("Waiting timeout: failed to finish game", "error", err)
	}
}

// onTurnTimeout passes the turn when the current player sat on it too
// long. Fires for player_turn and both guess-input states.
func (f *FSM) onTurnTimeout() {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.current {
	case game.StatePlayerTurn, game.StateWaitingForLetter, game.StateWaitingForWord:
	default:
		return
	}
	ctx := context.Background()

	if err := f.chat.SendMessage(ctx, f.chatID, msgTurnTimeout); err != nil {
		f.logger.Warn("Failed to announce turn timeout", "error", err)
	}
	if err := f.setState(ctx, game.StateNextPlayerTurn); err != nil {
		f.logger.Error("Turn timeout: failed to pass turn", "error", err)
	}
}
