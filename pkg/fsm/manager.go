package fsm

import (
	"log/slog"
	"sync"

	"github.com/wordwheel/wheelbot/pkg/metrics"
	"github.com/wordwheel/wheelbot/pkg/services"
)

// Manager holds the live FSMs of one worker, keyed by chat. Sharding makes
// each chat single-owner; the mutex protects only the map itself.
type Manager struct {
	games     *services.GameService
	questions *services.QuestionService
	chat      ChatClient
	cfg       Config
	logger    *slog.Logger

	mu   sync.RWMutex
	fsms map[int64]*FSM
}

// NewManager creates an FSM manager over the given services and chat client.
func NewManager(games *services.GameService, questions *services.QuestionService, chat ChatClient, cfg Config) *Manager {
	return &Manager{
		games:     games,
		questions: questions,
		chat:      chat,
		cfg:       cfg,
		logger:    slog.Default().With("component", "fsm"),
		fsms:      make(map[int64]*FSM),
	}
}

// Get returns the chat's FSM, or nil when the chat has no running game in
// this process.
func (m *Manager) Get(chatID int64) *FSM {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.fsms[chatID]
}

// Set creates, registers and returns a fresh FSM for the chat.
func (m *Manager) Set(chatID int64) *FSM {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.fsms[chatID]; !ok {
		metrics.ActiveGames.Inc()
	}
	f := newFSM(m, chatID)
	m.fsms[chatID] = f
	return f
}

// Remove drops the chat's FSM. Removing an absent chat is a no-op.
func (m *Manager) Remove(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.fsms[chatID]; !ok {
		return
	}
	delete(m.fsms, chatID)
	metrics.ActiveGames.Dec()
}

// Len returns the number of games running in this process.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.fsms)
}
