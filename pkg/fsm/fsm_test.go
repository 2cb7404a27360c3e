package fsm

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordwheel/wheelbot/ent"
	"github.com/wordwheel/wheelbot/ent/game"
	"github.com/wordwheel/wheelbot/ent/participant"
	"github.com/wordwheel/wheelbot/pkg/database"
	"github.com/wordwheel/wheelbot/pkg/services"
	"github.com/wordwheel/wheelbot/pkg/telegram"
	testdb "github.com/wordwheel/wheelbot/test/database"
)

// fakeChat records outbound chat traffic for assertions. Timer goroutines
// write to it concurrently with test assertions, hence the mutex.
type fakeChat struct {
	mu           sync.Mutex
	messages     []string
	joinButtons  int
	startButtons int
	turns        []turnCall
	callbacks    []string
}

type turnCall struct {
	username string
	question string
	masked   string
	points   int
	bonus    int
}

func (c *fakeChat) SendMessage(_ context.Context, _ int64, text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, text)
	return nil
}

func (c *fakeChat) SendButtonStart(_ context.Context, _ int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.startButtons++
	return nil
}

func (c *fakeChat) SendButtonJoin(_ context.Context, _ int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.joinButtons++
	return nil
}

func (c *fakeChat) SendTurnButtons(_ context.Context, _ int64, username, question, masked string, points, bonus int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.turns = append(c.turns, turnCall{username, question, masked, points, bonus})
	return nil
}

func (c *fakeChat) AnswerCallback(_ context.Context, _, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.callbacks = append(c.callbacks, text)
}

func (c *fakeChat) allMessages() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.messages...)
}

func (c *fakeChat) lastMessage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.messages) == 0 {
		return ""
	}
	return c.messages[len(c.messages)-1]
}

func (c *fakeChat) containsMessage(text string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, m := range c.messages {
		if m == text {
			return true
		}
	}
	return false
}

func (c *fakeChat) lastTurn() (turnCall, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.turns) == 0 {
		return turnCall{}, false
	}
	return c.turns[len(c.turns)-1], true
}

func (c *fakeChat) turnCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.turns)
}

func (c *fakeChat) joinButtonCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.joinButtons
}

type gameEnv struct {
	client    *database.Client
	games     *services.GameService
	questions *services.QuestionService
	users     *services.UserService
	chat      *fakeChat
	mgr       *Manager
}

func newGameEnv(t *testing.T, cfg Config) *gameEnv {
	t.Helper()
	client := testdb.NewTestClient(t)
	env := &gameEnv{
		client:    client,
		games:     services.NewGameService(client.Client),
		questions: services.NewQuestionService(client.Client),
		users:     services.NewUserService(client.Client),
		chat:      &fakeChat{},
	}
	env.mgr = NewManager(env.games, env.questions, env.chat, cfg)
	return env
}

// testConfig keeps rounds deterministic: a single 100-point wheel sector
// and timers long enough to never fire unless a test shortens them.
func testConfig() Config {
	return Config{
		MinPlayers:     2,
		Sectors:        []int{100},
		Weights:        []int{1},
		WaitingTimeout: time.Minute,
		TurnTimeout:    time.Minute,
	}
}

func seedQuestion(t *testing.T, client *ent.Client, text, answer string) *ent.Question {
	t.Helper()
	q, err := client.Question.Create().
		SetQuestion(text).
		SetAnswer(answer).
		Save(context.Background())
	require.NoError(t, err)
	return q
}

// joinPlayer registers a user in the running game and feeds the join
// update, the way the join handler does.
func joinPlayer(t *testing.T, env *gameEnv, f *FSM, tgID int64, username string) {
	t.Helper()
	ctx := context.Background()

	u, err := env.users.GetOrCreateUser(ctx, tgID, username)
	require.NoError(t, err)
	count, err := env.games.CountParticipants(ctx, f.GameID())
	require.NoError(t, err)
	_, err = env.games.CreateParticipant(ctx, f.GameID(), u.ID, count)
	require.NoError(t, err)
	require.NoError(t, f.UpdateCurrentState(ctx, nil))
}

// startRound drives a fresh game to player_turn with alice and bob joined.
func startRound(t *testing.T, env *gameEnv, chatID int64) *FSM {
	t.Helper()
	f := env.mgr.Set(chatID)
	require.NoError(t, f.SetCurrentState(context.Background(), game.StateWaitingForPlayers))
	joinPlayer(t, env, f, 100, "alice")
	joinPlayer(t, env, f, 200, "bob")
	require.Equal(t, game.StatePlayerTurn, f.CurrentState())
	return f
}

func activeUsername(t *testing.T, env *gameEnv, f *FSM) string {
	t.Helper()
	p, err := env.games.GetActiveParticipant(context.Background(), f.GameID())
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.Edges.User.Username
}

func TestFSM_StartRound(t *testing.T) {
	env := newGameEnv(t, testConfig())
	ctx := context.Background()
	seedQuestion(t, env.client.Client, "Домашнее животное, которое мурлычет", "КОТ")

	f := env.mgr.Set(1001)
	require.NoError(t, f.SetCurrentState(ctx, game.StateWaitingForPlayers))
	assert.Equal(t, game.StateWaitingForPlayers, f.CurrentState())
	assert.Equal(t, 1, env.chat.joinButtonCount())
	require.NotZero(t, f.GameID())

	joinPlayer(t, env, f, 100, "alice")
	assert.Equal(t, game.StateWaitingForPlayers, f.CurrentState())
	assert.Contains(t, env.chat.allMessages(), "Подключились (1/2) игроков")

	joinPlayer(t, env, f, 200, "bob")
	assert.Equal(t, game.StatePlayerTurn, f.CurrentState())

	turn, ok := env.chat.lastTurn()
	require.True(t, ok)
	assert.Equal(t, "_ _ _", turn.masked)
	assert.Equal(t, "Домашнее животное, которое мурлычет", turn.question)
	assert.Equal(t, 100, turn.bonus)
	assert.Equal(t, 0, turn.points)
	assert.Contains(t, []string{"alice", "bob"}, turn.username)
	assert.NotZero(t, f.CurrentPlayerTGID())

	g, err := env.games.GetGame(ctx, f.GameID())
	require.NoError(t, err)
	assert.Equal(t, game.StatePlayerTurn, g.State)
	assert.Equal(t, 100, g.BonusPoints)
	require.NotNil(t, g.Edges.CurrentPlayer)

	active, err := env.games.GetActiveParticipant(ctx, f.GameID())
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, turn.username, active.Edges.User.Username)
}

func TestFSM_StartWithoutQuestions(t *testing.T) {
	env := newGameEnv(t, testConfig())

	f := env.mgr.Set(1002)
	err := f.SetCurrentState(context.Background(), game.StateWaitingForPlayers)
	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrNoQuestions))
	assert.Zero(t, f.GameID())
}

func TestFSM_SameStateIsNoOp(t *testing.T) {
	env := newGameEnv(t, testConfig())
	ctx := context.Background()
	seedQuestion(t, env.client.Client, "Домашнее животное", "КОТ")

	f := env.mgr.Set(1018)
	require.NoError(t, f.SetCurrentState(ctx, game.StateWaitingForPlayers))
	buttons := env.chat.joinButtonCount()
	sent := len(env.chat.allMessages())

	// A redelivered /start lands here: same target state, nothing re-runs.
	require.NoError(t, f.SetCurrentState(ctx, game.StateWaitingForPlayers))
	assert.Equal(t, game.StateWaitingForPlayers, f.CurrentState())
	assert.Equal(t, buttons, env.chat.joinButtonCount())
	assert.Equal(t, sent, len(env.chat.allMessages()))
}

func TestFSM_LetterVerdicts(t *testing.T) {
	env := newGameEnv(t, testConfig())
	ctx := context.Background()
	seedQuestion(t, env.client.Client, "Домашнее животное", "КОТ")
	f := startRound(t, env, 1003)

	first := activeUsername(t, env, f)

	// Not a letter: turn passes.
	require.NoError(t, f.SetCurrentState(ctx, game.StateWaitingForLetter))
	assert.Equal(t, "Назовите букву", env.chat.lastMessage())
	require.NoError(t, f.UpdateCurrentState(ctx, &telegram.Message{ChatID: 1003, Text: "АБ"}))
	assert.Contains(t, env.chat.allMessages(), "@"+first+" назвал букву: АБ\nЭто не буква!")
	require.Equal(t, game.StatePlayerTurn, f.CurrentState())
	second := activeUsername(t, env, f)
	assert.NotEqual(t, first, second)

	// Miss: the letter is recorded and the turn passes back.
	require.NoError(t, f.SetCurrentState(ctx, game.StateWaitingForLetter))
	require.NoError(t, f.UpdateCurrentState(ctx, &telegram.Message{ChatID: 1003, Text: "ж"}))
	assert.Contains(t, env.chat.allMessages(), "@"+second+" назвал букву: Ж\nТакой буквы нет в слове")
	require.Equal(t, game.StatePlayerTurn, f.CurrentState())
	assert.Equal(t, first, activeUsername(t, env, f))

	g, err := env.games.GetGame(ctx, f.GameID())
	require.NoError(t, err)
	assert.Equal(t, "Ж", g.RevealedLetters)

	// Hit: points credited, same player keeps the turn, board updates.
	require.NoError(t, f.SetCurrentState(ctx, game.StateWaitingForLetter))
	require.NoError(t, f.UpdateCurrentState(ctx, &telegram.Message{ChatID: 1003, Text: "о"}))
	assert.Contains(t, env.chat.allMessages(), "@"+first+" назвал букву: О\nВерно!")
	require.Equal(t, game.StatePlayerTurn, f.CurrentState())
	assert.Equal(t, first, activeUsername(t, env, f))

	active, err := env.games.GetActiveParticipant(ctx, f.GameID())
	require.NoError(t, err)
	assert.Equal(t, 100, active.Points)

	turn, ok := env.chat.lastTurn()
	require.True(t, ok)
	assert.Equal(t, "_ О _", turn.masked)
	assert.Equal(t, 100, turn.points)

	// Repeat of a revealed letter: turn passes.
	require.NoError(t, f.SetCurrentState(ctx, game.StateWaitingForLetter))
	require.NoError(t, f.UpdateCurrentState(ctx, &telegram.Message{ChatID: 1003, Text: "О"}))
	assert.Contains(t, env.chat.allMessages(), "@"+first+" назвал букву: О\nТакую букву уже называли!")
	require.Equal(t, game.StatePlayerTurn, f.CurrentState())
	assert.Equal(t, second, activeUsername(t, env, f))
}

func TestFSM_WinByLetters(t *testing.T) {
	env := newGameEnv(t, testConfig())
	ctx := context.Background()
	seedQuestion(t, env.client.Client, "Домашнее животное", "КОТ")
	f := startRound(t, env, 1004)

	winner := activeUsername(t, env, f)
	for _, letter := range []string{"К", "О", "Т"} {
		require.NoError(t, f.SetCurrentState(ctx, game.StateWaitingForLetter))
		require.NoError(t, f.UpdateCurrentState(ctx, &telegram.Message{ChatID: 1004, Text: letter}))
	}

	assert.Nil(t, env.mgr.Get(1004))

	g, err := env.games.GetGame(ctx, f.GameID())
	require.NoError(t, err)
	assert.Equal(t, game.StateGameFinished, g.State)
	assert.Equal(t, "КОТ", g.RevealedLetters)

	players, err := env.games.ListParticipants(ctx, f.GameID())
	require.NoError(t, err)
	require.Len(t, players, 2)

	var loser string
	for _, p := range players {
		if p.Edges.User.Username == winner {
			assert.Equal(t, participant.StateWinner, p.State)
			assert.Equal(t, 300, p.Points)
		} else {
			loser = p.Edges.User.Username
			assert.Equal(t, participant.StateLoser, p.State)
			assert.Equal(t, 0, p.Points)
		}
	}

	expected := "🎯 Игра завершена!\nСлово: КОТ\n\n" +
		"🏆 Победитель: @" + winner + " с 300 очками\n\n" +
		"💀 Проигравшие:\n1. @" + loser + " — 0 очков\n"
	assert.Equal(t, expected, env.chat.lastMessage())
}

func TestFSM_WrongWordEliminates(t *testing.T) {
	env := newGameEnv(t, testConfig())
	ctx := context.Background()
	seedQuestion(t, env.client.Client, "Домашнее животное", "КОТ")
	f := startRound(t, env, 1005)

	first := activeUsername(t, env, f)

	require.NoError(t, f.SetCurrentState(ctx, game.StateWaitingForWord))
	assert.Equal(t, "Назовите слово", env.chat.lastMessage())
	require.NoError(t, f.UpdateCurrentState(ctx, &telegram.Message{ChatID: 1005, Text: "МОСКВА"}))

	assert.Contains(t, env.chat.allMessages(), "@"+first+" назвал слово: МОСКВА\nНеверно!")
	assert.Nil(t, env.mgr.Get(1005))

	players, err := env.games.ListParticipants(ctx, f.GameID())
	require.NoError(t, err)
	var survivor string
	for _, p := range players {
		if p.Edges.User.Username == first {
			assert.Equal(t, participant.StateLoser, p.State)
		} else {
			survivor = p.Edges.User.Username
			assert.Equal(t, participant.StateWinner, p.State)
		}
	}
	assert.Contains(t, env.chat.lastMessage(), "🏆 Победитель: @"+survivor+" с 0 очками")
	assert.Contains(t, env.chat.lastMessage(), "@"+first+" — 0 очков")
}

func TestFSM_CorrectWordWins(t *testing.T) {
	env := newGameEnv(t, testConfig())
	ctx := context.Background()
	seedQuestion(t, env.client.Client, "Домашнее животное", "КОТ")
	f := startRound(t, env, 1006)

	first := activeUsername(t, env, f)

	require.NoError(t, f.SetCurrentState(ctx, game.StateWaitingForWord))
	require.NoError(t, f.UpdateCurrentState(ctx, &telegram.Message{ChatID: 1006, Text: "  кот "}))

	assert.Contains(t, env.chat.allMessages(), "@"+first+" назвал слово: КОТ\nВерно!")
	assert.Nil(t, env.mgr.Get(1006))

	players, err := env.games.ListParticipants(ctx, f.GameID())
	require.NoError(t, err)
	for _, p := range players {
		if p.Edges.User.Username == first {
			assert.Equal(t, participant.StateWinner, p.State)
			assert.Equal(t, 100, p.Points)
		} else {
			assert.Equal(t, participant.StateLoser, p.State)
		}
	}
	assert.Contains(t, env.chat.lastMessage(), "🏆 Победитель: @"+first+" с 100 очками")
}

func TestFSM_WaitingTimeoutAborts(t *testing.T) {
	cfg := testConfig()
	cfg.WaitingTimeout = 50 * time.Millisecond
	env := newGameEnv(t, cfg)
	ctx := context.Background()
	seedQuestion(t, env.client.Client, "Домашнее животное", "КОТ")

	f := env.mgr.Set(1007)
	require.NoError(t, f.SetCurrentState(ctx, game.StateWaitingForPlayers))
	joinPlayer(t, env, f, 100, "alice")

	require.Eventually(t, func() bool { return env.mgr.Get(1007) == nil },
		3*time.Second, 10*time.Millisecond)

	assert.Contains(t, env.chat.allMessages(), "Недостаточно игроков (1/2).\nИгра завершена.")

	g, err := env.games.GetGame(ctx, f.GameID())
	require.NoError(t, err)
	assert.Equal(t, game.StateGameFinished, g.State)

	players, err := env.games.ListParticipants(ctx, f.GameID())
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, participant.StateLeft, players[0].State)

	// An aborted round has no scoreboard.
	for _, m := range env.chat.allMessages() {
		assert.NotContains(t, m, "🎯")
	}
}

func TestFSM_WaitingTimeoutKeepsQuorum(t *testing.T) {
	cfg := testConfig()
	cfg.WaitingTimeout = 40 * time.Millisecond
	env := newGameEnv(t, cfg)
	ctx := context.Background()
	seedQuestion(t, env.client.Client, "Домашнее животное", "КОТ")

	f := env.mgr.Set(1008)
	require.NoError(t, f.SetCurrentState(ctx, game.StateWaitingForPlayers))

	// Participants land without their join updates (redelivery edge): the
	// deadline must not abort a round that has its quorum.
	for i, name := range []string{"carl", "dave"} {
		u, err := env.users.GetOrCreateUser(ctx, int64(300+100*i), name)
		require.NoError(t, err)
		_, err = env.games.CreateParticipant(ctx, f.GameID(), u.ID, i)
		require.NoError(t, err)
	}

	time.Sleep(150 * time.Millisecond)

	assert.Equal(t, game.StateWaitingForPlayers, f.CurrentState())
	assert.NotNil(t, env.mgr.Get(1008))
	for _, m := range env.chat.allMessages() {
		assert.False(t, strings.HasPrefix(m, "Недостаточно игроков"), "round must not abort: %q", m)
	}
}

func TestFSM_TurnTimeoutPassesTurn(t *testing.T) {
	cfg := testConfig()
	cfg.TurnTimeout = 50 * time.Millisecond
	env := newGameEnv(t, cfg)
	seedQuestion(t, env.client.Client, "Домашнее животное", "КОТ")
	f := startRound(t, env, 1009)

	first := f.CurrentPlayerTGID()
	require.Eventually(t, func() bool {
		return env.chat.containsMessage("Вы не успели, переход хода") && f.CurrentPlayerTGID() != first
	}, 3*time.Second, 10*time.Millisecond)

	// Stop the rotation before the schema is torn down.
	require.NoError(t, f.SetCurrentState(context.Background(), game.StateGameFinished))
}

func TestFSM_RestoreWaitingResendsJoin(t *testing.T) {
	env := newGameEnv(t, testConfig())
	ctx := context.Background()
	q := seedQuestion(t, env.client.Client, "Домашнее животное", "КОТ")

	g, err := env.games.CreateGame(ctx, 1010, q.ID)
	require.NoError(t, err)
	u, err := env.users.GetOrCreateUser(ctx, 100, "alice")
	require.NoError(t, err)
	_, err = env.games.CreateParticipant(ctx, g.ID, u.ID, 0)
	require.NoError(t, err)

	loaded, err := env.games.GetRunningGame(ctx, 1010)
	require.NoError(t, err)
	require.NotNil(t, loaded)

	f := env.mgr.Set(1010)
	require.NoError(t, f.RestoreCurrentState(ctx, loaded))

	assert.Equal(t, game.StateWaitingForPlayers, f.CurrentState())
	assert.Equal(t, g.ID, f.GameID())
	assert.Equal(t, 1, env.chat.joinButtonCount())
	assert.NotNil(t, env.mgr.Get(1010))
}

func TestFSM_RestoreWaitingWithQuorumStartsTurn(t *testing.T) {
	env := newGameEnv(t, testConfig())
	ctx := context.Background()
	q := seedQuestion(t, env.client.Client, "Домашнее животное", "КОТ")

	g, err := env.games.CreateGame(ctx, 1011, q.ID)
	require.NoError(t, err)
	for i, name := range []string{"alice", "bob"} {
		u, err := env.users.GetOrCreateUser(ctx, int64(100*(i+1)), name)
		require.NoError(t, err)
		_, err = env.games.CreateParticipant(ctx, g.ID, u.ID, i)
		require.NoError(t, err)
	}

	loaded, err := env.games.GetRunningGame(ctx, 1011)
	require.NoError(t, err)

	f := env.mgr.Set(1011)
	require.NoError(t, f.RestoreCurrentState(ctx, loaded))

	assert.Equal(t, game.StatePlayerTurn, f.CurrentState())
	assert.Equal(t, 0, env.chat.joinButtonCount())
	assert.Equal(t, 1, env.chat.turnCount())
}

func TestFSM_RestorePlayerTurn(t *testing.T) {
	env := newGameEnv(t, testConfig())
	ctx := context.Background()
	q := seedQuestion(t, env.client.Client, "Домашнее животное", "КОТ")

	g, err := env.games.CreateGame(ctx, 1012, q.ID)
	require.NoError(t, err)
	alice, err := env.users.GetOrCreateUser(ctx, 500, "alice")
	require.NoError(t, err)
	bob, err := env.users.GetOrCreateUser(ctx, 600, "bob")
	require.NoError(t, err)
	p1, err := env.games.CreateParticipant(ctx, g.ID, alice.ID, 0)
	require.NoError(t, err)
	_, err = env.games.CreateParticipant(ctx, g.ID, bob.ID, 1)
	require.NoError(t, err)

	require.NoError(t, env.games.UpdateParticipantState(ctx, p1.ID, participant.StateActiveTurn))
	require.NoError(t, env.games.SetCurrentPlayer(ctx, g.ID, p1.ID))
	_, err = env.games.AddRevealedLetter(ctx, g.ID, 'О')
	require.NoError(t, err)
	require.NoError(t, env.games.UpdateGameState(ctx, g.ID, game.StatePlayerTurn))

	loaded, err := env.games.GetRunningGame(ctx, 1012)
	require.NoError(t, err)

	f := env.mgr.Set(1012)
	require.NoError(t, f.RestoreCurrentState(ctx, loaded))

	assert.Equal(t, game.StatePlayerTurn, f.CurrentState())
	assert.Equal(t, int64(500), f.CurrentPlayerTGID())

	turn, ok := env.chat.lastTurn()
	require.True(t, ok)
	assert.Equal(t, "alice", turn.username)
	assert.Equal(t, "_ О _", turn.masked)
	assert.Equal(t, 100, turn.bonus)

	// Rehydration re-persists the stored state, never a different row.
	after, err := env.games.GetRunningGame(ctx, 1012)
	require.NoError(t, err)
	assert.Equal(t, loaded.State, after.State)
	assert.Equal(t, loaded.RevealedLetters, after.RevealedLetters)
	assert.Equal(t, loaded.BonusPoints, after.BonusPoints)
}

func TestFSM_RestoreWaitingForLetter(t *testing.T) {
	env := newGameEnv(t, testConfig())
	ctx := context.Background()
	q := seedQuestion(t, env.client.Client, "Домашнее животное", "КОТ")

	g, err := env.games.CreateGame(ctx, 1013, q.ID)
	require.NoError(t, err)
	alice, err := env.users.GetOrCreateUser(ctx, 500, "alice")
	require.NoError(t, err)
	bob, err := env.users.GetOrCreateUser(ctx, 600, "bob")
	require.NoError(t, err)
	p1, err := env.games.CreateParticipant(ctx, g.ID, alice.ID, 0)
	require.NoError(t, err)
	_, err = env.games.CreateParticipant(ctx, g.ID, bob.ID, 1)
	require.NoError(t, err)

	require.NoError(t, env.games.UpdateParticipantState(ctx, p1.ID, participant.StateActiveTurn))
	require.NoError(t, env.games.SetCurrentPlayer(ctx, g.ID, p1.ID))
	_, err = env.games.AddRevealedLetter(ctx, g.ID, 'О')
	require.NoError(t, err)
	require.NoError(t, env.games.UpdateGameBonus(ctx, g.ID, 100))
	require.NoError(t, env.games.UpdateGameState(ctx, g.ID, game.StateWaitingForLetter))

	loaded, err := env.games.GetRunningGame(ctx, 1013)
	require.NoError(t, err)

	f := env.mgr.Set(1013)
	require.NoError(t, f.RestoreCurrentState(ctx, loaded))

	assert.Equal(t, game.StateWaitingForLetter, f.CurrentState())
	assert.Equal(t, "Назовите букву", env.chat.lastMessage())
	assert.Equal(t, int64(500), f.CurrentPlayerTGID())

	// The restored points-at-stake still apply to the next guess.
	require.NoError(t, f.UpdateCurrentState(ctx, &telegram.Message{ChatID: 1013, Text: "К"}))
	assert.Equal(t, game.StatePlayerTurn, f.CurrentState())

	active, err := env.games.GetActiveParticipant(ctx, f.GameID())
	require.NoError(t, err)
	assert.Equal(t, 100, active.Points)
}

func TestFSM_CheckWinner(t *testing.T) {
	seed := func(t *testing.T, env *gameEnv, chatID int64, states ...participant.State) *ent.Game {
		t.Helper()
		ctx := context.Background()
		q := seedQuestion(t, env.client.Client, "Домашнее животное", "КОТ")
		g, err := env.games.CreateGame(ctx, chatID, q.ID)
		require.NoError(t, err)
		names := []string{"alice", "bob", "carol"}
		for i, st := range states {
			u, err := env.users.GetOrCreateUser(ctx, int64(100*(i+1)), names[i])
			require.NoError(t, err)
			p, err := env.games.CreateParticipant(ctx, g.ID, u.ID, i)
			require.NoError(t, err)
			if st != participant.StateWaiting {
				require.NoError(t, env.games.UpdateParticipantState(ctx, p.ID, st))
			}
		}
		require.NoError(t, env.games.UpdateGameState(ctx, g.ID, game.StateCheckWinner))
		return g
	}

	t.Run("sole survivor wins", func(t *testing.T) {
		env := newGameEnv(t, testConfig())
		ctx := context.Background()
		g := seed(t, env, 1014, participant.StateLoser, participant.StateWaiting)

		loaded, err := env.games.GetRunningGame(ctx, 1014)
		require.NoError(t, err)
		f := env.mgr.Set(1014)
		require.NoError(t, f.RestoreCurrentState(ctx, loaded))

		assert.Nil(t, env.mgr.Get(1014))
		players, err := env.games.ListParticipants(ctx, g.ID)
		require.NoError(t, err)
		for _, p := range players {
			if p.Edges.User.Username == "bob" {
				assert.Equal(t, participant.StateWinner, p.State)
			} else {
				assert.Equal(t, participant.StateLoser, p.State)
			}
		}
		assert.Contains(t, env.chat.lastMessage(), "🏆 Победитель: @bob")
	})

	t.Run("multiple survivors keep playing", func(t *testing.T) {
		env := newGameEnv(t, testConfig())
		ctx := context.Background()
		seed(t, env, 1015, participant.StateWaiting, participant.StateWaiting, participant.StateLoser)

		loaded, err := env.games.GetRunningGame(ctx, 1015)
		require.NoError(t, err)
		f := env.mgr.Set(1015)
		require.NoError(t, f.RestoreCurrentState(ctx, loaded))

		assert.Equal(t, game.StatePlayerTurn, f.CurrentState())
		assert.Contains(t, []string{"alice", "bob"}, activeUsername(t, env, f))
	})

	t.Run("nobody left ends quietly", func(t *testing.T) {
		env := newGameEnv(t, testConfig())
		ctx := context.Background()
		g := seed(t, env, 1016, participant.StateLeft, participant.StateLoser)

		loaded, err := env.games.GetRunningGame(ctx, 1016)
		require.NoError(t, err)
		f := env.mgr.Set(1016)
		require.NoError(t, f.RestoreCurrentState(ctx, loaded))

		assert.Nil(t, env.mgr.Get(1016))
		assert.Empty(t, env.chat.allMessages())

		fresh, err := env.games.GetGame(ctx, g.ID)
		require.NoError(t, err)
		assert.Equal(t, game.StateGameFinished, fresh.State)
	})
}

func TestFSM_RotationWithNoCandidatesResolvesRound(t *testing.T) {
	env := newGameEnv(t, testConfig())
	ctx := context.Background()
	q := seedQuestion(t, env.client.Client, "Домашнее животное", "КОТ")

	g, err := env.games.CreateGame(ctx, 1017, q.ID)
	require.NoError(t, err)
	alice, err := env.users.GetOrCreateUser(ctx, 500, "alice")
	require.NoError(t, err)
	bob, err := env.users.GetOrCreateUser(ctx, 600, "bob")
	require.NoError(t, err)
	p1, err := env.games.CreateParticipant(ctx, g.ID, alice.ID, 0)
	require.NoError(t, err)
	p2, err := env.games.CreateParticipant(ctx, g.ID, bob.ID, 1)
	require.NoError(t, err)

	require.NoError(t, env.games.UpdateParticipantState(ctx, p1.ID, participant.StateActiveTurn))
	require.NoError(t, env.games.UpdateParticipantState(ctx, p2.ID, participant.StateLeft))
	require.NoError(t, env.games.SetCurrentPlayer(ctx, g.ID, p1.ID))
	require.NoError(t, env.games.UpdateGameState(ctx, g.ID, game.StateNextPlayerTurn))

	loaded, err := env.games.GetRunningGame(ctx, 1017)
	require.NoError(t, err)
	f := env.mgr.Set(1017)
	require.NoError(t, f.RestoreCurrentState(ctx, loaded))

	// The rotation finds nobody waiting, so the round resolves: the last
	// player standing wins instead of the turn spinning forever.
	assert.Nil(t, env.mgr.Get(1017))

	players, err := env.games.ListParticipants(ctx, g.ID)
	require.NoError(t, err)
	for _, p := range players {
		switch p.Edges.User.Username {
		case "alice":
			assert.Equal(t, participant.StateWinner, p.State)
		case "bob":
			assert.Equal(t, participant.StateLeft, p.State)
		}
	}
	assert.Contains(t, env.chat.lastMessage(), "🏆 Победитель: @alice")
}
