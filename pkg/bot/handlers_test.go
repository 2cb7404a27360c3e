package bot

import (
	"context"
	"fmt"
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
	"github.com/wordwheel/wheelbot/pkg/fsm"
	"github.com/wordwheel/wheelbot/pkg/services"
	"github.com/wordwheel/wheelbot/pkg/telegram"
	testdb "github.com/wordwheel/wheelbot/test/database"
)

// chatRecorder captures outbound chat traffic. Timer goroutines may write
// concurrently with assertions, hence the mutex.
type chatRecorder struct {
	mu           sync.Mutex
	messages     []string
	answers      []string
	startButtons int
	joinButtons  int
	turnButtons  int
}

func (c *chatRecorder) SendMessage(_ context.Context, _ int64, text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, text)
	return nil
}

func (c *chatRecorder) SendButtonStart(_ context.Context, _ int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.startButtons++
	return nil
}

func (c *chatRecorder) SendButtonJoin(_ context.Context, _ int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.joinButtons++
	return nil
}

func (c *chatRecorder) SendTurnButtons(_ context.Context, _ int64, _, _, _ string, _, _ int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.turnButtons++
	return nil
}

func (c *chatRecorder) AnswerCallback(_ context.Context, _, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.answers = append(c.answers, text)
}

func (c *chatRecorder) allMessages() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.messages...)
}

func (c *chatRecorder) allAnswers() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.answers...)
}

func (c *chatRecorder) lastAnswer() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.answers) == 0 {
		return ""
	}
	return c.answers[len(c.answers)-1]
}

func (c *chatRecorder) counters() (start, join, turn int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.startButtons, c.joinButtons, c.turnButtons
}

type botEnv struct {
	client *database.Client
	games  *services.GameService
	users  *services.UserService
	chat   *chatRecorder
	fsms   *fsm.Manager
	h      *Handlers
}

func newBotEnv(t *testing.T) *botEnv {
	t.Helper()
	client := testdb.NewTestClient(t)
	games := services.NewGameService(client.Client)
	users := services.NewUserService(client.Client)
	questions := services.NewQuestionService(client.Client)
	chat := &chatRecorder{}
	fsms := fsm.NewManager(games, questions, chat, fsm.Config{
		MinPlayers:     2,
		Sectors:        []int{100},
		Weights:        []int{1},
		WaitingTimeout: time.Minute,
		TurnTimeout:    time.Minute,
	})
	return &botEnv{
		client: client,
		games:  games,
		users:  users,
		chat:   chat,
		fsms:   fsms,
		h:      NewHandlers(users, games, chat, fsms),
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

func callback(chatID int64, command string, fromID int64, username string) telegram.CallbackQuery {
	return telegram.CallbackQuery{
		CallbackID:   fmt.Sprintf("cb-%d-%s", fromID, command),
		ChatID:       chatID,
		Command:      command,
		MessageID:    1,
		FromID:       fromID,
		FromUsername: username,
	}
}

func textMessage(chatID int64, fromID int64, username, text string) telegram.Message {
	return telegram.Message{
		ChatID:       chatID,
		Text:         text,
		MessageID:    2,
		FromID:       fromID,
		FromUsername: username,
	}
}

// startTwoPlayerGame drives a chat to player_turn through the handlers and
// returns the FSM together with the active and the waiting player ids.
func startTwoPlayerGame(t *testing.T, env *botEnv, chatID int64) (f *fsm.FSM, activeID, otherID int64) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, env.h.Start(ctx, callback(chatID, "/start", 100, "alice")))
	require.NoError(t, env.h.Join(ctx, callback(chatID, "/join", 100, "alice")))
	require.NoError(t, env.h.Join(ctx, callback(chatID, "/join", 200, "bob")))

	f = env.fsms.Get(chatID)
	require.NotNil(t, f)
	require.Equal(t, game.StatePlayerTurn, f.CurrentState())

	activeID = f.CurrentPlayerTGID()
	require.Contains(t, []int64{100, 200}, activeID)
	otherID = 300 - activeID
	return f, activeID, otherID
}

func usernameFor(tgID int64) string {
	if tgID == 100 {
		return "alice"
	}
	return "bob"
}

func TestHandlers_Start(t *testing.T) {
	env := newBotEnv(t)
	ctx := context.Background()
	seedQuestion(t, env.client.Client, "Домашнее животное", "КОТ")

	require.NoError(t, env.h.Start(ctx, callback(2001, "/start", 100, "alice")))

	assert.Contains(t, env.chat.allAnswers(), "Старт игры")
	f := env.fsms.Get(2001)
	require.NotNil(t, f)
	assert.Equal(t, game.StateWaitingForPlayers, f.CurrentState())
	_, join, _ := env.chat.counters()
	assert.Equal(t, 1, join)

	// A second press is rejected while the round lives.
	require.NoError(t, env.h.Start(ctx, callback(2001, "/start", 200, "bob")))
	assert.Equal(t, "Игра уже запущена", env.chat.lastAnswer())
	assert.Equal(t, 1, env.fsms.Len())
}

func TestHandlers_StartWithoutQuestions(t *testing.T) {
	env := newBotEnv(t)
	ctx := context.Background()

	require.NoError(t, env.h.Start(ctx, callback(2002, "/start", 100, "alice")))

	assert.Contains(t, env.chat.allMessages(), msgNoQuestions)
	assert.Nil(t, env.fsms.Get(2002))

	// The chat can try again once questions exist.
	seedQuestion(t, env.client.Client, "Домашнее животное", "КОТ")
	require.NoError(t, env.h.Start(ctx, callback(2002, "/start", 100, "alice")))
	require.NotNil(t, env.fsms.Get(2002))
}

func TestHandlers_StartRestoresPersistedGame(t *testing.T) {
	env := newBotEnv(t)
	ctx := context.Background()
	q := seedQuestion(t, env.client.Client, "Домашнее животное", "КОТ")

	// A game persisted by a previous worker run.
	g, err := env.games.CreateGame(ctx, 2003, q.ID)
	require.NoError(t, err)
	for i, name := range []string{"alice", "bob"} {
		u, err := env.users.GetOrCreateUser(ctx, int64(100*(i+1)), name)
		require.NoError(t, err)
		_, err = env.games.CreateParticipant(ctx, g.ID, u.ID, i)
		require.NoError(t, err)
	}

	require.NoError(t, env.h.Start(ctx, callback(2003, "/start", 100, "alice")))

	assert.Contains(t, env.chat.allAnswers(), "Игра восстановлена")
	f := env.fsms.Get(2003)
	require.NotNil(t, f)
	assert.Equal(t, g.ID, f.GameID())
	// Both joins were already in storage, so the round starts right away.
	assert.Equal(t, game.StatePlayerTurn, f.CurrentState())
}

func TestHandlers_Join(t *testing.T) {
	env := newBotEnv(t)
	ctx := context.Background()
	seedQuestion(t, env.client.Client, "Домашнее животное", "КОТ")

	// No game yet.
	require.NoError(t, env.h.Join(ctx, callback(2004, "/join", 100, "alice")))
	assert.Equal(t, "Нет активной игры", env.chat.lastAnswer())

	require.NoError(t, env.h.Start(ctx, callback(2004, "/start", 100, "alice")))

	require.NoError(t, env.h.Join(ctx, callback(2004, "/join", 100, "alice")))
	assert.Equal(t, "Игрок @alice присоединился к игре", env.chat.lastAnswer())
	assert.Contains(t, env.chat.allMessages(), "Подключились (1/2) игроков")

	// Pressing join twice registers once.
	require.NoError(t, env.h.Join(ctx, callback(2004, "/join", 100, "alice")))
	assert.Equal(t, "alice - вы уже зарегистрированы", env.chat.lastAnswer())

	f := env.fsms.Get(2004)
	require.NotNil(t, f)
	count, err := env.games.CountParticipants(ctx, f.GameID())
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, env.h.Join(ctx, callback(2004, "/join", 200, "bob")))
	assert.Equal(t, game.StatePlayerTurn, f.CurrentState())

	// Latecomers are turned away.
	require.NoError(t, env.h.Join(ctx, callback(2004, "/join", 300, "carol")))
	assert.Equal(t, "Игра на другом этапе", env.chat.lastAnswer())
}

func TestHandlers_SayLetter(t *testing.T) {
	env := newBotEnv(t)
	ctx := context.Background()
	seedQuestion(t, env.client.Client, "Домашнее животное", "КОТ")
	f, activeID, otherID := startTwoPlayerGame(t, env, 2005)

	// Only the player whose turn it is may claim the buttons.
	require.NoError(t, env.h.SayLetter(ctx, callback(2005, "/say_letter", otherID, usernameFor(otherID))))
	assert.Equal(t, "Дождитесь своего хода", env.chat.lastAnswer())
	assert.Equal(t, game.StatePlayerTurn, f.CurrentState())

	require.NoError(t, env.h.SayLetter(ctx, callback(2005, "/say_letter", activeID, usernameFor(activeID))))
	assert.Equal(t, game.StateWaitingForLetter, f.CurrentState())
	assert.Contains(t, env.chat.allMessages(), "Назовите букву")

	// A bystander's text is not a guess.
	require.NoError(t, env.h.Text(ctx, textMessage(2005, otherID, usernameFor(otherID), "К")))
	for _, m := range env.chat.allMessages() {
		assert.NotContains(t, m, "назвал букву")
	}
	assert.Equal(t, game.StateWaitingForLetter, f.CurrentState())

	// The active player's text is.
	require.NoError(t, env.h.Text(ctx, textMessage(2005, activeID, usernameFor(activeID), "К")))
	assert.Contains(t, env.chat.allMessages(),
		"@"+usernameFor(activeID)+" назвал букву: К\nВерно!")
	assert.Equal(t, game.StatePlayerTurn, f.CurrentState())
}

func TestHandlers_SayWordWins(t *testing.T) {
	env := newBotEnv(t)
	ctx := context.Background()
	seedQuestion(t, env.client.Client, "Домашнее животное", "КОТ")
	_, activeID, _ := startTwoPlayerGame(t, env, 2006)

	require.NoError(t, env.h.SayWord(ctx, callback(2006, "/say_word", activeID, usernameFor(activeID))))
	assert.Contains(t, env.chat.allMessages(), "Назовите слово")

	require.NoError(t, env.h.Text(ctx, textMessage(2006, activeID, usernameFor(activeID), "кот")))

	assert.Nil(t, env.fsms.Get(2006))
	found := false
	for _, m := range env.chat.allMessages() {
		if strings.Contains(m, "🏆 Победитель: @"+usernameFor(activeID)+" с 100 очками") {
			found = true
		}
	}
	assert.True(t, found, "scoreboard with the winner expected")
}

func TestHandlers_LeaveGame(t *testing.T) {
	env := newBotEnv(t)
	ctx := context.Background()
	seedQuestion(t, env.client.Client, "Домашнее животное", "КОТ")
	f, activeID, otherID := startTwoPlayerGame(t, env, 2007)
	gameID := f.GameID()

	require.NoError(t, env.h.LeaveGame(ctx, callback(2007, "/leave_game", otherID, usernameFor(otherID))))
	assert.Equal(t, "Дождитесь своего хода", env.chat.lastAnswer())

	require.NoError(t, env.h.LeaveGame(ctx, callback(2007, "/leave_game", activeID, usernameFor(activeID))))

	assert.Contains(t, env.chat.allAnswers(), "Вы покинули игру")
	assert.Contains(t, env.chat.allMessages(), "@"+usernameFor(activeID)+" Покинул игру")

	// The remaining player wins and the round closes out.
	assert.Nil(t, env.fsms.Get(2007))
	players, err := env.games.ListParticipants(ctx, gameID)
	require.NoError(t, err)
	for _, p := range players {
		if p.Edges.User.TgUserID == activeID {
			assert.Equal(t, participant.StateLeft, p.State)
		} else {
			assert.Equal(t, participant.StateWinner, p.State)
		}
	}
}

func TestHandlers_LeaveOutsideTurn(t *testing.T) {
	env := newBotEnv(t)
	ctx := context.Background()
	seedQuestion(t, env.client.Client, "Домашнее животное", "КОТ")

	require.NoError(t, env.h.LeaveGame(ctx, callback(2008, "/leave_game", 100, "alice")))
	assert.Equal(t, "Нет активной игры", env.chat.lastAnswer())

	require.NoError(t, env.h.Start(ctx, callback(2008, "/start", 100, "alice")))
	require.NoError(t, env.h.LeaveGame(ctx, callback(2008, "/leave_game", 100, "alice")))
	assert.Equal(t, "Игра на другом этапе", env.chat.lastAnswer())
}

func TestHandlers_Text(t *testing.T) {
	env := newBotEnv(t)
	ctx := context.Background()
	seedQuestion(t, env.client.Client, "Домашнее животное", "КОТ")

	// A chat without a game is offered one.
	require.NoError(t, env.h.Text(ctx, textMessage(2009, 100, "alice", "привет")))
	start, _, _ := env.chat.counters()
	assert.Equal(t, 1, start)

	// Chatter during the lobby is ignored.
	require.NoError(t, env.h.Start(ctx, callback(2009, "/start", 100, "alice")))
	before := len(env.chat.allMessages())
	require.NoError(t, env.h.Text(ctx, textMessage(2009, 100, "alice", "привет")))
	assert.Len(t, env.chat.allMessages(), before)
}
