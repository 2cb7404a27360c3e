package e2e

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordwheel/wheelbot/ent/game"
	"github.com/wordwheel/wheelbot/ent/participant"
	"github.com/wordwheel/wheelbot/pkg/broker"
)

type player struct {
	id   int64
	name string
}

// TestE2E_FullRound plays a complete round over the real pipe: button
// presses and chat messages enter through the fake Bot API, cross the
// broker, and come back out as game announcements.
func TestE2E_FullRound(t *testing.T) {
	app := NewTestApp(t, WithQuestion("Столица Франции", "Париж"))

	const chatID int64 = -100500
	alice := player{id: 42, name: "alice"}
	bob := player{id: 43, name: "bob"}

	// Assemble the party.
	app.Telegram.InjectCallback(chatID, alice.id, alice.name, "/start")
	app.Telegram.WaitForMessage(t, chatID, "Присоединиться к игре?")

	app.Telegram.InjectCallback(chatID, alice.id, alice.name, "/join")
	app.Telegram.WaitForMessage(t, chatID, "Подключились (1/2) игроков")

	n := app.Telegram.Count(chatID)
	app.Telegram.InjectCallback(chatID, bob.id, bob.name, "/join")
	prompt := app.Telegram.WaitSince(t, chatID, n, ", ваш ход!")

	// The first turn lands on a random player; read the prompt to see whose.
	owner := alice
	if strings.HasPrefix(prompt, "@"+bob.name) {
		owner = bob
	}
	assert.Contains(t, prompt, "Столица Франции")
	assert.Contains(t, prompt, "_ _ _ _ _")

	// The player on turn solves the word outright.
	n = app.Telegram.Count(chatID)
	app.Telegram.InjectCallback(chatID, owner.id, owner.name, "/say_word")
	app.Telegram.WaitSince(t, chatID, n, "Назовите слово")

	n = app.Telegram.Count(chatID)
	app.Telegram.InjectText(chatID, owner.id, owner.name, "париж")
	final := app.Telegram.WaitSince(t, chatID, n, "🏆")
	assert.Contains(t, final, "ПАРИЖ")
	assert.Contains(t, final, "@"+owner.name)

	// The persisted round is finished with one winner and one loser.
	ctx := context.Background()
	g, err := app.DB.Game.Query().Where(game.ChatID(chatID)).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, game.StateGameFinished, g.State)

	players, err := app.Games.ListParticipants(ctx, g.ID)
	require.NoError(t, err)
	require.Len(t, players, 2)
	for _, p := range players {
		if p.Edges.User.Username == owner.name {
			assert.Equal(t, participant.StateWinner, p.State)
			assert.Positive(t, p.Points)
		} else {
			assert.Equal(t, participant.StateLoser, p.State)
		}
	}

	// The seat is released once the round ends.
	require.Eventually(t, func() bool { return app.Manager.Len() == 0 },
		5*time.Second, 25*time.Millisecond)
}

// TestE2E_ShardedChats runs two chats pinned to different queues and checks
// both reach their first turn independently. A misrouted update would stall
// one of them.
func TestE2E_ShardedChats(t *testing.T) {
	app := NewTestApp(t, WithNumQueues(2), WithQuestion("Река в Египте", "Нил"))

	var chatA, chatB int64
	for id := int64(-200001); chatA == 0 || chatB == 0; id-- {
		if broker.ShardIndex(id, 2) == 0 {
			if chatA == 0 {
				chatA = id
			}
		} else if chatB == 0 {
			chatB = id
		}
	}

	carol := player{id: 71, name: "carol"}
	dave := player{id: 72, name: "dave"}

	for _, chatID := range []int64{chatA, chatB} {
		app.Telegram.InjectCallback(chatID, carol.id, carol.name, "/start")
		app.Telegram.InjectCallback(chatID, carol.id, carol.name, "/join")
		app.Telegram.InjectCallback(chatID, dave.id, dave.name, "/join")
	}

	for _, chatID := range []int64{chatA, chatB} {
		prompt := app.Telegram.WaitForMessage(t, chatID, ", ваш ход!")
		assert.Contains(t, prompt, "Река в Египте")
	}
	assert.Equal(t, 2, app.Manager.Len())
}
