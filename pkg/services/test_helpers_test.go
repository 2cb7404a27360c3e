package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wordwheel/wheelbot/ent"
)

// seedQuestion inserts a question the game tests can draw from
func seedQuestion(t *testing.T, client *ent.Client, text, answer string) *ent.Question {
	t.Helper()
	q, err := client.Question.Create().
		SetQuestion(text).
		SetAnswer(answer).
		Save(context.Background())
	require.NoError(t, err)
	return q
}

// seedUser inserts a platform account
func seedUser(t *testing.T, client *ent.Client, tgUserID int64, username string) *ent.User {
	t.Helper()
	u, err := client.User.Create().
		SetTgUserID(tgUserID).
		SetUsername(username).
		Save(context.Background())
	require.NoError(t, err)
	return u
}

// seedGame creates a question and a fresh waiting game in the given chat
func seedGame(t *testing.T, client *ent.Client, chatID int64) *ent.Game {
	t.Helper()
	q := seedQuestion(t, client,
		fmt.Sprintf("Столица страны номер %d", chatID),
		fmt.Sprintf("ОТВЕТ%d", chatID))
	g, err := client.Game.Create().
		SetChatID(chatID).
		SetQuestionID(q.ID).
		Save(context.Background())
	require.NoError(t, err)
	return g
}

// seedParticipants registers n users in the game, in join order
func seedParticipants(t *testing.T, client *ent.Client, gameID int, n int) []*ent.Participant {
	t.Helper()
	players := make([]*ent.Participant, 0, n)
	for i := 0; i < n; i++ {
		u := seedUser(t, client, int64(1000*gameID+i), fmt.Sprintf("player%d", i))
		p, err := client.Participant.Create().
			SetGameID(gameID).
			SetUserID(u.ID).
			SetTurnOrder(i).
			Save(context.Background())
		require.NoError(t, err)
		players = append(players, p)
	}
	return players
}
