package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wordwheel/wheelbot/ent/game"
	"github.com/wordwheel/wheelbot/ent/participant"
	testdb "github.com/wordwheel/wheelbot/test/database"
)

func TestGameService_CreateGame(t *testing.T) {
	client := testdb.NewTestClient(t)
	gameService := NewGameService(client.Client)
	ctx := context.Background()

	q := seedQuestion(t, client.Client, "Столица Франции", "ПАРИЖ")

	t.Run("creates game in waiting state", func(t *testing.T) {
		g, err := gameService.CreateGame(ctx, 1001, q.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1001), g.ChatID)
		assert.Equal(t, game.StateWaitingForPlayers, g.State)
		assert.Equal(t, "", g.RevealedLetters)
		assert.Equal(t, 0, g.BonusPoints)
		assert.Nil(t, g.CurrentPlayerID)
	})

	t.Run("rejects second running game in same chat", func(t *testing.T) {
		_, err := gameService.CreateGame(ctx, 1001, q.ID)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("allows new game after previous one finished", func(t *testing.T) {
		running, err := gameService.GetRunningGame(ctx, 1001)
		require.NoError(t, err)
		require.NotNil(t, running)

		err = gameService.UpdateGameState(ctx, running.ID, game.StateGameFinished)
		require.NoError(t, err)

		g, err := gameService.CreateGame(ctx, 1001, q.ID)
		require.NoError(t, err)
		assert.NotEqual(t, running.ID, g.ID)
	})

	t.Run("validates chat_id required", func(t *testing.T) {
		_, err := gameService.CreateGame(ctx, 0, q.ID)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestGameService_GetRunningGame(t *testing.T) {
	client := testdb.NewTestClient(t)
	gameService := NewGameService(client.Client)
	ctx := context.Background()

	t.Run("returns nil when chat has no game", func(t *testing.T) {
		g, err := gameService.GetRunningGame(ctx, 555)
		require.NoError(t, err)
		assert.Nil(t, g)
	})

	t.Run("returns the running game with question loaded", func(t *testing.T) {
		seeded := seedGame(t, client.Client, 2001)

		g, err := gameService.GetRunningGame(ctx, 2001)
		require.NoError(t, err)
		require.NotNil(t, g)
		assert.Equal(t, seeded.ID, g.ID)
		require.NotNil(t, g.Edges.Question)
	})

	t.Run("eager-loads current player with user", func(t *testing.T) {
		g := seedGame(t, client.Client, 2002)
		players := seedParticipants(t, client.Client, g.ID, 2)

		err := gameService.UpdateParticipantState(ctx, players[0].ID, participant.StateActiveTurn)
		require.NoError(t, err)
		err = gameService.SetCurrentPlayer(ctx, g.ID, players[0].ID)
		require.NoError(t, err)

		got, err := gameService.GetRunningGame(ctx, 2002)
		require.NoError(t, err)
		require.NotNil(t, got.Edges.CurrentPlayer)
		require.NotNil(t, got.Edges.CurrentPlayer.Edges.User)
		assert.Equal(t, "player0", got.Edges.CurrentPlayer.Edges.User.Username)
	})

	t.Run("ignores finished games", func(t *testing.T) {
		g := seedGame(t, client.Client, 2003)
		err := gameService.UpdateGameState(ctx, g.ID, game.StateGameFinished)
		require.NoError(t, err)

		got, err := gameService.GetRunningGame(ctx, 2003)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestGameService_UpdateGameState(t *testing.T) {
	client := testdb.NewTestClient(t)
	gameService := NewGameService(client.Client)
	ctx := context.Background()

	g := seedGame(t, client.Client, 3001)

	t.Run("persists transitions", func(t *testing.T) {
		err := gameService.UpdateGameState(ctx, g.ID, game.StatePlayerTurn)
		require.NoError(t, err)

		got, err := gameService.GetGame(ctx, g.ID)
		require.NoError(t, err)
		assert.Equal(t, game.StatePlayerTurn, got.State)
	})

	t.Run("returns ErrNotFound for missing game", func(t *testing.T) {
		err := gameService.UpdateGameState(ctx, 99999, game.StatePlayerTurn)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestGameService_AddRevealedLetter(t *testing.T) {
	client := testdb.NewTestClient(t)
	gameService := NewGameService(client.Client)
	ctx := context.Background()

	g := seedGame(t, client.Client, 4001)

	t.Run("appends uppercased letter", func(t *testing.T) {
		revealed, err := gameService.AddRevealedLetter(ctx, g.ID, 'п')
		require.NoError(t, err)
		assert.Equal(t, "П", revealed)
	})

	t.Run("keeps set semantics on repeat", func(t *testing.T) {
		revealed, err := gameService.AddRevealedLetter(ctx, g.ID, 'А')
		require.NoError(t, err)
		assert.Equal(t, "ПА", revealed)

		revealed, err = gameService.AddRevealedLetter(ctx, g.ID, 'а')
		require.NoError(t, err)
		assert.Equal(t, "ПА", revealed)

		got, err := gameService.GetGame(ctx, g.ID)
		require.NoError(t, err)
		assert.Equal(t, "ПА", got.RevealedLetters)
	})

	t.Run("rejects non-letters", func(t *testing.T) {
		_, err := gameService.AddRevealedLetter(ctx, g.ID, '7')
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestGameService_Participants(t *testing.T) {
	client := testdb.NewTestClient(t)
	gameService := NewGameService(client.Client)
	ctx := context.Background()

	g := seedGame(t, client.Client, 5001)
	u := seedUser(t, client.Client, 50011, "erin")

	t.Run("creates participant in waiting state", func(t *testing.T) {
		p, err := gameService.CreateParticipant(ctx, g.ID, u.ID, 0)
		require.NoError(t, err)
		assert.Equal(t, participant.StateWaiting, p.State)
		assert.Equal(t, 0, p.TurnOrder)
		assert.Equal(t, 0, p.Points)
	})

	t.Run("rejects double join", func(t *testing.T) {
		_, err := gameService.CreateParticipant(ctx, g.ID, u.ID, 1)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrAlreadyRegistered)
	})

	t.Run("counts participants", func(t *testing.T) {
		n, err := gameService.CountParticipants(ctx, g.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("lists in join order with users", func(t *testing.T) {
		second := seedUser(t, client.Client, 50012, "frank")
		_, err := gameService.CreateParticipant(ctx, g.ID, second.ID, 1)
		require.NoError(t, err)

		players, err := gameService.ListParticipants(ctx, g.ID)
		require.NoError(t, err)
		require.Len(t, players, 2)
		assert.Equal(t, "erin", players[0].Edges.User.Username)
		assert.Equal(t, "frank", players[1].Edges.User.Username)
	})
}

func TestGameService_ActiveParticipant(t *testing.T) {
	client := testdb.NewTestClient(t)
	gameService := NewGameService(client.Client)
	ctx := context.Background()

	g := seedGame(t, client.Client, 6001)
	players := seedParticipants(t, client.Client, g.ID, 3)

	t.Run("returns nil when nobody holds the turn", func(t *testing.T) {
		p, err := gameService.GetActiveParticipant(ctx, g.ID)
		require.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("returns the active player with user", func(t *testing.T) {
		err := gameService.UpdateParticipantState(ctx, players[1].ID, participant.StateActiveTurn)
		require.NoError(t, err)

		p, err := gameService.GetActiveParticipant(ctx, g.ID)
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, players[1].ID, p.ID)
		require.NotNil(t, p.Edges.User)
		assert.Equal(t, "player1", p.Edges.User.Username)
	})

	t.Run("bulk state update marks losers", func(t *testing.T) {
		err := gameService.UpdateParticipantsState(ctx,
			[]int{players[0].ID, players[2].ID}, participant.StateLoser)
		require.NoError(t, err)

		all, err := gameService.ListParticipants(ctx, g.ID)
		require.NoError(t, err)
		assert.Equal(t, participant.StateLoser, all[0].State)
		assert.Equal(t, participant.StateActiveTurn, all[1].State)
		assert.Equal(t, participant.StateLoser, all[2].State)
	})
}

func TestGameService_AddParticipantPoints(t *testing.T) {
	client := testdb.NewTestClient(t)
	gameService := NewGameService(client.Client)
	ctx := context.Background()

	g := seedGame(t, client.Client, 7001)
	players := seedParticipants(t, client.Client, g.ID, 1)

	t.Run("credits points additively", func(t *testing.T) {
		err := gameService.AddParticipantPoints(ctx, players[0].ID, 350)
		require.NoError(t, err)
		err = gameService.AddParticipantPoints(ctx, players[0].ID, 150)
		require.NoError(t, err)

		all, err := gameService.ListParticipants(ctx, g.ID)
		require.NoError(t, err)
		assert.Equal(t, 500, all[0].Points)
	})
}

func TestGameService_GameBonus(t *testing.T) {
	client := testdb.NewTestClient(t)
	gameService := NewGameService(client.Client)
	ctx := context.Background()

	g := seedGame(t, client.Client, 8001)

	t.Run("persists wheel spin", func(t *testing.T) {
		err := gameService.UpdateGameBonus(ctx, g.ID, 750)
		require.NoError(t, err)

		got, err := gameService.GetGame(ctx, g.ID)
		require.NoError(t, err)
		assert.Equal(t, 750, got.BonusPoints)
	})

	t.Run("rejects negative bonus", func(t *testing.T) {
		err := gameService.UpdateGameBonus(ctx, g.ID, -1)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}
