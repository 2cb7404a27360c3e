package fsm

import (
	"context"
	"strings"
	"unicode"

	"github.com/wordwheel/wheelbot/ent"
	"github.com/wordwheel/wheelbot/ent/game"
	"github.com/wordwheel/wheelbot/ent/participant"
	"github.com/wordwheel/wheelbot/pkg/metrics"
	"github.com/wordwheel/wheelbot/pkg/telegram"
)

// enterWaitingForPlayers opens a round: draw a question, create the game
// row, invite the chat, arm the sign-up deadline. services.ErrNoQuestions
// propagates so the start handler can report an empty question pool.
func (f *FSM) enterWaitingForPlayers(ctx context.Context) error {
	q, err := f.questions.GetRandomQuestion(ctx)
	if err != nil {
		return err
	}
	g, err := f.games.CreateGame(ctx, f.chatID, q.ID)
	if err != nil {
		return err
	}
	f.gameID = g.ID

	if err := f.chat.SendButtonJoin(ctx, f.chatID); err != nil {
		return err
	}
	f.startWaitingTimer()
	return nil
}

func (f *FSM) updateWaitingForPlayers(ctx context.Context, _ *telegram.Message) error {
	count, err := f.games.CountParticipants(ctx, f.gameID)
	if err != nil {
		return err
	}
	if count >= f.cfg.MinPlayers {
		return f.setState(ctx, game.StateNextPlayerTurn)
	}
	return f.chat.SendMessage(ctx, f.chatID, playersConnectedMessage(count, f.cfg.MinPlayers))
}

// enterNextPlayerTurn rotates the active turn and moves on to player_turn.
// When the rotation finds nobody left in waiting, the round is resolved
// through check_winner instead of spinning in place.
func (f *FSM) enterNextPlayerTurn(ctx context.Context) error {
	g, err := f.games.GetGame(ctx, f.gameID)
	if err != nil {
		return err
	}
	players, err := f.games.ListParticipants(ctx, f.gameID)
	if err != nil {
		return err
	}

	next, err := f.passTurn(ctx, players, g.Edges.CurrentPlayer)
	if err != nil {
		return err
	}
	if next == nil {
		return f.setState(ctx, game.StateCheckWinner)
	}

	f.currentPlayerTGID = next.Edges.User.TgUserID
	f.currentPlayerUsername = next.Edges.User.Username
	if err := f.games.SetCurrentPlayer(ctx, f.gameID, next.ID); err != nil {
		return err
	}
	return f.setState(ctx, game.StatePlayerTurn)
}

// passTurn promotes the next player. With no current player it seeds the
// rotation with a random waiting participant; afterwards it walks the join
// order. Returns nil when nobody is left in waiting.
func (f *FSM) passTurn(ctx context.Context, players []*ent.Participant, current *ent.Participant) (*ent.Participant, error) {
	if current == nil {
		next := randomWaiting(players, f.rng)
		if next == nil {
			return nil, nil
		}
		if err := f.games.UpdateParticipantState(ctx, next.ID, participant.StateActiveTurn); err != nil {
			return nil, err
		}
		return next, nil
	}

	next := nextWaiting(players, current)
	if next == nil {
		return nil, nil
	}
	// A player who left or lost mid-turn keeps that status.
	if current.State == participant.StateActiveTurn {
		if err := f.games.UpdateParticipantState(ctx, current.ID, participant.StateWaiting); err != nil {
			return nil, err
		}
	}
	if err := f.games.UpdateParticipantState(ctx, next.ID, participant.StateActiveTurn); err != nil {
		return nil, err
	}
	f.logger.Info("Next turn player", "username", next.Edges.User.Username)
	return next, nil
}

// enterPlayerTurn announces the turn: mask the answer, spin the wheel,
// show the board. A missing active participant (restored game caught
// mid-transition) rotates instead.
func (f *FSM) enterPlayerTurn(ctx context.Context) error {
	active, err := f.games.GetActiveParticipant(ctx, f.gameID)
	if err != nil {
		return err
	}
	if active == nil {
		return f.setState(ctx, game.StateNextPlayerTurn)
	}

	g, err := f.games.GetGame(ctx, f.gameID)
	if err != nil {
		return err
	}

	masked := MaskWord(g.Edges.Question.Answer, g.RevealedLetters)
	f.bonusPoints = f.wheel.Spin()
	if err := f.games.UpdateGameBonus(ctx, f.gameID, f.bonusPoints); err != nil {
		return err
	}
	f.currentPlayerTGID = active.Edges.User.TgUserID
	f.currentPlayerUsername = active.Edges.User.Username

	if err := f.chat.SendTurnButtons(ctx, f.chatID, active.Edges.User.Username,
		g.Edges.Question.Question, masked, active.Points, f.bonusPoints); err != nil {
		return err
	}
	f.startTurnTimer()
	return nil
}

func (f *FSM) enterWaitingForLetter(ctx context.Context) error {
	if err := f.chat.SendMessage(ctx, f.chatID, msgPromptLetter); err != nil {
		return err
	}
	f.startTurnTimer()
	return nil
}

func (f *FSM) enterWaitingForWord(ctx context.Context) error {
	if err := f.chat.SendMessage(ctx, f.chatID, msgPromptWord); err != nil {
		return err
	}
	f.startTurnTimer()
	return nil
}

// updateWaitingForLetter scores a named letter. The guess is announced
// back to the chat with the verdict; a miss of any kind passes the turn,
// a hit lets the same player continue or finishes the game outright.
func (f *FSM) updateWaitingForLetter(ctx context.Context, msg *telegram.Message) error {
	if msg == nil {
		return nil
	}
	guess := strings.ToUpper(msg.Text)

	g, err := f.games.GetGame(ctx, f.gameID)
	if err != nil {
		return err
	}
	player := g.Edges.CurrentPlayer
	if player == nil || player.Edges.User == nil {
		return f.setState(ctx, game.StateNextPlayerTurn)
	}
	announce := letterAnnouncement(player.Edges.User.Username, guess)

	runes := []rune(guess)
	if len(runes) != 1 || !unicode.IsLetter(runes[0]) {
		if err := f.sendVerdict(ctx, announce, msgNotALetter); err != nil {
			return err
		}
		return f.setState(ctx, game.StateNextPlayerTurn)
	}
	letter := runes[0]

	if strings.ContainsRune(strings.ToUpper(g.RevealedLetters), letter) {
		if err := f.sendVerdict(ctx, announce, msgLetterAlreadyNamed); err != nil {
			return err
		}
		return f.setState(ctx, game.StateNextPlayerTurn)
	}

	answer := strings.ToUpper(g.Edges.Question.Answer)
	if !strings.ContainsRune(answer, letter) {
		if err := f.sendVerdict(ctx, announce, msgLetterNotInWord); err != nil {
			return err
		}
		if _, err := f.games.AddRevealedLetter(ctx, f.gameID, letter); err != nil {
			return err
		}
		return f.setState(ctx, game.StateNextPlayerTurn)
	}

	if err := f.sendVerdict(ctx, announce, msgGuessCorrect); err != nil {
		return err
	}
	revealed, err := f.games.AddRevealedLetter(ctx, f.gameID, letter)
	if err != nil {
		return err
	}
	points := f.bonusPoints * strings.Count(answer, string(letter))
	if err := f.games.AddParticipantPoints(ctx, player.ID, points); err != nil {
		return err
	}

	if IsWordGuessed(g.Edges.Question.Answer, revealed) {
		if err := f.retirePlayer(ctx, player.ID, participant.StateWinner); err != nil {
			return err
		}
		return f.setState(ctx, game.StateGameFinished)
	}
	return f.setState(ctx, game.StatePlayerTurn)
}

// updateWaitingForWord resolves a full-word guess: exact (case-insensitive)
// match wins the game, anything else eliminates the player.
func (f *FSM) updateWaitingForWord(ctx context.Context, msg *telegram.Message) error {
	if msg == nil {
		return nil
	}
	guess := strings.ToUpper(strings.TrimSpace(msg.Text))

	g, err := f.games.GetGame(ctx, f.gameID)
	if err != nil {
		return err
	}
	player := g.Edges.CurrentPlayer
	if player == nil || player.Edges.User == nil {
		return f.setState(ctx, game.StateNextPlayerTurn)
	}
	announce := wordAnnouncement(player.Edges.User.Username, guess)

	if guess == strings.ToUpper(g.Edges.Question.Answer) {
		if err := f.sendVerdict(ctx, announce, msgGuessCorrect); err != nil {
			return err
		}
		if err := f.games.AddParticipantPoints(ctx, player.ID, f.bonusPoints); err != nil {
			return err
		}
		if err := f.retirePlayer(ctx, player.ID, participant.StateWinner); err != nil {
			return err
		}
		return f.setState(ctx, game.StateGameFinished)
	}

	if err := f.sendVerdict(ctx, announce, msgWordWrong); err != nil {
		return err
	}
	if err := f.retirePlayer(ctx, player.ID, participant.StateLoser); err != nil {
		return err
	}
	return f.setState(ctx, game.StateCheckWinner)
}

// enterCheckWinner resolves the round after an elimination: one survivor
// wins, zero ends the game without a winner, more pass the turn onward.
func (f *FSM) enterCheckWinner(ctx context.Context) error {
	players, err := f.games.ListParticipants(ctx, f.gameID)
	if err != nil {
		return err
	}

	var remaining []*ent.Participant
	for _, p := range players {
		if p.State == participant.StateActiveTurn || p.State == participant.StateWaiting {
			remaining = append(remaining, p)
		}
	}

	switch len(remaining) {
	case 1:
		if err := f.retirePlayer(ctx, remaining[0].ID, participant.StateWinner); err != nil {
			return err
		}
		return f.setState(ctx, game.StateGameFinished)
	case 0:
		return f.setState(ctx, game.StateGameFinished)
	default:
		return f.setState(ctx, game.StateNextPlayerTurn)
	}
}

// enterGameFinished finalizes the round. Without a winner (sign-up timed
// out, everyone left) the field is released quietly; otherwise remaining
// players become losers and the chat gets the scoreboard. The FSM leaves
// the manager either way, even when announcing fails.
func (f *FSM) enterGameFinished(ctx context.Context) error {
	defer f.manager.Remove(f.chatID)
	f.cancelTimer()

	g, err := f.games.GetGame(ctx, f.gameID)
	if err != nil {
		return err
	}
	players, err := f.games.ListParticipants(ctx, f.gameID)
	if err != nil {
		return err
	}

	var winner *ent.Participant
	var losers []*ent.Participant
	for _, p := range players {
		if p.State == participant.StateWinner {
			winner = p
		} else {
			losers = append(losers, p)
		}
	}

	if winner == nil {
		return f.retireWaiting(ctx, players, participant.StateLeft)
	}
	if err := f.retireWaiting(ctx, players, participant.StateLoser); err != nil {
		return err
	}

	text := finalScoreboard(g.Edges.Question.Answer, winner, losers)
	return f.chat.SendMessage(ctx, f.chatID, text)
}

func (f *FSM) sendVerdict(ctx context.Context, announce, verdict string) error {
	return f.chat.SendMessage(ctx, f.chatID, announce+"\n"+verdict)
}

// retirePlayer moves one participant to a terminal state and keeps the
// active-players gauge in step.
func (f *FSM) retirePlayer(ctx context.Context, participantID int, state participant.State) error {
	if err := f.games.UpdateParticipantState(ctx, participantID, state); err != nil {
		return err
	}
	metrics.ActivePlayers.Dec()
	return nil
}

// retireWaiting bulk-moves every still-waiting participant to a terminal
// state during finalization.
func (f *FSM) retireWaiting(ctx context.Context, players []*ent.Participant, state participant.State) error {
	var ids []int
	for _, p := range players {
		if p.State == participant.StateWaiting {
			ids = append(ids, p.ID)
		}
	}
	if len(ids) == 0 {
		return nil
	}
	if err := f.games.UpdateParticipantsState(ctx, ids, state); err != nil {
		return err
	}
	metrics.ActivePlayers.Sub(float64(len(ids)))
	return nil
}
