package services

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/wordwheel/wheelbot/ent"
	"github.com/wordwheel/wheelbot/ent/game"
	"github.com/wordwheel/wheelbot/ent/participant"
)

// GameService manages game rounds and their participants.
//
// Every operation runs under its own short deadline so a stuck database
// never wedges a queue worker. A chat's updates are processed by a single
// worker goroutine, which is what makes the read-modify-write operations
// here safe without row locks.
type GameService struct {
	client *ent.Client
}

// NewGameService creates a new GameService
func NewGameService(client *ent.Client) *GameService {
	return &GameService{client: client}
}

// CreateGame starts a new round in a chat. The partial unique index on
// running games turns a double-start into ErrAlreadyExists.
func (s *GameService) CreateGame(ctx context.Context, chatID int64, questionID int) (*ent.Game, error) {
	if chatID == 0 {
		return nil, NewValidationError("chat_id", "required")
	}
	if questionID <= 0 {
		return nil, NewValidationError("question_id", "required")
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	g, err := s.client.Game.Create().
		SetChatID(chatID).
		SetQuestionID(questionID).
		SetState(game.StateWaitingForPlayers).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	return g, nil
}

// GetRunningGame returns the chat's non-finished game with its current
// player eager-loaded, or nil without error when the chat has none.
func (s *GameService) GetRunningGame(ctx context.Context, chatID int64) (*ent.Game, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	g, err := s.client.Game.Query().
		Where(
			game.ChatIDEQ(chatID),
			game.StateNEQ(game.StateGameFinished),
		).
		WithQuestion().
		WithCurrentPlayer(func(q *ent.ParticipantQuery) {
			q.WithUser()
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get running game: %w", err)
	}

	return g, nil
}

// GetGame returns a game by id with question and current player eager-loaded
func (s *GameService) GetGame(ctx context.Context, gameID int) (*ent.Game, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	g, err := s.client.Game.Query().
		Where(game.IDEQ(gameID)).
		WithQuestion().
		WithCurrentPlayer(func(q *ent.ParticipantQuery) {
			q.WithUser()
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return g, nil
}

// UpdateGameState persists a state transition
func (s *GameService) UpdateGameState(ctx context.Context, gameID int, state game.State) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := s.client.Game.UpdateOneID(gameID).
		SetState(state).
		Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update game state: %w", err)
	}

	return nil
}

// UpdateGameBonus stores the points at stake after a wheel spin
func (s *GameService) UpdateGameBonus(ctx context.Context, gameID, bonus int) error {
	if bonus < 0 {
		return NewValidationError("bonus_points", "must be non-negative")
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := s.client.Game.UpdateOneID(gameID).
		SetBonusPoints(bonus).
		Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update game bonus: %w", err)
	}

	return nil
}

// AddRevealedLetter appends a named letter to the game's revealed set and
// returns the updated set. Re-naming a known letter is a no-op, so the set
// never holds duplicates.
func (s *GameService) AddRevealedLetter(ctx context.Context, gameID int, letter rune) (string, error) {
	letter = unicode.ToUpper(letter)
	if !unicode.IsLetter(letter) {
		return "", NewValidationError("letter", "must be a letter")
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	g, err := s.client.Game.Get(ctx, gameID)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to get game: %w", err)
	}

	if strings.ContainsRune(g.RevealedLetters, letter) {
		return g.RevealedLetters, nil
	}

	revealed := g.RevealedLetters + string(letter)
	if err := s.client.Game.UpdateOneID(gameID).
		SetRevealedLetters(revealed).
		Exec(ctx); err != nil {
		return "", fmt.Errorf("failed to update revealed letters: %w", err)
	}

	return revealed, nil
}

// SetCurrentPlayer points the game at the participant whose turn it is
func (s *GameService) SetCurrentPlayer(ctx context.Context, gameID, participantID int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := s.client.Game.UpdateOneID(gameID).
		SetCurrentPlayerID(participantID).
		Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set current player: %w", err)
	}

	return nil
}

// CreateParticipant registers a user in a game. The (user, game) unique
// index turns a double-join into ErrAlreadyRegistered.
func (s *GameService) CreateParticipant(ctx context.Context, gameID, userID, turnOrder int) (*ent.Participant, error) {
	if turnOrder < 0 {
		return nil, NewValidationError("turn_order", "must be non-negative")
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	p, err := s.client.Participant.Create().
		SetGameID(gameID).
		SetUserID(userID).
		SetTurnOrder(turnOrder).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyRegistered
		}
		return nil, fmt.Errorf("failed to create participant: %w", err)
	}

	return p, nil
}

// CountParticipants returns how many players have joined a game
func (s *GameService) CountParticipants(ctx context.Context, gameID int) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	n, err := s.client.Participant.Query().
		Where(participant.GameIDEQ(gameID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count participants: %w", err)
	}

	return n, nil
}

// ListParticipants returns a game's players in join order with their users
// eager-loaded
func (s *GameService) ListParticipants(ctx context.Context, gameID int) ([]*ent.Participant, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	players, err := s.client.Participant.Query().
		Where(participant.GameIDEQ(gameID)).
		WithUser().
		Order(ent.Asc(participant.FieldTurnOrder)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}

	return players, nil
}

// GetActiveParticipant returns the player whose turn it is, or nil without
// error when the game has none. At most one participant per game holds
// active_turn.
func (s *GameService) GetActiveParticipant(ctx context.Context, gameID int) (*ent.Participant, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	p, err := s.client.Participant.Query().
		Where(
			participant.GameIDEQ(gameID),
			participant.StateEQ(participant.StateActiveTurn),
		).
		WithUser().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active participant: %w", err)
	}

	return p, nil
}

// UpdateParticipantState moves one player between lifecycle states
func (s *GameService) UpdateParticipantState(ctx context.Context, participantID int, state participant.State) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := s.client.Participant.UpdateOneID(participantID).
		SetState(state).
		Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update participant state: %w", err)
	}

	return nil
}

// UpdateParticipantsState moves several players at once, e.g. marking the
// rest of the field as losers when the round ends
func (s *GameService) UpdateParticipantsState(ctx context.Context, participantIDs []int, state participant.State) error {
	if len(participantIDs) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := s.client.Participant.Update().
		Where(participant.IDIn(participantIDs...)).
		SetState(state).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to update participants state: %w", err)
	}

	return nil
}

// AddParticipantPoints credits points to a player's score
func (s *GameService) AddParticipantPoints(ctx context.Context, participantID, points int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := s.client.Participant.UpdateOneID(participantID).
		AddPoints(points).
		Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to add participant points: %w", err)
	}

	return nil
}
