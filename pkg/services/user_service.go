// Package services contains business logic service layer implementations.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wordwheel/wheelbot/ent"
	"github.com/wordwheel/wheelbot/ent/user"
)

// UserService manages chat-platform accounts
type UserService struct {
	client *ent.Client
}

// NewUserService creates a new UserService
func NewUserService(client *ent.Client) *UserService {
	return &UserService{client: client}
}

// GetByTelegramID returns the user with the given platform account id, or
// nil without error when no such user exists.
func (s *UserService) GetByTelegramID(ctx context.Context, tgUserID int64) (*ent.User, error) {
	if tgUserID == 0 {
		return nil, NewValidationError("tg_user_id", "required")
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	u, err := s.client.User.Query().
		Where(user.TgUserIDEQ(tgUserID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

// CreateUser stores a newly seen account
func (s *UserService) CreateUser(ctx context.Context, tgUserID int64, username string) (*ent.User, error) {
	if tgUserID == 0 {
		return nil, NewValidationError("tg_user_id", "required")
	}
	if username == "" {
		return nil, NewValidationError("username", "required")
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	u, err := s.client.User.Create().
		SetTgUserID(tgUserID).
		SetUsername(username).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return u, nil
}

// GetOrCreateUser returns the existing user for a platform account, creating
// one on first contact. The stored username is refreshed when the account
// was renamed since we last saw it.
func (s *UserService) GetOrCreateUser(ctx context.Context, tgUserID int64, username string) (*ent.User, error) {
	u, err := s.GetByTelegramID(ctx, tgUserID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		u, err = s.CreateUser(ctx, tgUserID, username)
		if err == nil || !errors.Is(err, ErrAlreadyExists) {
			return u, err
		}
		// Lost the race to a concurrent insert, fall through to re-read
		u, err = s.GetByTelegramID(ctx, tgUserID)
		if err != nil {
			return nil, err
		}
		if u == nil {
			return nil, ErrNotFound
		}
	}

	if username != "" && u.Username != username {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		u, err = s.client.User.UpdateOneID(u.ID).
			SetUsername(username).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to refresh username: %w", err)
		}
	}

	return u, nil
}
