package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	testdb "github.com/wordwheel/wheelbot/test/database"
)

func TestUserService_GetByTelegramID(t *testing.T) {
	client := testdb.NewTestClient(t)
	userService := NewUserService(client.Client)
	ctx := context.Background()

	t.Run("returns nil for unknown account", func(t *testing.T) {
		u, err := userService.GetByTelegramID(ctx, 424242)
		require.NoError(t, err)
		assert.Nil(t, u)
	})

	t.Run("returns existing user", func(t *testing.T) {
		seeded := seedUser(t, client.Client, 100500, "alice")

		u, err := userService.GetByTelegramID(ctx, 100500)
		require.NoError(t, err)
		require.NotNil(t, u)
		assert.Equal(t, seeded.ID, u.ID)
		assert.Equal(t, "alice", u.Username)
	})

	t.Run("validates tg_user_id required", func(t *testing.T) {
		_, err := userService.GetByTelegramID(ctx, 0)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestUserService_CreateUser(t *testing.T) {
	client := testdb.NewTestClient(t)
	userService := NewUserService(client.Client)
	ctx := context.Background()

	t.Run("creates user", func(t *testing.T) {
		u, err := userService.CreateUser(ctx, 7000, "bob")
		require.NoError(t, err)
		assert.Equal(t, int64(7000), u.TgUserID)
		assert.Equal(t, "bob", u.Username)
	})

	t.Run("rejects duplicate account", func(t *testing.T) {
		_, err := userService.CreateUser(ctx, 7000, "bob2")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("validates username required", func(t *testing.T) {
		_, err := userService.CreateUser(ctx, 7001, "")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestUserService_GetOrCreateUser(t *testing.T) {
	client := testdb.NewTestClient(t)
	userService := NewUserService(client.Client)
	ctx := context.Background()

	t.Run("creates on first contact", func(t *testing.T) {
		u, err := userService.GetOrCreateUser(ctx, 8000, "carol")
		require.NoError(t, err)
		assert.Equal(t, "carol", u.Username)
	})

	t.Run("returns same row on repeat contact", func(t *testing.T) {
		first, err := userService.GetOrCreateUser(ctx, 8001, "dave")
		require.NoError(t, err)

		second, err := userService.GetOrCreateUser(ctx, 8001, "dave")
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("refreshes username after rename", func(t *testing.T) {
		first, err := userService.GetOrCreateUser(ctx, 8002, "oldname")
		require.NoError(t, err)

		renamed, err := userService.GetOrCreateUser(ctx, 8002, "newname")
		require.NoError(t, err)
		assert.Equal(t, first.ID, renamed.ID)
		assert.Equal(t, "newname", renamed.Username)
	})
}
