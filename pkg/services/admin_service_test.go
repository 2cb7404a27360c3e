package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	testdb "github.com/wordwheel/wheelbot/test/database"
)

func TestAdminService_BootstrapAdmin(t *testing.T) {
	client := testdb.NewTestClient(t)
	adminService := NewAdminService(client.Client)
	ctx := context.Background()

	t.Run("creates base admin with hashed password", func(t *testing.T) {
		a, err := adminService.BootstrapAdmin(ctx, "admin@wheelbot.ru", "s3cret")
		require.NoError(t, err)
		assert.Equal(t, "admin@wheelbot.ru", a.Email)
		assert.Equal(t, HashPassword("s3cret"), a.Password)
		assert.NotEqual(t, "s3cret", a.Password)
	})

	t.Run("repeat bootstrap keeps existing account", func(t *testing.T) {
		a, err := adminService.BootstrapAdmin(ctx, "admin@wheelbot.ru", "otherpass")
		require.NoError(t, err)
		// The original password survives
		assert.Equal(t, HashPassword("s3cret"), a.Password)
	})

	t.Run("validates email required", func(t *testing.T) {
		_, err := adminService.BootstrapAdmin(ctx, "", "pass")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestAdminService_Authenticate(t *testing.T) {
	client := testdb.NewTestClient(t)
	adminService := NewAdminService(client.Client)
	ctx := context.Background()

	_, err := adminService.BootstrapAdmin(ctx, "admin@wheelbot.ru", "s3cret")
	require.NoError(t, err)

	t.Run("accepts valid credentials", func(t *testing.T) {
		a, err := adminService.Authenticate(ctx, "admin@wheelbot.ru", "s3cret")
		require.NoError(t, err)
		assert.Equal(t, "admin@wheelbot.ru", a.Email)
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		_, err := adminService.Authenticate(ctx, "admin@wheelbot.ru", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("rejects unknown email", func(t *testing.T) {
		_, err := adminService.Authenticate(ctx, "nobody@wheelbot.ru", "s3cret")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAdminService_GetAdminByEmail(t *testing.T) {
	client := testdb.NewTestClient(t)
	adminService := NewAdminService(client.Client)
	ctx := context.Background()

	t.Run("returns nil for unknown email", func(t *testing.T) {
		a, err := adminService.GetAdminByEmail(ctx, "ghost@wheelbot.ru")
		require.NoError(t, err)
		assert.Nil(t, a)
	})

	t.Run("finds bootstrapped admin", func(t *testing.T) {
		_, err := adminService.BootstrapAdmin(ctx, "root@wheelbot.ru", "pass")
		require.NoError(t, err)

		a, err := adminService.GetAdminByEmail(ctx, "root@wheelbot.ru")
		require.NoError(t, err)
		require.NotNil(t, a)
		assert.Equal(t, "root@wheelbot.ru", a.Email)
	})
}
