package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `
admin:
  email: admin@example.com
  password: s3cret
bot:
  token: "123456:ABC-DEF"
database:
  host: db.example.com
  port: 5433
  user: wheelbot
  password: dbpass
  database: wheelbot
aiohttp_session:
  key: cookie-signing-key
broker:
  host: mq.example.com
  port: 5672
  user: wheelbot
  password: mqpass
  number_queues: 4
  prefetch_count: 1
game:
  min_number_of_participants: 3
  wheel_sectors: [0, 100, 500]
  sector_weights: [1, 2, 3]
metrics:
  port: 9191
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestInitialize(t *testing.T) {
	cfg, err := Initialize(writeConfig(t, validYAML))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "admin@example.com", cfg.Admin.Email)
	assert.Equal(t, "123456:ABC-DEF", cfg.Bot.Token)
	assert.Equal(t, "db.example.com", cfg.Database.Host)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, "cookie-signing-key", cfg.Session.Key)
	assert.Equal(t, 4, cfg.Broker.NumberQueues)
	assert.Equal(t, 3, cfg.Game.MinNumberOfParticipants)
	assert.Equal(t, []int{0, 100, 500}, cfg.Game.WheelSectors)
	assert.Equal(t, []int{1, 2, 3}, cfg.Game.SectorWeights)
	assert.Equal(t, 9191, cfg.Metrics.Port)
}

func TestInitializeAppliesDefaults(t *testing.T) {
	// Only the required credentials; everything else comes from defaults.
	minimal := `
admin:
  email: admin@example.com
  password: s3cret
bot:
  token: "123456:ABC-DEF"
database:
  password: dbpass
aiohttp_session:
  key: cookie-signing-key
`
	cfg, err := Initialize(writeConfig(t, minimal))
	require.NoError(t, err)

	defaults := DefaultConfig()
	assert.Equal(t, defaults.Database.Host, cfg.Database.Host)
	assert.Equal(t, defaults.Database.Port, cfg.Database.Port)
	assert.Equal(t, "dbpass", cfg.Database.Password)
	assert.Equal(t, defaults.Broker.NumberQueues, cfg.Broker.NumberQueues)
	assert.Equal(t, defaults.Broker.PrefetchCount, cfg.Broker.PrefetchCount)
	assert.Equal(t, defaults.Game.MinNumberOfParticipants, cfg.Game.MinNumberOfParticipants)
	assert.Equal(t, defaults.Game.WheelSectors, cfg.Game.WheelSectors)
	assert.Empty(t, cfg.Game.SectorWeights)
	assert.Equal(t, defaults.Metrics.Port, cfg.Metrics.Port)
}

func TestInitializeConfigNotFound(t *testing.T) {
	_, err := Initialize(filepath.Join(t.TempDir(), "missing.yaml"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)

	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestInitializeInvalidYAML(t *testing.T) {
	_, err := Initialize(writeConfig(t, "{{{"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestValidate(t *testing.T) {
	base := func(t *testing.T) *Config {
		t.Helper()
		cfg, err := load(writeConfig(t, validYAML))
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "missing bot token", mutate: func(c *Config) { c.Bot.Token = "" }, wantErr: ErrMissingRequiredField},
		{name: "missing admin email", mutate: func(c *Config) { c.Admin.Email = "" }, wantErr: ErrMissingRequiredField},
		{name: "missing admin password", mutate: func(c *Config) { c.Admin.Password = "" }, wantErr: ErrMissingRequiredField},
		{name: "missing session key", mutate: func(c *Config) { c.Session.Key = "" }, wantErr: ErrMissingRequiredField},
		{name: "missing database host", mutate: func(c *Config) { c.Database.Host = "" }, wantErr: ErrMissingRequiredField},
		{name: "bad database port", mutate: func(c *Config) { c.Database.Port = -1 }, wantErr: ErrInvalidValue},
		{name: "missing broker host", mutate: func(c *Config) { c.Broker.Host = "" }, wantErr: ErrMissingRequiredField},
		{name: "zero queues", mutate: func(c *Config) { c.Broker.NumberQueues = 0 }, wantErr: ErrInvalidValue},
		{name: "zero prefetch", mutate: func(c *Config) { c.Broker.PrefetchCount = 0 }, wantErr: ErrInvalidValue},
		{name: "zero min players", mutate: func(c *Config) { c.Game.MinNumberOfParticipants = 0 }, wantErr: ErrInvalidValue},
		{name: "no wheel sectors", mutate: func(c *Config) { c.Game.WheelSectors = nil }, wantErr: ErrMissingRequiredField},
		{name: "negative sector", mutate: func(c *Config) { c.Game.WheelSectors = []int{100, -1} }, wantErr: ErrInvalidValue},
		{name: "weights length mismatch", mutate: func(c *Config) { c.Game.SectorWeights = []int{1} }, wantErr: ErrInvalidValue},
		{name: "negative weight", mutate: func(c *Config) { c.Game.SectorWeights = []int{1, 2, -3} }, wantErr: ErrInvalidValue},
		{name: "zero-sum weights", mutate: func(c *Config) { c.Game.SectorWeights = []int{0, 0, 0} }, wantErr: ErrInvalidValue},
		{name: "bad metrics port", mutate: func(c *Config) { c.Metrics.Port = 70000 }, wantErr: ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base(t)
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.NotEmpty(t, ve.Section)
			assert.NotEmpty(t, ve.Field)
		})
	}
}

func TestResolvePath(t *testing.T) {
	t.Run("production", func(t *testing.T) {
		t.Setenv("ENV", "")
		assert.Equal(t, filepath.Join("etc", "config.yaml"), ResolvePath())
	})

	t.Run("dev", func(t *testing.T) {
		t.Setenv("ENV", "dev")
		assert.Equal(t, filepath.Join("local", "etc", "config.yaml"), ResolvePath())
	})
}
