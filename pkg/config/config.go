// Package config loads and validates the YAML configuration shared by the
// poller, the queue workers and the admin panel. All three binaries read the
// same file, so one process failing validation means they all would.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// Config is the umbrella configuration object returned by Initialize and
// passed to the components that need each section.
type Config struct {
	Admin    AdminConfig    `yaml:"admin"`
	Bot      BotConfig      `yaml:"bot"`
	Database DatabaseConfig `yaml:"database"`
	Broker   BrokerConfig   `yaml:"broker"`
	Game     GameConfig     `yaml:"game"`
	Metrics  MetricsConfig  `yaml:"metrics"`

	// Session is the admin-panel cookie section. The YAML key predates
	// this codebase and is part of the deployed config-file contract.
	Session SessionConfig `yaml:"aiohttp_session"`
}

// AdminConfig seeds the base admin-panel account at startup.
type AdminConfig struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

// BotConfig carries the chat-platform credentials.
type BotConfig struct {
	Token string `yaml:"token"`
}

// DatabaseConfig is the PostgreSQL connection section.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"sslmode"`
}

// SessionConfig holds the key the admin panel signs session cookies with.
type SessionConfig struct {
	Key string `yaml:"key"`
}

// BrokerConfig is the AMQP section. NumberQueues fixes the shard count; it
// must match between the poller and the worker fleet or chats end up on
// queues nobody consumes.
type BrokerConfig struct {
	Host          string `yaml:"host"`
	Port          int    `yaml:"port"`
	User          string `yaml:"user"`
	Password      string `yaml:"password"`
	NumberQueues  int    `yaml:"number_queues"`
	PrefetchCount int    `yaml:"prefetch_count"`
}

// GameConfig carries the game-rule tunables.
type GameConfig struct {
	MinNumberOfParticipants int   `yaml:"min_number_of_participants"`
	WheelSectors            []int `yaml:"wheel_sectors"`
	SectorWeights           []int `yaml:"sector_weights"`
}

// MetricsConfig is the Prometheus exposition section.
type MetricsConfig struct {
	Port int `yaml:"port"`
}

// DefaultConfig returns the built-in defaults. Credentials have no
// defaults; validation rejects a config that never set them.
func DefaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Database: "project",
			SSLMode:  "disable",
		},
		Broker: BrokerConfig{
			Host:          "localhost",
			Port:          5672,
			User:          "guest",
			Password:      "guest",
			NumberQueues:  2,
			PrefetchCount: 1,
		},
		Game: GameConfig{
			MinNumberOfParticipants: 2,
			WheelSectors:            []int{0, 100, 250, 350, 400, 450, 500, 600, 750, 1000},
		},
		Metrics: MetricsConfig{
			Port: 9090,
		},
	}
}

// ResolvePath returns the config file path for the current environment:
// local/etc/config.yaml when ENV=dev, etc/config.yaml otherwise.
func ResolvePath() string {
	if os.Getenv("ENV") == "dev" {
		return filepath.Join("local", "etc", "config.yaml")
	}
	return filepath.Join("etc", "config.yaml")
}

// Initialize loads, merges with defaults, validates, and returns
// ready-to-use configuration. This is the entry point every binary calls.
func Initialize(path string) (*Config, error) {
	log := slog.With("config_path", path)
	log.Info("Initializing configuration")

	cfg, err := load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized successfully",
		"queues", cfg.Broker.NumberQueues,
		"min_players", cfg.Game.MinNumberOfParticipants,
		"wheel_sectors", len(cfg.Game.WheelSectors))

	return cfg, nil
}

// load reads the YAML file and merges it over the defaults, so values the
// file does not set keep their built-in values.
func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewLoadError(path, fmt.Errorf("%w: %s", ErrConfigNotFound, path))
		}
		return nil, NewLoadError(path, err)
	}

	fileCfg := &Config{}
	if err := yaml.Unmarshal(data, fileCfg); err != nil {
		return nil, NewLoadError(path, fmt.Errorf("%w: %v", ErrInvalidYAML, err))
	}

	// Start with defaults, then merge user config on top to preserve
	// unset defaults.
	cfg := DefaultConfig()
	if err := mergo.Merge(cfg, fileCfg, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("failed to merge configuration: %w", err)
	}

	return cfg, nil
}

// Validate performs comprehensive validation (fail-fast, stops at the first
// error).
func (c *Config) Validate() error {
	if c.Bot.Token == "" {
		return NewValidationError("bot", "token", ErrMissingRequiredField)
	}
	if c.Admin.Email == "" {
		return NewValidationError("admin", "email", ErrMissingRequiredField)
	}
	if c.Admin.Password == "" {
		return NewValidationError("admin", "password", ErrMissingRequiredField)
	}
	if c.Session.Key == "" {
		return NewValidationError("aiohttp_session", "key", ErrMissingRequiredField)
	}

	if err := c.validateDatabase(); err != nil {
		return err
	}
	if err := c.validateBroker(); err != nil {
		return err
	}
	if err := c.validateGame(); err != nil {
		return err
	}

	if c.Metrics.Port <= 0 || c.Metrics.Port > 65535 {
		return NewValidationError("metrics", "port",
			fmt.Errorf("%w: %d", ErrInvalidValue, c.Metrics.Port))
	}

	return nil
}

func (c *Config) validateDatabase() error {
	if c.Database.Host == "" {
		return NewValidationError("database", "host", ErrMissingRequiredField)
	}
	if c.Database.Port <= 0 || c.Database.Port > 65535 {
		return NewValidationError("database", "port",
			fmt.Errorf("%w: %d", ErrInvalidValue, c.Database.Port))
	}
	if c.Database.User == "" {
		return NewValidationError("database", "user", ErrMissingRequiredField)
	}
	if c.Database.Database == "" {
		return NewValidationError("database", "database", ErrMissingRequiredField)
	}
	return nil
}

func (c *Config) validateBroker() error {
	if c.Broker.Host == "" {
		return NewValidationError("broker", "host", ErrMissingRequiredField)
	}
	if c.Broker.Port <= 0 || c.Broker.Port > 65535 {
		return NewValidationError("broker", "port",
			fmt.Errorf("%w: %d", ErrInvalidValue, c.Broker.Port))
	}
	if c.Broker.User == "" {
		return NewValidationError("broker", "user", ErrMissingRequiredField)
	}
	if c.Broker.NumberQueues < 1 {
		return NewValidationError("broker", "number_queues",
			fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	if c.Broker.PrefetchCount < 1 {
		return NewValidationError("broker", "prefetch_count",
			fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	return nil
}

func (c *Config) validateGame() error {
	if c.Game.MinNumberOfParticipants < 1 {
		return NewValidationError("game", "min_number_of_participants",
			fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	if len(c.Game.WheelSectors) == 0 {
		return NewValidationError("game", "wheel_sectors", ErrMissingRequiredField)
	}
	for _, s := range c.Game.WheelSectors {
		if s < 0 {
			return NewValidationError("game", "wheel_sectors",
				fmt.Errorf("%w: sector %d is negative", ErrInvalidValue, s))
		}
	}

	// Weights are optional; absent means a uniform wheel.
	if len(c.Game.SectorWeights) == 0 {
		return nil
	}
	if len(c.Game.SectorWeights) != len(c.Game.WheelSectors) {
		return NewValidationError("game", "sector_weights",
			fmt.Errorf("%w: %d weights for %d sectors",
				ErrInvalidValue, len(c.Game.SectorWeights), len(c.Game.WheelSectors)))
	}
	total := 0
	for _, w := range c.Game.SectorWeights {
		if w < 0 {
			return NewValidationError("game", "sector_weights",
				fmt.Errorf("%w: weight %d is negative", ErrInvalidValue, w))
		}
		total += w
	}
	if total == 0 {
		return NewValidationError("game", "sector_weights",
			fmt.Errorf("%w: weights sum to zero", ErrInvalidValue))
	}
	return nil
}
