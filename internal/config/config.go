package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/skirmish/internal/game/combat"
)

// Simulator holds all configuration for the battle runner.
type Simulator struct {
	LogLevel string `yaml:"log_level"` // debug, info, warn, error

	// Battle
	ScenarioPath         string               `yaml:"scenario_path"`
	Rounds               int                  `yaml:"rounds"`
	Strategy             combat.FocusStrategy `yaml:"strategy"`
	Seed                 uint64               `yaml:"seed"` // 0 = derive from clock
	RestoreManaEachRound bool                 `yaml:"restore_mana_each_round"`
	CompareStrategies    bool                 `yaml:"compare_strategies"`
	ShowLog              bool                 `yaml:"show_log"` // per-event narration at debug level

	// Battle archive
	Database DatabaseConfig `yaml:"database"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultSimulator returns Simulator config with sensible defaults.
func DefaultSimulator() Simulator {
	return Simulator{
		LogLevel:     "info",
		ScenarioPath: "config/scenario.yaml",
		Rounds:       100,
		Strategy:     combat.StrategyLowestHP,
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "skirmish",
			Password: "skirmish",
			DBName:   "skirmish",
			SSLMode:  "disable",
		},
	}
}

var ErrInvalidConfig = errors.New("invalid config")

// Validate checks values the runner cannot start with.
func (s Simulator) Validate() error {
	if s.Rounds <= 0 {
		return fmt.Errorf("%w: rounds must be positive, got %d", ErrInvalidConfig, s.Rounds)
	}
	if !s.Strategy.Valid() {
		return fmt.Errorf("%w: unknown strategy %d", ErrInvalidConfig, int32(s.Strategy))
	}
	if s.ScenarioPath == "" {
		return fmt.Errorf("%w: scenario_path is empty", ErrInvalidConfig)
	}
	switch s.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log_level %q", ErrInvalidConfig, s.LogLevel)
	}
	return nil
}

// LoadSimulator loads runner config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadSimulator(path string) (Simulator, error) {
	cfg := DefaultSimulator()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}
