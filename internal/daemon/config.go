// Package daemon manages the Striker daemon lifecycle and configuration.
package daemon

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/strikerhq/striker/internal/domain"
)

// Config holds all daemon configuration.
type Config struct {
	Profile   ProfileConfig   `toml:"profile"`
	API       APIConfig       `toml:"api"`
	Storage   StorageConfig   `toml:"storage"`
	Tracker   TrackerConfig   `toml:"tracker"`
	Telemetry TelemetryConfig `toml:"telemetry"`
}

// ProfileConfig supplies the personalization inputs for the daily
// workout generator. The engine reads these and never writes them.
type ProfileConfig struct {
	Position   string   `toml:"position"`    // "", goalkeeper, defender, midfielder, forward
	Goals      []string `toml:"goals"`       // ordered skill categories
	SkillLevel string   `toml:"skill_level"` // "", beginner, intermediate, advanced
	WeeklyGoal int      `toml:"weekly_goal"` // sessions per week
}

// APIConfig controls the HTTP API server.
type APIConfig struct {
	Host        string   `toml:"host"`
	Port        int      `toml:"port"`
	CORSOrigins []string `toml:"cors_origins"`
}

// StorageConfig controls where state lives.
type StorageConfig struct {
	Dir string `toml:"dir"`
}

// TrackerConfig controls the background app-open time tracker.
type TrackerConfig struct {
	Interval string `toml:"interval"` // e.g. "1m"; "" disables
}

// TelemetryConfig controls observability endpoints.
type TelemetryConfig struct {
	Prometheus bool `toml:"prometheus"`
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() Config {
	return Config{
		Profile: ProfileConfig{
			WeeklyGoal: domain.DefaultWeeklyGoal,
		},
		API: APIConfig{
			Host:        "127.0.0.1",
			Port:        7600,
			CORSOrigins: []string{"*"},
		},
		Storage: StorageConfig{
			Dir: strikerHome(),
		},
		Tracker: TrackerConfig{
			Interval: "1m",
		},
	}
}

// LoadConfig reads config from ~/.striker/config.toml, falling back to
// defaults when the file does not exist.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	path := filepath.Join(strikerHome(), "config.toml")

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil // No config file yet — use defaults
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	if cfg.Profile.WeeklyGoal <= 0 {
		cfg.Profile.WeeklyGoal = domain.DefaultWeeklyGoal
	}
	return cfg, nil
}

// SaveConfig writes the config to ~/.striker/config.toml.
func SaveConfig(cfg Config) error {
	path := filepath.Join(strikerHome(), "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(cfg)
}

// TrackerInterval parses the tracker interval, returning 0 when the
// tracker is disabled.
func (c Config) TrackerInterval() time.Duration {
	if c.Tracker.Interval == "" {
		return 0
	}
	d, err := time.ParseDuration(c.Tracker.Interval)
	if err != nil || d <= 0 {
		return time.Minute
	}
	return d
}

// strikerHome returns the Striker data directory.
func strikerHome() string {
	if env := os.Getenv("STRIKER_HOME"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".striker")
}

// StrikerHome is exported for use by other packages.
func StrikerHome() string {
	return strikerHome()
}
