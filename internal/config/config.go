// Package config loads application settings from the config file and
// environment. Values resolve flag > TENK_* env > config file > default.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all user-tunable settings.
type Config struct {
	// DBPath is the SQLite database file. Empty means the XDG default.
	DBPath string `mapstructure:"db"`

	// Notifications toggles the session announcer.
	Notifications bool `mapstructure:"notifications"`

	// LogFile receives announcer events. Empty means the XDG default.
	LogFile string `mapstructure:"log_file"`
}

// Load reads $XDG_CONFIG_HOME/tenk/config.yaml (or ~/.config/tenk) and the
// TENK_* environment. A missing config file is not an error.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	dir, err := configDir()
	if err != nil {
		return Config{}, err
	}
	v.AddConfigPath(dir)

	v.SetEnvPrefix("TENK")
	v.AutomaticEnv()

	v.SetDefault("db", "")
	v.SetDefault("notifications", true)
	v.SetDefault("log_file", "")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

func configDir() (string, error) {
	if d := os.Getenv("XDG_CONFIG_HOME"); d != "" {
		return filepath.Join(d, "tenk"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".config", "tenk"), nil
}

// DefaultLogPath resolves the announcer log location:
// $XDG_STATE_HOME/tenk/session.log or ~/.local/state/tenk/session.log.
func DefaultLogPath() (string, error) {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "tenk", "session.log"), nil
}
