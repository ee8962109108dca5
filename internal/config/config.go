// Package config loads dayledger settings from an optional YAML file, a
// .env file and the environment, in that order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/saadjs/dayledger/internal/ledger"
	"github.com/saadjs/dayledger/internal/rollover"
)

const (
	EnvDB               = "DAYLEDGER_DB"
	EnvLogLevel         = "DAYLEDGER_LOG_LEVEL"
	EnvTimezone         = "DAYLEDGER_TIMEZONE"
	EnvLocale           = "DAYLEDGER_LOCALE"
	EnvRolloverInterval = "DAYLEDGER_ROLLOVER_INTERVAL"
	EnvHistoryLimit     = "DAYLEDGER_HISTORY_LIMIT"
)

type Config struct {
	DBPath           string `yaml:"db_path"`
	LogLevel         string `yaml:"log_level"`
	Timezone         string `yaml:"timezone"`
	Locale           string `yaml:"locale"`
	RolloverInterval string `yaml:"rollover_interval"`
	HistoryLimit     int    `yaml:"history_limit"`
}

func Default() Config {
	return Config{
		LogLevel:         "warn",
		RolloverInterval: rollover.DefaultInterval.String(),
		HistoryLimit:     ledger.DefaultHistoryLimit,
	}
}

// Load reads path if it exists. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	_ = godotenv.Load()
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := strings.TrimSpace(os.Getenv(EnvDB)); v != "" {
		c.DBPath = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvTimezone)); v != "" {
		c.Timezone = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLocale)); v != "" {
		c.Locale = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvRolloverInterval)); v != "" {
		c.RolloverInterval = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvHistoryLimit)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvHistoryLimit, v, err)
		}
		c.HistoryLimit = n
	}
	return nil
}

func (c Config) Validate() error {
	if _, err := c.Interval(); err != nil {
		return err
	}
	if c.HistoryLimit <= 0 {
		return fmt.Errorf("history_limit must be > 0")
	}
	return nil
}

func (c Config) Interval() (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(c.RolloverInterval))
	if err != nil {
		return 0, fmt.Errorf("invalid rollover_interval %q: %w", c.RolloverInterval, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("rollover_interval must be > 0")
	}
	return d, nil
}
