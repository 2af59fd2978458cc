// Package config loads runtime settings from the environment.
//
// A .env file in the working directory is read first (if present); real
// environment variables win over it.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/Jomszxcvb/BootlegHangaroo/internal/words"
)

// Config holds every setting for the game and the leaderboard service.
type Config struct {
	// LogLevel is empty unless set; each command picks its own fallback.
	LogLevel string `env:"LOG_LEVEL"`

	WordsFile  string           `env:"HANGAROO_WORDS_FILE"`
	WordsDir   string           `env:"HANGAROO_WORDS_DIR"`
	Difficulty words.Difficulty `env:"HANGAROO_DIFFICULTY" envDefault:"easy"`
	Daily      bool             `env:"HANGAROO_DAILY" envDefault:"false"`
	DailySalt  string           `env:"HANGAROO_DAILY_SALT" envDefault:"bootleg_hangaroo"`

	LeaderboardDSN    string `env:"LEADERBOARD_DSN" envDefault:"./data/leaderboard.db"`
	LeaderboardURL    string `env:"LEADERBOARD_URL"`
	LeaderboardSecret string `env:"LEADERBOARD_SECRET" envDefault:"dev_secret_change_me"`
	ClientOrigin      string `env:"CLIENT_ORIGIN"`

	Port string `env:"PORT" envDefault:"5175"`
}

// Load reads .env (missing file is fine) and parses the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return Parse()
}

// Parse reads the environment without touching .env.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Level returns the configured zerolog level, or fallback when LOG_LEVEL is
// unset or not a level name.
func (c Config) Level(fallback zerolog.Level) zerolog.Level {
	if c.LogLevel == "" {
		return fallback
	}
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return fallback
	}
	return lvl
}
