// Package config loads settings for the lost cities binaries from the
// environment, and from a .env file if there is one.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	lostcities "github.com/undeconstructed/lostcities/lost-cities/lib"
)

// Prefix is put in front of every variable name.
const Prefix = "LOSTCITIES_"

type Config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	// Seed fixes the shuffles, 0 means random
	Seed int64 `env:"SEED" envDefault:"0"`

	StateFile   string `env:"STATE_FILE" envDefault:"state-lostcities.json"`
	HistoryFile string `env:"HISTORY_FILE" envDefault:"hist.txt"`

	FuzzGames   int `env:"FUZZ_GAMES" envDefault:"100"`
	FuzzWorkers int `env:"FUZZ_WORKERS" envDefault:"4"`
}

// Load reads .env files, then the environment.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	var c Config
	if err := env.ParseWithOptions(&c, env.Options{Prefix: Prefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if c.FuzzGames < 0 {
		return Config{}, fmt.Errorf("fuzz game count can't be negative, got %d", c.FuzzGames)
	}
	if c.FuzzWorkers < 1 {
		return Config{}, fmt.Errorf("need at least one fuzz worker, got %d", c.FuzzWorkers)
	}
	return c, nil
}

// SetupLogging sets the global logger for a terminal.
func (c Config) SetupLogging() error {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("bad log level: %w", err)
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	return nil
}

// Rand is the shuffling source for a game, seeded from Seed plus an offset so
// that many games can come from one setting. Any fixed Seed reproduces, even
// when the sum comes to zero.
func (c Config) Rand(offset int64) (*rand.Rand, error) {
	if c.Seed == 0 {
		return lostcities.NewRand(0)
	}
	return rand.New(rand.NewSource(c.Seed + offset)), nil
}
