// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/jason-s-yu/goofspiel/internal/game"
	"github.com/joho/godotenv"
)

// Config holds everything the command reads from the environment.
//
//   - GOOFSPIEL_SEED (default 0, meaning seed from the clock)
//   - GOOFSPIEL_ALLOW_PASS (default false)
//   - GOOFSPIEL_STRATEGY ("random" or "sequential", default "random")
//   - GOOFSPIEL_LOG_LEVEL (default "warn")
//   - GOOFSPIEL_GAMES (default 0, meaning play until input ends)
//   - GOOFSPIEL_PLAYER_NAME (default "Player")
type Config struct {
	Seed       int64
	Rules      game.HouseRules
	LogLevel   string
	Games      int
	PlayerName string
}

// Load reads an optional .env file in the working directory, then the environment.
func Load() (Config, error) {
	return LoadFile(".env")
}

// LoadFile is Load with an explicit dotenv path. A missing file is not an error.
// Variables already set in the environment take precedence over the file.
func LoadFile(path string) (Config, error) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment alone.
func FromEnv() (Config, error) {
	rules := game.DefaultHouseRules()
	rules.AllowPass = getEnvBool("GOOFSPIEL_ALLOW_PASS", rules.AllowPass)

	if s := os.Getenv("GOOFSPIEL_STRATEGY"); s != "" {
		strategy, err := game.ParseStrategy(s)
		if err != nil {
			return Config{}, fmt.Errorf("GOOFSPIEL_STRATEGY: %w", err)
		}
		rules.AutomatedStrategy = strategy
	}

	return Config{
		Seed:       getEnvInt64("GOOFSPIEL_SEED", 0),
		Rules:      rules,
		LogLevel:   getEnv("GOOFSPIEL_LOG_LEVEL", "warn"),
		Games:      getEnvInt("GOOFSPIEL_GAMES", 0),
		PlayerName: getEnv("GOOFSPIEL_PLAYER_NAME", "Player"),
	}, nil
}

// getEnv is a helper to read an environment variable or return a default value.
func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

// getEnvInt is a helper to parse an environment variable as integer, else a default value.
func getEnvInt(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

func getEnvInt64(key string, def int64) int64 {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return def
	}
	return v
}

func getEnvBool(key string, def bool) bool {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return def
	}
	return v
}
