package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jason-s-yu/goofspiel/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"GOOFSPIEL_SEED",
	"GOOFSPIEL_ALLOW_PASS",
	"GOOFSPIEL_STRATEGY",
	"GOOFSPIEL_LOG_LEVEL",
	"GOOFSPIEL_GAMES",
	"GOOFSPIEL_PLAYER_NAME",
}

// clearEnv blanks every config variable for the test and restores them afterwards.
func clearEnv(t *testing.T) {
	for _, k := range configKeys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.Equal(t, game.DefaultHouseRules(), cfg.Rules)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 0, cfg.Games)
	assert.Equal(t, "Player", cfg.PlayerName)
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOOFSPIEL_SEED", "42")
	t.Setenv("GOOFSPIEL_ALLOW_PASS", "true")
	t.Setenv("GOOFSPIEL_STRATEGY", "Sequential")
	t.Setenv("GOOFSPIEL_LOG_LEVEL", "debug")
	t.Setenv("GOOFSPIEL_GAMES", "3")
	t.Setenv("GOOFSPIEL_PLAYER_NAME", "Ada")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.True(t, cfg.Rules.AllowPass)
	assert.Equal(t, game.StrategySequentialShuffledDraw, cfg.Rules.AutomatedStrategy)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 3, cfg.Games)
	assert.Equal(t, "Ada", cfg.PlayerName)
}

func TestFromEnvIgnoresMalformedNumbers(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOOFSPIEL_SEED", "abc")
	t.Setenv("GOOFSPIEL_GAMES", "many")
	t.Setenv("GOOFSPIEL_ALLOW_PASS", "perhaps")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.Equal(t, 0, cfg.Games)
	assert.False(t, cfg.Rules.AllowPass)
}

func TestFromEnvRejectsUnknownStrategy(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOOFSPIEL_STRATEGY", "psychic")

	_, err := FromEnv()
	assert.ErrorIs(t, err, game.ErrUnknownStrategy)
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("GOOFSPIEL_SEED=7\nGOOFSPIEL_PLAYER_NAME=Grace\n"), 0o600))
	t.Setenv("GOOFSPIEL_PLAYER_NAME", "Linus")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, "Linus", cfg.PlayerName, "the environment wins over the file")
}

func TestLoadFileMissing(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.env"))
	require.NoError(t, err)
	assert.Equal(t, "Player", cfg.PlayerName)
}
