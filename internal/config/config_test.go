package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akarney/hangman/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.StorageType)
	assert.Equal(t, 6, cfg.Game.MaxLives)
	assert.Equal(t, 15*time.Second, cfg.Game.TurnTimeout)
	assert.Empty(t, cfg.WordlistDir)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("PORT", "9090")
	t.Setenv("STORAGE_TYPE", "redis")
	t.Setenv("REDIS_URL", "redis://example:6379")
	t.Setenv("MAX_LIVES", "3")
	t.Setenv("TURN_TIMEOUT", "30s")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "redis", cfg.StorageType)
	assert.Equal(t, "redis://example:6379", cfg.Redis.URL)
	assert.Equal(t, 3, cfg.Game.MaxLives)
	assert.Equal(t, 30*time.Second, cfg.Game.TurnTimeout)
}

func TestLoadFromFile(t *testing.T) {
	content := `log-level: warn
port: 3000
storage-type: redis
redis:
  url: redis://localhost:6400
game:
  max-lives: 8
  turn-timeout: 20s
wordlist-dir: /var/lib/hangman/words
`
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "redis", cfg.StorageType)
	assert.Equal(t, "redis://localhost:6400", cfg.Redis.URL)
	assert.Equal(t, 8, cfg.Game.MaxLives)
	assert.Equal(t, 20*time.Second, cfg.Game.TurnTimeout)
	assert.Equal(t, "/var/lib/hangman/words", cfg.WordlistDir)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}
