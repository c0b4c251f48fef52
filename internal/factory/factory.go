package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/akarney/hangman/internal/dependencies/clock"
	"github.com/akarney/hangman/internal/dependencies/random"
	"github.com/akarney/hangman/internal/services/hint"
	"github.com/akarney/hangman/internal/services/session"
	"github.com/akarney/hangman/internal/services/wordlist"
	"github.com/akarney/hangman/internal/storage"
	"github.com/akarney/hangman/internal/storage/memory"
	redisstorage "github.com/akarney/hangman/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	WordlistService   *wordlist.Service
	SessionController *session.Controller
	HintService       *hint.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// SessionConfig holds the game rules (optional)
	// If zero value, defaults to session.DefaultConfig()
	SessionConfig session.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	// Use default game rules if not provided
	sessionCfg := cfg.SessionConfig
	if sessionCfg.MaxLives == 0 {
		sessionCfg = session.DefaultConfig()
	}

	return newWithDependencies(store, clk, rnd, sessionCfg, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, sessionCfg session.Config, logger *slog.Logger) *App {
	// Create services
	wordlistService := wordlist.New(store, rnd)
	sessionController := session.NewController(store, wordlistService, clk, rnd, logger, sessionCfg)
	hintService := hint.New(wordlistService, logger)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		WordlistService:   wordlistService,
		SessionController: sessionController,
		HintService:       hintService,
	}
}
