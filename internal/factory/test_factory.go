package factory

import (
	"io"
	"log/slog"
	"time"

	"github.com/akarney/hangman/internal/dependencies/mocks"
	"github.com/akarney/hangman/internal/model"
	"github.com/akarney/hangman/internal/services/session"
	"github.com/akarney/hangman/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	app := newWithDependencies(store, mockClock, mockRandom, session.DefaultConfig(), logger)

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// LoadTestWordlists loads small fixed wordlists for testing
func (t *TestApp) LoadTestWordlists() error {
	basic := []string{"python", "cat", "bridge"}
	intermediate := []string{"data science", "hello world"}

	if err := t.WordlistService.Load(model.LevelBasic, basic); err != nil {
		return err
	}
	return t.WordlistService.Load(model.LevelIntermediate, intermediate)
}
