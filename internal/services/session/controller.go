package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/akarney/hangman/internal/dependencies/clock"
	"github.com/akarney/hangman/internal/dependencies/random"
	"github.com/akarney/hangman/internal/model"
	"github.com/akarney/hangman/internal/services/wordlist"
	"github.com/akarney/hangman/internal/storage"
)

// Messages surfaced with results, shown verbatim by every client
const (
	MessageCorrect = "Correct guess!"
	MessageWrong   = "Wrong guess! You lost a life."
	MessageTimeout = "Time's up! You lost a life."
)

// idAlphabet is the character set session IDs are minted from
const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Config controls the game rules applied to new sessions
type Config struct {
	// MaxLives is the number of incorrect guesses a session survives
	MaxLives int

	// TurnTimeout is how long a player has to guess before presentation
	// may report a timeout. Zero disables the turn timer.
	TurnTimeout time.Duration
}

// DefaultConfig returns the standard game rules
func DefaultConfig() Config {
	return Config{
		MaxLives:    6,
		TurnTimeout: 15 * time.Second,
	}
}

// Controller manages session lifecycle and guess flow
type Controller struct {
	storage  storage.Storage
	wordlist *wordlist.Service
	clock    clock.Clock
	random   random.Random
	logger   *slog.Logger
	cfg      Config
}

// NewController creates a new session Controller
func NewController(
	storage storage.Storage,
	wordlistService *wordlist.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
	cfg Config,
) *Controller {
	return &Controller{
		storage:  storage,
		wordlist: wordlistService,
		clock:    clock,
		random:   random,
		logger:   logger,
		cfg:      cfg,
	}
}

// Start creates a session at the given level with a freshly picked secret
func (c *Controller) Start(ctx context.Context, rawLevel string) (*model.Session, error) {
	level, err := model.ParseLevel(rawLevel)
	if err != nil {
		return nil, err
	}

	secret, err := c.wordlist.Pick(level)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	session := &model.Session{
		ID:        model.SessionID(c.random.String(12, idAlphabet)),
		Level:     level,
		Secret:    secret,
		Guessed:   make(map[string]bool),
		Lives:     c.cfg.MaxLives,
		MaxLives:  c.cfg.MaxLives,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if c.cfg.TurnTimeout > 0 {
		session.TurnDeadline = now.Add(c.cfg.TurnTimeout)
	}

	if err := c.storage.SaveSession(ctx, session); err != nil {
		c.logger.Error("failed to save session",
			slog.String("session_id", string(session.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	// The secret itself stays out of the logs
	c.logger.Info("session started",
		slog.String("session_id", string(session.ID)),
		slog.String("level", string(level)),
		slog.Int("secret_length", len(secret)),
		slog.Int("lives", session.Lives),
	)

	return session, nil
}

// Get retrieves a session by ID
func (c *Controller) Get(ctx context.Context, id model.SessionID) (*model.Session, error) {
	return c.storage.GetSession(ctx, id)
}

// Guess applies a single-letter guess to the session.
// Checks run in order: the session must still be in progress, the input
// must normalize to one alphabetic letter, and the letter must not have
// been guessed before. A rejected guess never changes state and never
// costs a life.
func (c *Controller) Guess(ctx context.Context, id model.SessionID, raw string) (*model.GuessResult, error) {
	session, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	if session.IsFinished() {
		return nil, model.ErrSessionFinished
	}

	letter, err := model.NormalizeGuess(raw)
	if err != nil {
		return nil, err
	}

	if session.HasGuessed(letter) {
		return nil, fmt.Errorf("%w: %q", model.ErrDuplicateGuess, letter)
	}

	session.Guessed[letter] = true
	correct := session.Contains(letter)
	if !correct {
		session.Lives--
	}

	// Every accepted guess starts a fresh turn timer
	now := c.clock.Now()
	if c.cfg.TurnTimeout > 0 {
		session.TurnDeadline = now.Add(c.cfg.TurnTimeout)
	}
	session.UpdatedAt = now

	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	result := &model.GuessResult{
		Letter:       letter,
		Correct:      correct,
		Message:      MessageWrong,
		Outcome:      session.Outcome(),
		Lives:        session.Lives,
		DisplayMask:  session.DisplayMask(),
		TurnDeadline: session.TurnDeadline,
	}
	if correct {
		result.Message = MessageCorrect
	}

	if result.Outcome != model.OutcomeInProgress {
		c.logger.Info("session finished",
			slog.String("session_id", string(session.ID)),
			slog.String("outcome", string(result.Outcome)),
			slog.Int("lives", session.Lives),
			slog.Int("guesses", len(session.Guessed)),
		)
	}

	return result, nil
}

// Timeout applies the missed-turn penalty: one life lost, no letter
// consumed. The deadline guard keeps stale reports harmless: every
// accepted guess or timeout pushes the deadline forward, so a second
// report for the same turn fails with ErrTimerNotExpired.
func (c *Controller) Timeout(ctx context.Context, id model.SessionID) (*model.TimeoutResult, error) {
	session, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	if session.IsFinished() {
		return nil, model.ErrSessionFinished
	}
	if session.TurnDeadline.IsZero() {
		return nil, model.ErrTimerNotExpired
	}

	now := c.clock.Now()
	if now.Before(session.TurnDeadline) {
		return nil, model.ErrTimerNotExpired
	}

	session.Lives--
	session.TurnDeadline = now.Add(c.cfg.TurnTimeout)
	session.UpdatedAt = now

	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	c.logger.Info("turn timed out",
		slog.String("session_id", string(session.ID)),
		slog.Int("lives", session.Lives),
	)

	return &model.TimeoutResult{
		Message:      MessageTimeout,
		Outcome:      session.Outcome(),
		Lives:        session.Lives,
		DisplayMask:  session.DisplayMask(),
		TurnDeadline: session.TurnDeadline,
	}, nil
}

// TimeRemaining returns the time left on the session's turn timer, floored
// at zero. Sessions without a deadline report zero.
func (c *Controller) TimeRemaining(session *model.Session) time.Duration {
	if session.TurnDeadline.IsZero() {
		return 0
	}
	remaining := session.TurnDeadline.Sub(c.clock.Now())
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Discard removes a session. Discarding an unknown session is not an error.
func (c *Controller) Discard(ctx context.Context, id model.SessionID) error {
	if err := c.storage.DeleteSession(ctx, id); err != nil {
		return err
	}

	c.logger.Info("session discarded",
		slog.String("session_id", string(id)),
	)
	return nil
}

// Interface for dependency injection
type ControllerInterface interface {
	Start(ctx context.Context, rawLevel string) (*model.Session, error)
	Get(ctx context.Context, id model.SessionID) (*model.Session, error)
	Guess(ctx context.Context, id model.SessionID, raw string) (*model.GuessResult, error)
	Timeout(ctx context.Context, id model.SessionID) (*model.TimeoutResult, error)
	TimeRemaining(session *model.Session) time.Duration
	Discard(ctx context.Context, id model.SessionID) error
}

var _ ControllerInterface = (*Controller)(nil)
