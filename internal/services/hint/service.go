package hint

import (
	"context"
	"errors"
	"log/slog"

	"github.com/akarney/hangman/internal/model"
	"github.com/akarney/hangman/internal/services/wordlist"
)

// ErrNoLettersRemaining is returned when every letter has been guessed
var ErrNoLettersRemaining = errors.New("no letters remaining to suggest")

// Service suggests the next letter to guess. It never mutates the session;
// whether to play the suggestion stays the player's call.
type Service struct {
	wordlist   *wordlist.Service
	strategies []Strategy
	logger     *slog.Logger
}

// New creates a new hint Service
func New(wordlistService *wordlist.Service, logger *slog.Logger) *Service {
	return &Service{
		wordlist: wordlistService,
		// Candidate analysis first; frequency order when no wordlist entry
		// matches the revealed state
		strategies: []Strategy{
			NewCandidateStrategy(),
			NewFrequencyStrategy(),
		},
		logger: logger.With(slog.String("component", "hint-service")),
	}
}

// Suggest returns the best next letter for the session
func (s *Service) Suggest(ctx context.Context, session *model.Session) (string, error) {
	if session.IsFinished() {
		return "", model.ErrSessionFinished
	}

	candidates := s.wordlist.Entries(session.Level)

	for _, strategy := range s.strategies {
		if letter, ok := strategy.Suggest(session, candidates); ok {
			return letter, nil
		}
	}
	return "", ErrNoLettersRemaining
}

// Interface for dependency injection
type ServiceInterface interface {
	Suggest(ctx context.Context, session *model.Session) (string, error)
}

var _ ServiceInterface = (*Service)(nil)
