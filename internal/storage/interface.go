package storage

import (
	"context"

	"github.com/akarney/hangman/internal/model"
)

// Storage defines the interface for session and wordlist persistence
type Storage interface {
	// Session operations
	SaveSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, id model.SessionID) (*model.Session, error)
	DeleteSession(ctx context.Context, id model.SessionID) error

	// Wordlist operations
	SaveWordlist(ctx context.Context, level model.Level, entries []string) error
	GetWordlist(ctx context.Context, level model.Level) ([]string, error)
}
