package memory

import (
	"context"
	"sync"

	"github.com/akarney/hangman/internal/model"
	"github.com/akarney/hangman/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	sessions  map[model.SessionID]*model.Session
	wordlists map[model.Level][]string
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		sessions:  make(map[model.SessionID]*model.Session),
		wordlists: make(map[model.Level][]string),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
	return nil
}

func (s *Storage) GetSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return session, nil
}

func (s *Storage) DeleteSession(ctx context.Context, id model.SessionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// Wordlist operations

func (s *Storage) SaveWordlist(ctx context.Context, level model.Level, entries []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]string, len(entries))
	copy(stored, entries)
	s.wordlists[level] = stored
	return nil
}

func (s *Storage) GetWordlist(ctx context.Context, level model.Level) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries, ok := s.wordlists[level]
	if !ok {
		return nil, model.ErrWordlistNotLoaded
	}
	result := make([]string, len(entries))
	copy(result, entries)
	return result, nil
}
