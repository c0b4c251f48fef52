package wordlist

import (
	"bufio"
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/akarney/hangman/internal/dependencies/random"
	"github.com/akarney/hangman/internal/model"
	"github.com/akarney/hangman/internal/storage"
)

// ErrInvalidEntry is returned when a wordlist entry fails validation
var ErrInvalidEntry = errors.New("invalid wordlist entry")

// Bundled fallback lists, one entry per line
//
//go:embed assets
var defaultLists embed.FS

// defaultListPaths maps each level to its bundled list
var defaultListPaths = map[model.Level]string{
	model.LevelBasic:        "assets/basic.txt",
	model.LevelIntermediate: "assets/intermediate.txt",
}

// Service provides the level-partitioned lists that session secrets are
// drawn from
type Service struct {
	storage storage.Storage
	random  random.Random

	mu    sync.RWMutex
	lists map[model.Level][]string
}

// New creates a new wordlist Service
func New(storage storage.Storage, random random.Random) *Service {
	return &Service{
		storage: storage,
		random:  random,
		lists:   make(map[model.Level][]string),
	}
}

// LoadDefaults installs the bundled wordlists for every level
func (s *Service) LoadDefaults() error {
	for level, path := range defaultListPaths {
		file, err := defaultLists.Open(path)
		if err != nil {
			return err
		}
		entries, err := readEntries(file)
		_ = file.Close()
		if err != nil {
			return err
		}
		if err := s.Load(level, entries); err != nil {
			return fmt.Errorf("default %s list: %w", level, err)
		}
	}
	return nil
}

// LoadFromStorage loads any persisted wordlists. A level absent from
// storage is skipped; Pick reports ErrWordlistNotLoaded when it is used.
func (s *Service) LoadFromStorage(ctx context.Context) error {
	for _, level := range model.Levels() {
		entries, err := s.storage.GetWordlist(ctx, level)
		if errors.Is(err, model.ErrWordlistNotLoaded) {
			continue
		}
		if err != nil {
			return err
		}
		if err := s.Load(level, entries); err != nil {
			return err
		}
	}
	return nil
}

// LoadFromFile loads a level's wordlist from a file (one entry per line)
// and persists it to storage for future runs
func (s *Service) LoadFromFile(ctx context.Context, level model.Level, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	entries, err := readEntries(file)
	if err != nil {
		return err
	}
	if err := s.Load(level, entries); err != nil {
		return err
	}

	// Save to storage for future use
	return s.storage.SaveWordlist(ctx, level, s.Entries(level))
}

// Load validates and installs a level's entries directly.
// Entries are lowercased; any invalid entry rejects the whole list.
func (s *Service) Load(level model.Level, entries []string) error {
	cleaned := make([]string, 0, len(entries))
	for i, raw := range entries {
		entry, err := validateEntry(level, raw)
		if err != nil {
			return fmt.Errorf("entry %d %q: %w", i+1, raw, err)
		}
		cleaned = append(cleaned, entry)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists[level] = cleaned
	return nil
}

// Pick selects a secret uniformly from the level's list
func (s *Service) Pick(level model.Level) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.lists[level]
	if len(entries) == 0 {
		return "", model.ErrWordlistNotLoaded
	}
	return entries[s.random.Intn(len(entries))], nil
}

// Entries returns a copy of the level's list, empty if not loaded
func (s *Service) Entries(level model.Level) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]string, len(s.lists[level]))
	copy(entries, s.lists[level])
	return entries
}

// Count returns the number of entries loaded for the level
func (s *Service) Count(level model.Level) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.lists[level])
}

// IsLoaded returns whether every level has a non-empty list
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, level := range model.Levels() {
		if len(s.lists[level]) == 0 {
			return false
		}
	}
	return true
}

// readEntries parses one entry per line, skipping blanks and # comments
func readEntries(r io.Reader) ([]string, error) {
	var entries []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// validateEntry lowercases an entry and checks it is playable: basic
// entries are a single word of letters, intermediate entries are words of
// letters separated by single spaces.
func validateEntry(level model.Level, raw string) (string, error) {
	entry := strings.ToLower(strings.TrimSpace(raw))
	if entry == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidEntry)
	}

	words := strings.Split(entry, " ")
	if level == model.LevelBasic && len(words) > 1 {
		return "", fmt.Errorf("%w: basic entries must be single words", ErrInvalidEntry)
	}
	for _, word := range words {
		if word == "" {
			return "", fmt.Errorf("%w: words must be separated by single spaces", ErrInvalidEntry)
		}
		for _, r := range word {
			if r < 'a' || r > 'z' {
				return "", fmt.Errorf("%w: character %q is not a letter", ErrInvalidEntry, r)
			}
		}
	}
	return entry, nil
}

// Interface check
type ServiceInterface interface {
	LoadDefaults() error
	LoadFromStorage(ctx context.Context) error
	LoadFromFile(ctx context.Context, level model.Level, path string) error
	Load(level model.Level, entries []string) error
	Pick(level model.Level) (string, error)
	Entries(level model.Level) []string
	Count(level model.Level) int
	IsLoaded() bool
}

var _ ServiceInterface = (*Service)(nil)
