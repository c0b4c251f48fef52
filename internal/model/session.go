package model

import (
	"sort"
	"strings"
	"time"
	"unicode"
)

// SessionID uniquely identifies a game session
type SessionID string

// Outcome represents the resolution state of a session
type Outcome string

const (
	OutcomeInProgress Outcome = "in_progress" // Accepting guesses
	OutcomeWon        Outcome = "won"         // Every letter revealed
	OutcomeLost       Outcome = "lost"        // All lives spent
)

// Session represents a single hangman game
type Session struct {
	ID     SessionID
	Level  Level
	Secret string // Lowercase; words separated by single spaces

	// Guess tracking
	Guessed map[string]bool // Lowercase single letters, only ever grows

	// Lives
	Lives    int
	MaxLives int

	// Timing
	TurnDeadline time.Time // Zero when the turn timer is disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasGuessed reports whether the letter has already been guessed
func (s *Session) HasGuessed(letter string) bool {
	return s.Guessed[letter]
}

// Contains reports whether the secret contains the letter
func (s *Session) Contains(letter string) bool {
	return strings.Contains(s.Secret, letter)
}

// DisplayMask returns the secret with unguessed letters hidden as underscores.
// Spaces are always shown, and every occurrence of a guessed letter is
// revealed at once.
func (s *Session) DisplayMask() string {
	var b strings.Builder
	for _, r := range s.Secret {
		switch {
		case r == ' ':
			b.WriteRune(' ')
		case s.Guessed[string(r)]:
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

// Outcome derives the session's resolution from lives and revealed letters.
// Revelation is checked first: a correct guess never costs a life, so a
// session can never win and lose on the same guess.
func (s *Session) Outcome() Outcome {
	if s.revealed() {
		return OutcomeWon
	}
	if s.Lives <= 0 {
		return OutcomeLost
	}
	return OutcomeInProgress
}

// revealed reports whether every non-space character has been guessed.
// Spaces never count toward the win condition.
func (s *Session) revealed() bool {
	for _, r := range s.Secret {
		if r == ' ' {
			continue
		}
		if !s.Guessed[string(r)] {
			return false
		}
	}
	return true
}

// IsFinished reports whether the session has reached a terminal outcome
func (s *Session) IsFinished() bool {
	return s.Outcome() != OutcomeInProgress
}

// WrongGuessCount returns the number of lives spent so far
func (s *Session) WrongGuessCount() int {
	return s.MaxLives - s.Lives
}

// GuessedLetters returns the guessed letters in alphabetical order
func (s *Session) GuessedLetters() []string {
	letters := make([]string, 0, len(s.Guessed))
	for letter := range s.Guessed {
		letters = append(letters, letter)
	}
	sort.Strings(letters)
	return letters
}

// NormalizeGuess validates a raw guess and returns it as a lowercase letter.
// Surrounding whitespace is ignored; comparison elsewhere is always against
// the lowercase form.
func NormalizeGuess(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	runes := []rune(trimmed)
	if len(runes) != 1 {
		return "", ErrGuessNotSingleLetter
	}
	if !unicode.IsLetter(runes[0]) {
		return "", ErrGuessNotAlphabetic
	}
	return strings.ToLower(trimmed), nil
}

// GuessResult records the effect of a single accepted guess
type GuessResult struct {
	Letter  string
	Correct bool
	Message string

	// Session state after the guess
	Outcome      Outcome
	Lives        int
	DisplayMask  string
	TurnDeadline time.Time
}

// TimeoutResult records the penalty applied for an expired turn timer
type TimeoutResult struct {
	Message string

	// Session state after the penalty
	Outcome      Outcome
	Lives        int
	DisplayMask  string
	TurnDeadline time.Time
}
