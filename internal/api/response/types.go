package response

import (
	"time"

	"github.com/akarney/hangman/internal/model"
)

// Level describes a playable difficulty level
type Level struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Words int    `json:"words"`
}

// LevelsResponse lists the available levels
type LevelsResponse struct {
	Levels []Level `json:"levels"`
}

// Session represents a game session in API responses
type Session struct {
	SessionID      string   `json:"session_id"`
	Level          string   `json:"level"`
	DisplayMask    string   `json:"display_mask"`
	Lives          int      `json:"lives"`
	MaxLives       int      `json:"max_lives"`
	WrongGuesses   int      `json:"wrong_guesses"`
	GuessedLetters []string `json:"guessed_letters"`
	Outcome        string   `json:"outcome"`

	// SecondsRemaining is nil when the turn timer is disabled
	SecondsRemaining *int      `json:"seconds_remaining"`
	CreatedAt        time.Time `json:"created_at"`

	// Answer is included only once the session is finished
	Answer string `json:"answer,omitempty"`
}

// SessionFromModel converts a model.Session to a response Session.
// remaining is the time left on the turn timer per the server clock.
func SessionFromModel(s *model.Session, remaining time.Duration) Session {
	resp := Session{
		SessionID:      string(s.ID),
		Level:          string(s.Level),
		DisplayMask:    s.DisplayMask(),
		Lives:          s.Lives,
		MaxLives:       s.MaxLives,
		WrongGuesses:   s.WrongGuessCount(),
		GuessedLetters: s.GuessedLetters(),
		Outcome:        string(s.Outcome()),
		CreatedAt:      s.CreatedAt,
	}

	if !s.TurnDeadline.IsZero() {
		seconds := int(remaining.Seconds())
		resp.SecondsRemaining = &seconds
	}

	// The secret leaves the server only when the game is over
	if s.IsFinished() {
		resp.Answer = s.Secret
	}

	return resp
}

// GuessResponse is the response after submitting a guess
type GuessResponse struct {
	Letter  string  `json:"letter"`
	Correct bool    `json:"correct"`
	Message string  `json:"message"`
	Session Session `json:"session"`
}

// TimeoutResponse is the response after reporting an expired turn timer
type TimeoutResponse struct {
	Message string  `json:"message"`
	Session Session `json:"session"`
}

// HintResponse is the response for a hint request
type HintResponse struct {
	Letter string `json:"letter"`
}
