package hint

import "github.com/akarney/hangman/internal/model"

// Strategy proposes the next letter to guess for a session
type Strategy interface {
	// Suggest returns a letter not yet guessed in the session, or false
	// when the strategy has nothing to offer
	Suggest(session *model.Session, candidates []string) (string, bool)
}
