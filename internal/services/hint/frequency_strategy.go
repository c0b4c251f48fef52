package hint

import "github.com/akarney/hangman/internal/model"

// frequencyOrder lists English letters from most to least common
const frequencyOrder = "etaoinshrdlcumwfgypbvkjxqz"

// FrequencyStrategy walks the English letter-frequency order and suggests
// the first letter the session has not tried. It always has a suggestion
// until all 26 letters are guessed.
type FrequencyStrategy struct{}

// NewFrequencyStrategy creates a new FrequencyStrategy
func NewFrequencyStrategy() *FrequencyStrategy {
	return &FrequencyStrategy{}
}

// Suggest returns the most common English letter not yet guessed
func (s *FrequencyStrategy) Suggest(session *model.Session, _ []string) (string, bool) {
	for _, r := range frequencyOrder {
		letter := string(r)
		if !session.HasGuessed(letter) {
			return letter, true
		}
	}
	return "", false
}
