package hint

import (
	"github.com/akarney/hangman/internal/model"
)

// CandidateStrategy suggests the letter that appears in the most wordlist
// entries still consistent with what the session has revealed. Ties break
// alphabetically so suggestions are deterministic.
type CandidateStrategy struct{}

// NewCandidateStrategy creates a new CandidateStrategy
func NewCandidateStrategy() *CandidateStrategy {
	return &CandidateStrategy{}
}

// Suggest tallies unguessed letters across matching candidates
func (s *CandidateStrategy) Suggest(session *model.Session, candidates []string) (string, bool) {
	counts := make(map[rune]int)
	for _, entry := range candidates {
		if !matches(session, entry) {
			continue
		}
		// Count each letter once per candidate: the tally ranks letters by
		// how many possible secrets they would hit, not by repetition
		seen := make(map[rune]bool)
		for _, r := range entry {
			if r == ' ' || seen[r] || session.HasGuessed(string(r)) {
				continue
			}
			seen[r] = true
			counts[r]++
		}
	}

	best := rune(0)
	bestCount := 0
	for r := 'a'; r <= 'z'; r++ {
		if counts[r] > bestCount {
			best = r
			bestCount = counts[r]
		}
	}
	if bestCount == 0 {
		return "", false
	}
	return string(best), true
}

// matches reports whether a wordlist entry could still be the secret:
// same shape as the display mask, revealed letters in place, and no
// guessed letter hiding behind an underscore (a guessed letter present
// in the secret would already be revealed).
func matches(session *model.Session, entry string) bool {
	mask := []rune(session.DisplayMask())
	runes := []rune(entry)
	if len(runes) != len(mask) {
		return false
	}
	for i, r := range runes {
		if mask[i] == '_' {
			if r == ' ' || session.HasGuessed(string(r)) {
				return false
			}
			continue
		}
		if r != mask[i] {
			return false
		}
	}
	return true
}
