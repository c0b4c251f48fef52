package redis

import (
	"fmt"

	"github.com/akarney/hangman/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "hangman"

// sessionKey returns the Redis key for a Session
func sessionKey(id model.SessionID) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, id)
}

// wordlistKey returns the Redis key for a level's wordlist
func wordlistKey(level model.Level) string {
	return fmt.Sprintf("%s:wordlist:%s", keyPrefix, level)
}
