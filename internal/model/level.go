package model

import (
	"fmt"
	"strings"
)

// Level selects which wordlist a session draws its secret from
type Level string

const (
	LevelBasic        Level = "basic"        // Single words
	LevelIntermediate Level = "intermediate" // Multi-word phrases
)

// Levels returns all playable levels in display order
func Levels() []Level {
	return []Level{LevelBasic, LevelIntermediate}
}

// ParseLevel converts user input into a Level
func ParseLevel(raw string) (Level, error) {
	switch Level(strings.ToLower(strings.TrimSpace(raw))) {
	case LevelBasic:
		return LevelBasic, nil
	case LevelIntermediate:
		return LevelIntermediate, nil
	}
	return "", fmt.Errorf("%w: %q", ErrLevelUnknown, raw)
}

// Label returns the level's display name
func (l Level) Label() string {
	switch l {
	case LevelBasic:
		return "Basic Mode"
	case LevelIntermediate:
		return "Intermediate Mode"
	}
	return string(l)
}
