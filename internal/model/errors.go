package model

import "errors"

// Common errors used across the application
var (
	// Session errors
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionFinished = errors.New("session is already finished")

	// Guess validation errors
	ErrGuessNotSingleLetter = errors.New("guess must be a single letter")
	ErrGuessNotAlphabetic   = errors.New("guess must be an alphabetic letter")
	ErrDuplicateGuess       = errors.New("letter has already been guessed")

	// Level errors
	ErrLevelUnknown = errors.New("unknown difficulty level")

	// Timer errors
	ErrTimerNotExpired = errors.New("turn timer has not expired")

	// Wordlist errors
	ErrWordlistNotLoaded = errors.New("wordlist not loaded")
)
