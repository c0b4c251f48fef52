package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/akarney/hangman/internal/model"
	"github.com/akarney/hangman/internal/services/hint"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeInvalidGuess       = "INVALID_GUESS"
	CodeDuplicateGuess     = "DUPLICATE_GUESS"
	CodeSessionNotFound    = "SESSION_NOT_FOUND"
	CodeSessionFinished    = "SESSION_FINISHED"
	CodeInvalidLevel       = "INVALID_LEVEL"
	CodeTimerNotExpired    = "TIMER_NOT_EXPIRED"
	CodeNoLettersRemaining = "NO_LETTERS_REMAINING"
	CodeWordlistNotLoaded  = "WORDLIST_NOT_LOADED"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrSessionNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeSessionNotFound, "Session not found"}}
	case errors.Is(err, model.ErrSessionFinished):
		return &httpError{http.StatusConflict, APIError{CodeSessionFinished, "The game is already over"}}
	case errors.Is(err, model.ErrGuessNotSingleLetter):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidGuess, "Please enter a single letter."}}
	case errors.Is(err, model.ErrGuessNotAlphabetic):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidGuess, "Please enter a valid letter."}}
	case errors.Is(err, model.ErrDuplicateGuess):
		return &httpError{http.StatusConflict, APIError{CodeDuplicateGuess, "You have already guessed that letter."}}
	case errors.Is(err, model.ErrLevelUnknown):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidLevel, "Level must be basic or intermediate"}}
	case errors.Is(err, model.ErrTimerNotExpired):
		return &httpError{http.StatusConflict, APIError{CodeTimerNotExpired, "The turn timer has not expired"}}
	case errors.Is(err, model.ErrWordlistNotLoaded):
		return &httpError{http.StatusServiceUnavailable, APIError{CodeWordlistNotLoaded, "Wordlist is not loaded"}}

	// Map hint errors
	case errors.Is(err, hint.ErrNoLettersRemaining):
		return &httpError{http.StatusConflict, APIError{CodeNoLettersRemaining, "Every letter has been guessed"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
