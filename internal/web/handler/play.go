package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/akarney/hangman/internal/model"
	"github.com/akarney/hangman/internal/services/session"
	"github.com/akarney/hangman/internal/web/middleware"
	"github.com/akarney/hangman/internal/web/templates"
)

// PlayHandler handles game pages and actions
type PlayHandler struct {
	sessionController *session.Controller
}

// NewPlayHandler creates a new PlayHandler
func NewPlayHandler(sessionController *session.Controller) *PlayHandler {
	return &PlayHandler{sessionController: sessionController}
}

// Start creates a new session and redirects to its page
func (h *PlayHandler) Start(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, "error", "Invalid form data")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	s, err := h.sessionController.Start(r.Context(), r.FormValue("level"))
	if err != nil {
		middleware.SetFlash(w, "error", startErrorText(err))
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/play/"+string(s.ID), http.StatusSeeOther)
}

// View renders the game page
func (h *PlayHandler) View(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["session_id"])

	s, err := h.sessionController.Get(r.Context(), id)
	if err != nil {
		middleware.SetFlash(w, "error", "Game not found")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	data := templates.PlayData{
		PageData: templates.PageData{
			Title: s.Level.Label(),
			Flash: middleware.GetFlash(r.Context()),
		},
		SessionID:      string(s.ID),
		LevelLabel:     s.Level.Label(),
		DisplayMask:    templates.Spaced(s.DisplayMask()),
		Lives:          s.Lives,
		MaxLives:       s.MaxLives,
		WrongGuesses:   s.WrongGuessCount(),
		GuessedLetters: guessedText(s),
	}

	if s.IsFinished() {
		data.Finished = true
		data.Won = s.Outcome() == model.OutcomeWon
		data.Answer = s.Secret
	} else if !s.TurnDeadline.IsZero() {
		data.TimerEnabled = true
		data.SecondsRemaining = int(h.sessionController.TimeRemaining(s).Seconds())
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Play(w, data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// Guess applies a guess from the form and redirects back to the game page
func (h *PlayHandler) Guess(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["session_id"])

	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, "error", "Invalid form data")
		http.Redirect(w, r, "/play/"+string(id), http.StatusSeeOther)
		return
	}

	result, err := h.sessionController.Guess(r.Context(), id, r.FormValue("letter"))
	if errors.Is(err, model.ErrSessionNotFound) {
		middleware.SetFlash(w, "error", "Game not found")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err != nil {
		middleware.SetFlash(w, "error", guessErrorText(err))
		http.Redirect(w, r, "/play/"+string(id), http.StatusSeeOther)
		return
	}

	if result.Correct {
		middleware.SetFlash(w, "success", result.Message)
	} else {
		middleware.SetFlash(w, "error", result.Message)
	}
	http.Redirect(w, r, "/play/"+string(id), http.StatusSeeOther)
}

// Timeout applies the missed-turn penalty reported by the page's countdown
func (h *PlayHandler) Timeout(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["session_id"])

	result, err := h.sessionController.Timeout(r.Context(), id)
	switch {
	case errors.Is(err, model.ErrSessionNotFound):
		middleware.SetFlash(w, "error", "Game not found")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	case errors.Is(err, model.ErrTimerNotExpired), errors.Is(err, model.ErrSessionFinished):
		// A guess beat the report to it; the page will show the result
		http.Redirect(w, r, "/play/"+string(id), http.StatusSeeOther)
		return
	case err != nil:
		middleware.SetFlash(w, "error", "Could not report timeout")
		http.Redirect(w, r, "/play/"+string(id), http.StatusSeeOther)
		return
	}

	middleware.SetFlash(w, "error", result.Message)
	http.Redirect(w, r, "/play/"+string(id), http.StatusSeeOther)
}

// Again starts a fresh game at the same level and discards the old one
func (h *PlayHandler) Again(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["session_id"])

	old, err := h.sessionController.Get(r.Context(), id)
	if err != nil {
		middleware.SetFlash(w, "error", "Game not found")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	next, err := h.sessionController.Start(r.Context(), string(old.Level))
	if err != nil {
		middleware.SetFlash(w, "error", startErrorText(err))
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	_ = h.sessionController.Discard(r.Context(), id)

	http.Redirect(w, r, "/play/"+string(next.ID), http.StatusSeeOther)
}

func guessedText(s *model.Session) string {
	letters := s.GuessedLetters()
	if len(letters) == 0 {
		return "None"
	}
	return strings.Join(letters, ", ")
}

func startErrorText(err error) string {
	switch {
	case errors.Is(err, model.ErrLevelUnknown):
		return "Please pick a valid level"
	case errors.Is(err, model.ErrWordlistNotLoaded):
		return "No words are loaded for that level yet"
	}
	return "Could not start game"
}

func guessErrorText(err error) string {
	switch {
	case errors.Is(err, model.ErrGuessNotSingleLetter):
		return "Please enter a single letter."
	case errors.Is(err, model.ErrGuessNotAlphabetic):
		return "Please enter a valid letter."
	case errors.Is(err, model.ErrDuplicateGuess):
		return "You have already guessed that letter."
	case errors.Is(err, model.ErrSessionFinished):
		return "The game is already over."
	}
	return "Could not submit guess"
}
