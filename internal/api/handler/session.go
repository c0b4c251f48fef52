package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/akarney/hangman/internal/api/request"
	"github.com/akarney/hangman/internal/api/response"
	"github.com/akarney/hangman/internal/model"
	"github.com/akarney/hangman/internal/services/hint"
	"github.com/akarney/hangman/internal/services/session"
)

// SessionHandler handles game session endpoints
type SessionHandler struct {
	sessionController *session.Controller
	hintService       *hint.Service
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionController *session.Controller, hintService *hint.Service) *SessionHandler {
	return &SessionHandler{
		sessionController: sessionController,
		hintService:       hintService,
	}
}

// Start handles POST /api/v1/sessions
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req request.StartSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	s, err := h.sessionController.Start(r.Context(), req.Level)
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.SessionFromModel(s, h.sessionController.TimeRemaining(s))
	response.JSON(w, http.StatusCreated, resp)
}

// Get handles GET /api/v1/sessions/{session_id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["session_id"])

	s, err := h.sessionController.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.SessionFromModel(s, h.sessionController.TimeRemaining(s))
	response.JSON(w, http.StatusOK, resp)
}

// Guess handles POST /api/v1/sessions/{session_id}/guesses
func (h *SessionHandler) Guess(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["session_id"])

	var req request.GuessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	result, err := h.sessionController.Guess(r.Context(), id, req.Letter)
	if err != nil {
		WriteError(w, err)
		return
	}

	s, err := h.sessionController.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.GuessResponse{
		Letter:  result.Letter,
		Correct: result.Correct,
		Message: result.Message,
		Session: response.SessionFromModel(s, h.sessionController.TimeRemaining(s)),
	}
	response.JSON(w, http.StatusOK, resp)
}

// Timeout handles POST /api/v1/sessions/{session_id}/timeout
func (h *SessionHandler) Timeout(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["session_id"])

	result, err := h.sessionController.Timeout(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	s, err := h.sessionController.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.TimeoutResponse{
		Message: result.Message,
		Session: response.SessionFromModel(s, h.sessionController.TimeRemaining(s)),
	}
	response.JSON(w, http.StatusOK, resp)
}

// Hint handles GET /api/v1/sessions/{session_id}/hint
func (h *SessionHandler) Hint(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["session_id"])

	s, err := h.sessionController.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	letter, err := h.hintService.Suggest(r.Context(), s)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.HintResponse{Letter: letter})
}

// Discard handles DELETE /api/v1/sessions/{session_id}
func (h *SessionHandler) Discard(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["session_id"])

	if err := h.sessionController.Discard(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
