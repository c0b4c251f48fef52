package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/akarney/hangman/internal/api/handler"
	apimiddleware "github.com/akarney/hangman/internal/api/middleware"
	"github.com/akarney/hangman/internal/middleware"
	"github.com/akarney/hangman/internal/services/hint"
	"github.com/akarney/hangman/internal/services/session"
	"github.com/akarney/hangman/internal/services/wordlist"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger            *slog.Logger
	SessionController *session.Controller
	WordlistService   *wordlist.Service
	HintService       *hint.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	sessionHandler := handler.NewSessionHandler(cfg.SessionController, cfg.HintService)
	levelsHandler := handler.NewLevelsHandler(cfg.WordlistService)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(apimiddleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	// Level routes
	api.HandleFunc("/levels", levelsHandler.List).Methods(http.MethodGet)

	// Session routes
	api.HandleFunc("/sessions", sessionHandler.Start).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{session_id}", sessionHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{session_id}", sessionHandler.Discard).Methods(http.MethodDelete)
	api.HandleFunc("/sessions/{session_id}/guesses", sessionHandler.Guess).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{session_id}/timeout", sessionHandler.Timeout).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{session_id}/hint", sessionHandler.Hint).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
