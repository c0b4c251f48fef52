package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/akarney/hangman/internal/services/session"
	"github.com/akarney/hangman/internal/services/wordlist"
	"github.com/akarney/hangman/internal/web/handler"
	"github.com/akarney/hangman/internal/web/middleware"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger            *slog.Logger
	SessionController *session.Controller
	WordlistService   *wordlist.Service
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Apply global middleware to all routes
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))
	r.Use(middleware.Flash())

	// Create handlers
	homeHandler := handler.NewHomeHandler(cfg.WordlistService)
	playHandler := handler.NewPlayHandler(cfg.SessionController)

	r.HandleFunc("/", homeHandler.Home).Methods(http.MethodGet)

	// Game routes
	r.HandleFunc("/play", playHandler.Start).Methods(http.MethodPost)
	r.HandleFunc("/play/{session_id}", playHandler.View).Methods(http.MethodGet)
	r.HandleFunc("/play/{session_id}/guess", playHandler.Guess).Methods(http.MethodPost)
	r.HandleFunc("/play/{session_id}/timeout", playHandler.Timeout).Methods(http.MethodPost)
	r.HandleFunc("/play/{session_id}/again", playHandler.Again).Methods(http.MethodPost)

	return r
}
