package handler

import (
	"net/http"

	"github.com/akarney/hangman/internal/model"
	"github.com/akarney/hangman/internal/services/wordlist"
	"github.com/akarney/hangman/internal/web/middleware"
	"github.com/akarney/hangman/internal/web/templates"
)

// HomeHandler handles the level picker page
type HomeHandler struct {
	wordlistService *wordlist.Service
}

// NewHomeHandler creates a new HomeHandler
func NewHomeHandler(wordlistService *wordlist.Service) *HomeHandler {
	return &HomeHandler{wordlistService: wordlistService}
}

// Home renders the level picker
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	flash := middleware.GetFlash(r.Context())

	levels := make([]templates.LevelOption, 0, len(model.Levels()))
	for _, level := range model.Levels() {
		levels = append(levels, templates.LevelOption{
			Name:  string(level),
			Label: level.Label(),
			Words: h.wordlistService.Count(level),
		})
	}

	data := templates.HomeData{
		PageData: templates.PageData{
			Title: "Home",
			Flash: flash,
		},
		Levels: levels,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Home(w, data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
