package handler

import (
	"net/http"

	"github.com/akarney/hangman/internal/api/response"
	"github.com/akarney/hangman/internal/model"
	"github.com/akarney/hangman/internal/services/wordlist"
)

// LevelsHandler handles level listing endpoints
type LevelsHandler struct {
	wordlistService *wordlist.Service
}

// NewLevelsHandler creates a new levels handler
func NewLevelsHandler(wordlistService *wordlist.Service) *LevelsHandler {
	return &LevelsHandler{wordlistService: wordlistService}
}

// List handles GET /api/v1/levels
func (h *LevelsHandler) List(w http.ResponseWriter, r *http.Request) {
	levels := model.Levels()

	resp := response.LevelsResponse{Levels: make([]response.Level, len(levels))}
	for i, level := range levels {
		resp.Levels[i] = response.Level{
			Name:  string(level),
			Label: level.Label(),
			Words: h.wordlistService.Count(level),
		}
	}

	response.JSON(w, http.StatusOK, resp)
}
