package templates

import (
	"embed"
	"html/template"
	"io"
	"strings"
)

//go:embed *.html
var templateFS embed.FS

// Each page shares the base layout, so base.html is parsed into every
// page's template set
var (
	homeTemplate = template.Must(template.ParseFS(templateFS, "base.html", "home.html"))
	playTemplate = template.Must(template.ParseFS(templateFS, "base.html", "play.html"))
)

// FlashMessage is a one-shot notification shown at the top of a page
type FlashMessage struct {
	Type    string // "success", "error" or "info"
	Message string
}

// PageData holds the fields shared by every page
type PageData struct {
	Title string
	Flash *FlashMessage
}

// LevelOption describes one playable level on the picker
type LevelOption struct {
	Name  string
	Label string
	Words int
}

// HomeData is the data for the level picker page
type HomeData struct {
	PageData
	Levels []LevelOption
}

// PlayData is the data for the game page
type PlayData struct {
	PageData
	SessionID      string
	LevelLabel     string
	DisplayMask    string
	Lives          int
	MaxLives       int
	WrongGuesses   int
	GuessedLetters string

	// Turn timer; TimerEnabled is false when the countdown is off
	TimerEnabled     bool
	SecondsRemaining int

	// Terminal state; Answer is set only once the game is over
	Finished bool
	Won      bool
	Answer   string
}

// Home renders the level picker page
func Home(w io.Writer, data HomeData) error {
	return homeTemplate.ExecuteTemplate(w, "base", data)
}

// Play renders the game page
func Play(w io.Writer, data PlayData) error {
	return playTemplate.ExecuteTemplate(w, "base", data)
}

// Spaced separates every character of a mask with single spaces, so word
// boundaries show up as a wider gap
func Spaced(mask string) string {
	return strings.Join(strings.Split(mask, ""), " ")
}
