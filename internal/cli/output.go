package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case LevelsResult:
		o.printLevels(v)
	case Session:
		o.printSession(v)
	case GuessResult:
		o.printGuessResult(v)
	case TimeoutResult:
		o.printTimeoutResult(v)
	case HintResult:
		o.printHintResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Level response type (matches API)
type Level struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Words int    `json:"words"`
}

// LevelsResult lists the available levels
type LevelsResult struct {
	Levels []Level `json:"levels"`
}

// Session response type
type Session struct {
	SessionID        string    `json:"session_id"`
	Level            string    `json:"level"`
	DisplayMask      string    `json:"display_mask"`
	Lives            int       `json:"lives"`
	MaxLives         int       `json:"max_lives"`
	WrongGuesses     int       `json:"wrong_guesses"`
	GuessedLetters   []string  `json:"guessed_letters"`
	Outcome          string    `json:"outcome"`
	SecondsRemaining *int      `json:"seconds_remaining"`
	CreatedAt        time.Time `json:"created_at"`
	Answer           string    `json:"answer,omitempty"`
}

// GuessResult response type
type GuessResult struct {
	Letter  string  `json:"letter"`
	Correct bool    `json:"correct"`
	Message string  `json:"message"`
	Session Session `json:"session"`
}

// TimeoutResult response type
type TimeoutResult struct {
	Message string  `json:"message"`
	Session Session `json:"session"`
}

// HintResult response type
type HintResult struct {
	Letter string `json:"letter"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printLevels(l LevelsResult) {
	fmt.Printf("Levels (%d):\n", len(l.Levels))
	for _, lvl := range l.Levels {
		fmt.Printf("  - %s: %s (%d words)\n", lvl.Name, lvl.Label, lvl.Words)
	}
}

func (o *Output) printSession(s Session) {
	fmt.Printf("Session: %s\n", s.SessionID)
	fmt.Printf("Level: %s\n", s.Level)
	fmt.Printf("Word: %s\n", spacedMask(s.DisplayMask))
	fmt.Printf("Lives: %d/%d (wrong guesses: %d)\n", s.Lives, s.MaxLives, s.WrongGuesses)
	fmt.Printf("Guessed letters: %s\n", guessedLetters(s.GuessedLetters))

	switch s.Outcome {
	case "won":
		fmt.Println("Congratulations! You won!")
		fmt.Printf("Correct answer: %s\n", s.Answer)
	case "lost":
		fmt.Println("Game Over! Lives exhausted!")
		fmt.Printf("Correct answer: %s\n", s.Answer)
	default:
		if s.SecondsRemaining != nil {
			fmt.Printf("Time remaining: %ds\n", *s.SecondsRemaining)
		}
	}
}

func (o *Output) printGuessResult(g GuessResult) {
	fmt.Println(g.Message)
	o.printSession(g.Session)
}

func (o *Output) printTimeoutResult(t TimeoutResult) {
	fmt.Println(t.Message)
	o.printSession(t.Session)
}

func (o *Output) printHintResult(h HintResult) {
	fmt.Printf("Try the letter '%s'.\n", h.Letter)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}

// spacedMask spreads a display mask out for readability, so "p__" reads
// as "p _ _" and word gaps widen to three spaces.
func spacedMask(mask string) string {
	return strings.Join(strings.Split(mask, ""), " ")
}

func guessedLetters(letters []string) string {
	if len(letters) == 0 {
		return "None"
	}
	return strings.Join(letters, ", ")
}
