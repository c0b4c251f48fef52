package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func newPlayCmd() *cobra.Command {
	var level string

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game interactively",
		Long: `Start a session and play it at the terminal.

Type a letter and press Enter to guess. The prompt runs the same turn
timer as the server: take too long and a life is lost.

Besides letters, the prompt accepts:
  ?   ask for a hint
  q   quit (discards the session)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(level, readLines(os.Stdin))
		},
	}

	cmd.Flags().StringVar(&level, "level", "basic", "Game level (basic or intermediate)")

	return cmd
}

func runPlay(level string, lines <-chan string) error {
	for {
		var session Session
		req := map[string]string{"level": level}
		if err := client.Post("/api/v1/sessions", req, &session); err != nil {
			return err
		}

		finished, err := playSession(session, lines)
		if err != nil || !finished {
			return err
		}

		fmt.Print("\nPlay again? [y/N] ")
		answer, ok := <-lines
		if !ok || strings.ToLower(strings.TrimSpace(answer)) != "y" {
			return nil
		}
	}
}

// playSession drives one session to its end. finished reports whether the
// game reached a result, as opposed to the player quitting.
func playSession(session Session, lines <-chan string) (finished bool, err error) {
	out := NewOutput(cfg.Output)
	out.Print(session)

	deadline := turnDeadline(session)

	for {
		fmt.Print("\nGuess a letter (? for hint, q to quit): ")

		line, timedOut, ok := readLine(lines, deadline)
		if !ok {
			return false, nil
		}

		if timedOut {
			fmt.Println()
			var result TimeoutResult
			path := fmt.Sprintf("/api/v1/sessions/%s/timeout", session.SessionID)
			if err := client.Post(path, nil, &result); err != nil {
				return false, err
			}
			out.Print(result)
			session = result.Session
			deadline = turnDeadline(session)
			if session.Outcome != "in_progress" {
				return true, nil
			}
			continue
		}

		input := strings.ToLower(strings.TrimSpace(line))
		switch input {
		case "":
			continue
		case "q", "quit":
			if err := client.Delete(fmt.Sprintf("/api/v1/sessions/%s", session.SessionID)); err != nil {
				return false, err
			}
			fmt.Println("Session discarded")
			return false, nil
		case "?", "hint":
			var hint HintResult
			if err := client.Get(fmt.Sprintf("/api/v1/sessions/%s/hint", session.SessionID), &hint); err != nil {
				out.PrintError(err)
				continue
			}
			out.Print(hint)
			continue
		}

		var result GuessResult
		req := map[string]string{"letter": input}
		path := fmt.Sprintf("/api/v1/sessions/%s/guesses", session.SessionID)
		if err := client.Post(path, req, &result); err != nil {
			out.PrintError(err)
			continue
		}

		fmt.Println()
		out.Print(result)
		session = result.Session
		deadline = turnDeadline(session)

		if session.Outcome != "in_progress" {
			return true, nil
		}
	}
}

// turnDeadline converts the server-reported time remaining into a local
// deadline, so the countdown survives hints and rejected guesses without
// re-fetching the session. Zero means the timer is disabled.
func turnDeadline(session Session) time.Time {
	if session.SecondsRemaining == nil {
		return time.Time{}
	}
	return time.Now().Add(time.Duration(*session.SecondsRemaining) * time.Second)
}

// readLine waits for a line of input or the turn deadline, whichever comes
// first. ok is false once stdin is closed.
func readLine(lines <-chan string, deadline time.Time) (line string, timedOut, ok bool) {
	if deadline.IsZero() {
		line, ok = <-lines
		return line, false, ok
	}

	select {
	case line, ok = <-lines:
		return line, false, ok
	case <-time.After(time.Until(deadline)):
		return "", true, true
	}
}

// readLines pumps input line by line on a channel. A single long-lived
// reader is needed because a blocked Read cannot be abandoned when the
// turn timer fires first.
func readLines(r io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()
	return lines
}
