package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Game session commands",
	}

	cmd.AddCommand(newSessionNewCmd())
	cmd.AddCommand(newSessionShowCmd())
	cmd.AddCommand(newSessionGuessCmd())
	cmd.AddCommand(newSessionTimeoutCmd())
	cmd.AddCommand(newSessionHintCmd())
	cmd.AddCommand(newSessionDiscardCmd())

	return cmd
}

func newSessionNewCmd() *cobra.Command {
	var level string

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Start a new game session",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"level": level}
			var result Session

			if err := client.Post("/api/v1/sessions", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&level, "level", "basic", "Game level (basic or intermediate)")

	return cmd
}

func newSessionShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <session-id>",
		Short: "Show the current state of a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			var result Session

			if err := client.Get(fmt.Sprintf("/api/v1/sessions/%s", id), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSessionGuessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guess <session-id> <letter>",
		Short: "Guess a letter",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			letter := strings.ToLower(args[1])

			if len(letter) != 1 || letter[0] < 'a' || letter[0] > 'z' {
				return fmt.Errorf("letter must be a single character a-z")
			}

			req := map[string]string{"letter": letter}
			var result GuessResult

			if err := client.Post(fmt.Sprintf("/api/v1/sessions/%s/guesses", id), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSessionTimeoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "timeout <session-id>",
		Short: "Report the turn timer as expired",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			var result TimeoutResult

			if err := client.Post(fmt.Sprintf("/api/v1/sessions/%s/timeout", id), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSessionHintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hint <session-id>",
		Short: "Ask for a letter suggestion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			var result HintResult

			if err := client.Get(fmt.Sprintf("/api/v1/sessions/%s/hint", id), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSessionDiscardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "discard <session-id>",
		Short: "Discard a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			if err := client.Delete(fmt.Sprintf("/api/v1/sessions/%s", id)); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Session discarded")
			return nil
		},
	}
}
