package cli

import (
	"github.com/spf13/cobra"
)

func newLevelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "List the available game levels",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result LevelsResult

			if err := client.Get("/api/v1/levels", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
