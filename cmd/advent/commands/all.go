package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/advent/internal/app"
)

func (c *CLI) newAllCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "all",
		Short: "Solve every puzzle whose input file exists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			jobs, _ := cmd.Flags().GetInt("jobs")
			configPath, _ := cmd.Flags().GetString("config")
			force, _ := cmd.Flags().GetBool("force")

			results, err := c.app.RunAll(cmd.Context(), app.RunAllRequest{
				Jobs:       jobs,
				ConfigPath: configPath,
				Force:      force,
			})
			newPrinter(cmd.OutOrStdout()).results(results)
			if err != nil {
				return err
			}
			return c.reportMetrics(cmd)
		},
	}
	cmd.Flags().IntP("jobs", "j", 0, "Number of puzzles solved concurrently (default from advent.yaml)")
	return cmd
}
