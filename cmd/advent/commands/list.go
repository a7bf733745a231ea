package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available puzzles",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			newPrinter(cmd.OutOrStdout()).puzzles(c.app.List())
		},
	}
}
