// Package commands implements the CLI commands for the advent puzzle runner.
package commands

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/cobra"
	"go.trai.ch/advent/internal/app"
	"go.trai.ch/advent/internal/build"
	"go.trai.ch/advent/internal/core/domain"
	"go.trai.ch/advent/internal/core/ports"
)

// CLI represents the command line interface for advent.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, req app.RunRequest) (domain.Answer, error)
	RunAll(ctx context.Context, req app.RunAllRequest) ([]app.Result, error)
	Watch(ctx context.Context, req app.RunRequest, report func(domain.Answer, error)) error
	List() []ports.Puzzle
	ReportMetrics(w io.Writer) error
	MetricsHandler() http.Handler
	UseJSONLogs()
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "advent",
		Short:         "Solve Advent of Code puzzles with a memoized task executor",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "Path to advent.yaml (default \"advent.yaml\")")
	flags.BoolP("force", "f", false, "Solve even if the answer is cached")
	flags.Bool("metrics", false, "Print executor metrics after solving")
	flags.Bool("log-json", false, "Write logs as JSON")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if logJSON, _ := cmd.Flags().GetBool("log-json"); logJSON {
			c.app.UseJSONLogs()
		}
	}

	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newAllCmd())
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// reportMetrics prints the executor metrics if --metrics is set.
func (c *CLI) reportMetrics(cmd *cobra.Command) error {
	if enabled, _ := cmd.Flags().GetBool("metrics"); !enabled {
		return nil
	}
	return c.app.ReportMetrics(cmd.OutOrStdout())
}
