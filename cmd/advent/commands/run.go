package commands

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/advent/internal/app"
	"go.trai.ch/advent/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run --day N --part P [input]",
		Short: "Solve one puzzle",
		Long: "Solve one puzzle. The input is read from the given file, from standard input\n" +
			"if it is \"-\", or from the configured input pattern if it is omitted.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, _ := cmd.Flags().GetInt("day")
			part, _ := cmd.Flags().GetInt("part")
			watch, _ := cmd.Flags().GetBool("watch")
			metricsAddr, _ := cmd.Flags().GetString("metrics-addr")
			configPath, _ := cmd.Flags().GetString("config")
			force, _ := cmd.Flags().GetBool("force")

			req := app.RunRequest{
				Day:        day,
				Part:       part,
				ConfigPath: configPath,
				Force:      force,
			}
			if len(args) == 1 {
				req.InputPath = args[0]
			}

			p := newPrinter(cmd.OutOrStdout())

			if watch {
				return c.watch(cmd.Context(), req, metricsAddr, p)
			}

			answer, err := c.app.Run(cmd.Context(), req)
			if err != nil {
				return err
			}
			p.answer(answer)
			return c.reportMetrics(cmd)
		},
	}
	cmd.Flags().IntP("day", "d", 0, "Puzzle day (1-25)")
	cmd.Flags().IntP("part", "p", 0, "Puzzle part (1 or 2)")
	cmd.Flags().BoolP("watch", "w", false, "Solve again whenever the input file changes")
	cmd.Flags().String("metrics-addr", "", "Serve executor metrics on this address while watching")
	_ = cmd.MarkFlagRequired("day")
	_ = cmd.MarkFlagRequired("part")
	return cmd
}

// watch runs the puzzle until ctx is done, optionally serving metrics on addr.
func (c *CLI) watch(ctx context.Context, req app.RunRequest, addr string, p *printer) error {
	if addr != "" {
		srv := &http.Server{
			Addr:              addr,
			Handler:           c.app.MetricsHandler(),
			ReadHeaderTimeout: 5 * time.Second,
		}
		errCh := make(chan error, 1)
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- zerr.With(zerr.Wrap(err, "failed to serve metrics"), "addr", addr)
			}
			close(errCh)
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()

		// Fail fast if the address cannot be bound.
		select {
		case err := <-errCh:
			if err != nil {
				return err
			}
		case <-time.After(50 * time.Millisecond):
		}
	}

	return c.app.Watch(ctx, req, func(answer domain.Answer, err error) {
		if err != nil {
			p.failure(domain.PuzzleID{Day: req.Day, Part: req.Part}, err)
			return
		}
		p.answer(answer)
	})
}
