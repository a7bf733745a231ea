package commands_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/advent/cmd/advent/commands"
	"go.trai.ch/advent/internal/adapters/puzzles"
	"go.trai.ch/advent/internal/app"
	"go.trai.ch/advent/internal/build"
	"go.trai.ch/advent/internal/core/domain"
	"go.trai.ch/advent/internal/core/ports"
)

type mockApp struct {
	runFunc     func(ctx context.Context, req app.RunRequest) (domain.Answer, error)
	runAllFunc  func(ctx context.Context, req app.RunAllRequest) ([]app.Result, error)
	watchFunc   func(ctx context.Context, req app.RunRequest, report func(domain.Answer, error)) error
	listFunc    func() []ports.Puzzle
	metricsFunc func(w io.Writer) error
	jsonLogs    bool
}

func (m *mockApp) Run(ctx context.Context, req app.RunRequest) (domain.Answer, error) {
	if m.runFunc != nil {
		return m.runFunc(ctx, req)
	}
	return domain.Answer{}, nil
}

func (m *mockApp) RunAll(ctx context.Context, req app.RunAllRequest) ([]app.Result, error) {
	if m.runAllFunc != nil {
		return m.runAllFunc(ctx, req)
	}
	return nil, nil
}

func (m *mockApp) Watch(ctx context.Context, req app.RunRequest, report func(domain.Answer, error)) error {
	if m.watchFunc != nil {
		return m.watchFunc(ctx, req, report)
	}
	return nil
}

func (m *mockApp) List() []ports.Puzzle {
	if m.listFunc != nil {
		return m.listFunc()
	}
	return nil
}

func (m *mockApp) ReportMetrics(w io.Writer) error {
	if m.metricsFunc != nil {
		return m.metricsFunc(w)
	}
	return nil
}

func (m *mockApp) MetricsHandler() http.Handler {
	return http.NotFoundHandler()
}

func (m *mockApp) UseJSONLogs() {
	m.jsonLogs = true
}

func execute(t *testing.T, a commands.Application, args ...string) (string, error) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	cli := commands.New(a)
	out := new(bytes.Buffer)
	cli.SetOutput(out, out)
	cli.SetArgs(args)

	err := cli.Execute(context.Background())
	return out.String(), err
}

func TestCommands_Run(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.RunRequest
		mock := &mockApp{
			runFunc: func(_ context.Context, req app.RunRequest) (domain.Answer, error) {
				captured = req
				return domain.Answer{Day: 7, Part: 2, Value: "126"}, nil
			},
		}

		out, err := execute(t, mock, "run", "--day", "7", "--part", "2", "bags.txt", "-c", "custom.yaml", "-f")
		require.NoError(t, err)
		assert.Equal(t, app.RunRequest{
			Day:        7,
			Part:       2,
			InputPath:  "bags.txt",
			ConfigPath: "custom.yaml",
			Force:      true,
		}, captured)
		assert.Equal(t, "✓ day 07 part 2  126\n", out)
	})

	t.Run("marks cached answers", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ app.RunRequest) (domain.Answer, error) {
				return domain.Answer{Day: 1, Part: 1, Value: "514579", Cached: true}, nil
			},
		}

		out, err := execute(t, mock, "run", "-d", "1", "-p", "1")
		require.NoError(t, err)
		assert.Equal(t, "~ day 01 part 1  514579 (cached)\n", out)
	})

	t.Run("returns error on run failure", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ app.RunRequest) (domain.Answer, error) {
				return domain.Answer{}, errors.New("simulated error")
			},
		}

		_, err := execute(t, mock, "run", "-d", "1", "-p", "1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("requires day and part", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ app.RunRequest) (domain.Answer, error) {
				panic("should not be called")
			},
		}

		_, err := execute(t, mock, "run", "--day", "1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "part")
	})

	t.Run("prints metrics when requested", func(t *testing.T) {
		mock := &mockApp{
			metricsFunc: func(w io.Writer) error {
				_, err := io.WriteString(w, "advent_executor_attempts_total 3\n")
				return err
			},
		}

		out, err := execute(t, mock, "run", "-d", "1", "-p", "1", "--metrics")
		require.NoError(t, err)
		assert.Contains(t, out, "advent_executor_attempts_total 3")
	})

	t.Run("switches logs to JSON", func(t *testing.T) {
		mock := &mockApp{}

		_, err := execute(t, mock, "run", "-d", "1", "-p", "1", "--log-json")
		require.NoError(t, err)
		assert.True(t, mock.jsonLogs)
	})
}

func TestCommands_RunWatch(t *testing.T) {
	var captured app.RunRequest
	mock := &mockApp{
		runFunc: func(_ context.Context, _ app.RunRequest) (domain.Answer, error) {
			panic("should not be called")
		},
		watchFunc: func(_ context.Context, req app.RunRequest, report func(domain.Answer, error)) error {
			captured = req
			report(domain.Answer{Day: 10, Part: 1, Value: "35"}, nil)
			report(domain.Answer{}, errors.New("invalid puzzle input"))
			return nil
		},
	}

	out, err := execute(t, mock, "run", "-d", "10", "-p", "1", "-w", "adapters.txt")
	require.NoError(t, err)
	assert.Equal(t, "adapters.txt", captured.InputPath)
	assert.Equal(t, "✓ day 10 part 1  35\n✗ day 10 part 1  invalid puzzle input\n", out)
}

func TestCommands_All(t *testing.T) {
	t.Run("renders results", func(t *testing.T) {
		var captured app.RunAllRequest
		mock := &mockApp{
			runAllFunc: func(_ context.Context, req app.RunAllRequest) ([]app.Result, error) {
				captured = req
				return []app.Result{
					{ID: domain.PuzzleID{Day: 1, Part: 1}, Answer: domain.Answer{Day: 1, Part: 1, Value: "514579"}},
					{ID: domain.PuzzleID{Day: 1, Part: 2}, Answer: domain.Answer{Day: 1, Part: 2, Value: "241861950", Cached: true}},
					{ID: domain.PuzzleID{Day: 10, Part: 2}, Err: errors.New("invalid puzzle input")},
				}, domain.ErrRunFailed
			},
		}

		out, err := execute(t, mock, "all", "--jobs", "3")
		require.ErrorIs(t, err, domain.ErrRunFailed)
		assert.Equal(t, 3, captured.Jobs)

		g := goldie.New(t)
		g.Assert(t, "all", []byte(out))
	})

	t.Run("renders success summary", func(t *testing.T) {
		mock := &mockApp{
			runAllFunc: func(_ context.Context, _ app.RunAllRequest) ([]app.Result, error) {
				return []app.Result{
					{ID: domain.PuzzleID{Day: 7, Part: 1}, Answer: domain.Answer{Day: 7, Part: 1, Value: "4"}},
				}, nil
			},
		}

		out, err := execute(t, mock, "all")
		require.NoError(t, err)
		assert.Equal(t, "✓ day 07 part 1  4\n* 1 solved, 0 cached, 0 failed\n", out)
	})
}

func TestCommands_List(t *testing.T) {
	mock := &mockApp{
		listFunc: puzzles.Builtin,
	}

	out, err := execute(t, mock, "list")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "list", []byte(out))
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, build.Version)
	assert.Contains(t, out, build.Commit)
}
