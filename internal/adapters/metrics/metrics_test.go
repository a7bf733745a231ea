package metrics_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/advent/internal/adapters/metrics"
	"go.trai.ch/advent/internal/core/domain"
	"go.trai.ch/advent/internal/engine/dynamic"
)

func TestMetrics_ProbeCounts(t *testing.T) {
	m := metrics.New()
	id := domain.PuzzleID{Day: 7, Part: 2}

	p := m.Probe(id)
	p.Attempt()
	p.Attempt()
	p.Attempt()
	p.Descend()
	p.Resolve(1)
	p.Resolve(0)
	p.Overwrite()
	m.Outcome(id, "solved")

	var buf bytes.Buffer
	require.NoError(t, m.Report(&buf))
	out := buf.String()

	assert.Contains(t, out, `advent_executor_attempts_total{day="7",part="2"} 3`)
	assert.Contains(t, out, `advent_executor_descents_total{day="7",part="2"} 1`)
	assert.Contains(t, out, `advent_executor_resolutions_total{day="7",part="2"} 2`)
	assert.Contains(t, out, `advent_executor_overwrites_total{day="7",part="2"} 1`)
	assert.Contains(t, out, `advent_executor_max_depth{day="7",part="2"} 1`)
	assert.Contains(t, out, `advent_puzzle_runs_total{day="7",outcome="solved",part="2"} 1`)
	assert.Contains(t, out, "# HELP advent_executor_attempts_total")
}

func TestMetrics_ProbeResetsDepth(t *testing.T) {
	m := metrics.New()
	id := domain.PuzzleID{Day: 10, Part: 2}

	m.Probe(id).Resolve(5)
	m.Probe(id).Resolve(2)

	var buf bytes.Buffer
	require.NoError(t, m.Report(&buf))
	assert.Contains(t, buf.String(), `advent_executor_max_depth{day="10",part="2"} 2`)
	assert.Contains(t, buf.String(), `advent_executor_resolutions_total{day="10",part="2"} 2`)
}

func TestMetrics_WithExecutor(t *testing.T) {
	m := metrics.New()
	id := domain.PuzzleID{Day: 1, Part: 1}

	fib := dynamic.TaskFunc[int, int](func(n int, sub dynamic.Subtasks[int, int]) (int, error) {
		if n < 2 {
			return n, nil
		}
		if err := sub.Precheck(n-1, n-2); err != nil {
			return 0, err
		}
		a, _ := sub.Solve(n - 1)
		b, _ := sub.Solve(n - 2)
		return a + b, nil
	})

	got, err := dynamic.SolveAll(10, fib, dynamic.WithProbe[int](m.Probe(id)))
	require.NoError(t, err)
	assert.Equal(t, 55, got)

	var buf bytes.Buffer
	require.NoError(t, m.Report(&buf))
	assert.Contains(t, buf.String(), `advent_executor_resolutions_total{day="1",part="1"} 11`)
	assert.Contains(t, buf.String(), `advent_executor_max_depth{day="1",part="1"} 9`)
}

func TestMetrics_Handler(t *testing.T) {
	m := metrics.New()
	m.Probe(domain.PuzzleID{Day: 1, Part: 2}).Attempt()

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL) //nolint:noctx // test server
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `advent_executor_attempts_total{day="1",part="2"} 1`)
}
