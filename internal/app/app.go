// Package app implements the application layer for advent.
package app

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"time"

	"go.trai.ch/advent/internal/core/domain"
	"go.trai.ch/advent/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// stdinPath selects standard input as the puzzle input.
const stdinPath = "-"

// App represents the main application logic.
type App struct {
	registry     ports.PuzzleRegistry
	configLoader ports.ConfigLoader
	input        ports.InputSource
	hasher       ports.Hasher
	stores       ports.AnswerStoreOpener
	tracer       ports.Tracer
	metrics      ports.Metrics
	watcher      ports.InputWatcher
	logger       ports.Logger
	now          func() time.Time
}

// New creates a new App instance.
func New(
	registry ports.PuzzleRegistry,
	loader ports.ConfigLoader,
	input ports.InputSource,
	hasher ports.Hasher,
	stores ports.AnswerStoreOpener,
	tracer ports.Tracer,
	metrics ports.Metrics,
	watcher ports.InputWatcher,
	log ports.Logger,
) *App {
	return &App{
		registry:     registry,
		configLoader: loader,
		input:        input,
		hasher:       hasher,
		stores:       stores,
		tracer:       tracer,
		metrics:      metrics,
		watcher:      watcher,
		logger:       log,
		now:          time.Now,
	}
}

// WithClock replaces the clock used to timestamp answers.
// This is primarily used for testing.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// UseJSONLogs switches the logger to JSON output if it supports it.
func (a *App) UseJSONLogs() {
	if l, ok := a.logger.(interface{ SetJSON(enable bool) }); ok {
		l.SetJSON(true)
	}
}

// RunRequest selects a single puzzle run.
type RunRequest struct {
	Day  int
	Part int
	// InputPath is the input file, "-" for standard input, or empty for the
	// configured input pattern.
	InputPath string
	// ConfigPath is the advent.yaml to load. Empty selects the default.
	ConfigPath string
	// Force solves the puzzle even if the answer is cached.
	Force bool
}

// RunAllRequest configures a run of every registered puzzle.
type RunAllRequest struct {
	// Jobs limits the puzzles solved concurrently. Zero uses the configured value.
	Jobs       int
	ConfigPath string
	Force      bool
}

// Result is the outcome of one puzzle in a batch run.
type Result struct {
	ID       domain.PuzzleID
	Title    string
	Answer   domain.Answer
	Err      error
	Duration time.Duration
}

// target is a puzzle resolved together with everything needed to run it.
type target struct {
	puzzle ports.Puzzle
	store  ports.AnswerStore
	path   string
}

// Run solves one puzzle and returns its answer.
func (a *App) Run(ctx context.Context, req RunRequest) (domain.Answer, error) {
	t, err := a.resolve(req)
	if err != nil {
		return domain.Answer{}, err
	}

	input, err := a.input.Read(t.path)
	if err != nil {
		a.metrics.Outcome(t.puzzle.ID(), ports.OutcomeFailed)
		return domain.Answer{}, zerr.Wrap(err, "failed to read input")
	}

	return a.solve(ctx, t, input, req.Force)
}

// Watch runs the puzzle selected by req, then runs it again every time its
// input file changes, until ctx is done. Every outcome is passed to report.
func (a *App) Watch(ctx context.Context, req RunRequest, report func(domain.Answer, error)) error {
	if req.InputPath == stdinPath {
		return zerr.New("cannot watch standard input")
	}

	t, err := a.resolve(req)
	if err != nil {
		return err
	}

	run := func() {
		input, err := a.input.Read(t.path)
		if err != nil {
			report(domain.Answer{}, zerr.Wrap(err, "failed to read input"))
			return
		}
		report(a.solve(ctx, t, input, req.Force))
	}

	ready := func() {
		a.logger.Info("watching for changes", "path", t.path)
		run()
	}
	if err := a.watcher.Watch(ctx, []string{t.path}, ready, func([]string) { run() }); err != nil {
		return zerr.Wrap(err, "failed to watch input")
	}
	return nil
}

// RunAll solves every registered puzzle whose input file exists.
// Results are ordered by day and part. If any puzzle failed, the results are
// returned together with domain.ErrRunFailed.
func (a *App) RunAll(ctx context.Context, req RunAllRequest) ([]Result, error) {
	cfg, err := a.configLoader.Load(req.ConfigPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	store, err := a.stores.Open(cfg.Cache)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to open answer store")
	}

	jobs := req.Jobs
	if jobs <= 0 {
		jobs = cfg.Jobs
	}

	puzzles := a.registry.All()
	results := make([]*Result, len(puzzles))

	var g errgroup.Group
	g.SetLimit(jobs)

	for i, puzzle := range puzzles {
		t := target{puzzle: puzzle, store: store, path: cfg.InputPath(puzzle.ID().Day)}
		g.Go(func() error {
			results[i] = a.runOne(ctx, t, req.Force)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ordered := make([]Result, 0, len(results))
	failed := false
	for _, r := range results {
		if r == nil {
			continue
		}
		if r.Err != nil {
			failed = true
		}
		ordered = append(ordered, *r)
	}

	if failed {
		return ordered, domain.ErrRunFailed
	}
	return ordered, nil
}

// runOne runs t for RunAll. It returns nil if the input file does not exist.
func (a *App) runOne(ctx context.Context, t target, force bool) (result *Result) {
	id := t.puzzle.ID()
	result = &Result{ID: id, Title: t.puzzle.Title()}
	start := time.Now()

	defer func() {
		if result != nil {
			result.Duration = time.Since(start)
		}
	}()
	defer zerr.Defer(func(err error) {
		a.metrics.Outcome(id, ports.OutcomeFailed)
		result.Err = zerr.With(zerr.With(zerr.Wrap(err, "puzzle panicked"), "day", id.Day), "part", id.Part)
	})

	if err := ctx.Err(); err != nil {
		result.Err = err
		return result
	}

	input, err := a.input.Read(t.path)
	if errors.Is(err, fs.ErrNotExist) {
		a.logger.Warn("skipping puzzle without input", "day", id.Day, "part", id.Part, "path", t.path)
		return nil
	}
	if err != nil {
		a.metrics.Outcome(id, ports.OutcomeFailed)
		result.Err = zerr.Wrap(err, "failed to read input")
		return result
	}

	result.Answer, result.Err = a.solve(ctx, t, input, force)
	return result
}

// List returns every registered puzzle ordered by day and part.
func (a *App) List() []ports.Puzzle {
	return a.registry.All()
}

// ReportMetrics writes the executor statistics collected so far to w.
func (a *App) ReportMetrics(w io.Writer) error {
	return a.metrics.Report(w)
}

// MetricsHandler serves the executor statistics over HTTP.
func (a *App) MetricsHandler() http.Handler {
	return a.metrics.Handler()
}

func (a *App) resolve(req RunRequest) (target, error) {
	id, err := domain.NewPuzzleID(req.Day, req.Part)
	if err != nil {
		return target{}, err
	}

	puzzle, err := a.registry.Lookup(id)
	if err != nil {
		return target{}, err
	}

	cfg, err := a.configLoader.Load(req.ConfigPath)
	if err != nil {
		return target{}, zerr.Wrap(err, "failed to load configuration")
	}

	store, err := a.stores.Open(cfg.Cache)
	if err != nil {
		return target{}, zerr.Wrap(err, "failed to open answer store")
	}

	path := req.InputPath
	if path == "" {
		path = cfg.InputPath(id.Day)
	}

	return target{puzzle: puzzle, store: store, path: path}, nil
}

// solve answers t for input, serving the answer from the store unless force is set.
func (a *App) solve(ctx context.Context, t target, input string, force bool) (domain.Answer, error) {
	id := t.puzzle.ID()

	_, span := a.tracer.Start(ctx, "solve")
	defer span.End()
	span.SetAttribute("day", id.Day)
	span.SetAttribute("part", id.Part)

	fail := func(err error) (domain.Answer, error) {
		err = zerr.With(zerr.With(err, "day", id.Day), "part", id.Part)
		span.RecordError(err)
		a.metrics.Outcome(id, ports.OutcomeFailed)
		return domain.Answer{}, err
	}

	hash := a.hasher.HashInput(input)
	span.SetAttribute("input_hash", hash)

	if !force {
		cached, err := t.store.Get(domain.AnswerKey(id, hash))
		if err != nil {
			return fail(zerr.Wrap(err, "failed to read answer store"))
		}
		if cached != nil {
			span.SetAttribute("cached", true)
			a.metrics.Outcome(id, ports.OutcomeCached)
			answer := *cached
			answer.Cached = true
			return answer, nil
		}
	}
	span.SetAttribute("cached", false)

	value, err := t.puzzle.Solve(input, a.metrics.Probe(id))
	if err != nil {
		return fail(zerr.Wrap(err, "failed to solve puzzle"))
	}

	answer := domain.Answer{
		Day:       id.Day,
		Part:      id.Part,
		InputHash: hash,
		Value:     value,
		Timestamp: a.now().UTC(),
	}
	if err := t.store.Put(answer); err != nil {
		return fail(zerr.Wrap(err, "failed to store answer"))
	}

	a.metrics.Outcome(id, ports.OutcomeSolved)
	a.logger.Info("solved", "day", id.Day, "part", id.Part)
	return answer, nil
}
