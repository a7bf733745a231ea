// Package metrics records memoized executor work per puzzle with Prometheus.
package metrics

import (
	"io"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/common/expfmt"
	"go.trai.ch/advent/internal/core/domain"
	"go.trai.ch/advent/internal/core/ports"
	"go.trai.ch/zerr"
)

const namespace = "advent"

var puzzleLabels = []string{"day", "part"}

var _ ports.Metrics = (*Metrics)(nil)

// Metrics implements ports.Metrics on a private registry, so that several
// instances never collide and tests see only their own series.
type Metrics struct {
	registry    *prometheus.Registry
	attempts    *prometheus.CounterVec
	descents    *prometheus.CounterVec
	resolutions *prometheus.CounterVec
	overwrites  *prometheus.CounterVec
	depth       *prometheus.GaugeVec
	runs        *prometheus.CounterVec
}

// New creates a Metrics with all collectors registered.
func New() *Metrics {
	counter := func(name, help string) *prometheus.CounterVec {
		return prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "executor",
			Name:      name,
			Help:      help,
		}, puzzleLabels)
	}

	m := &Metrics{
		registry:    prometheus.NewRegistry(),
		attempts:    counter("attempts_total", "Task invocations, including replays after a missing dependency."),
		descents:    counter("descents_total", "Goals suspended to solve a missing dependency first."),
		resolutions: counter("resolutions_total", "Goals solved and recorded in the store."),
		overwrites:  counter("overwrites_total", "Recorded solutions that replaced an existing one."),
		depth: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "executor",
			Name:      "max_depth",
			Help:      "Deepest chain of waiting goals seen in the latest run.",
		}, puzzleLabels),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "puzzle_runs_total",
			Help:      "Puzzle runs by outcome.",
		}, []string{"day", "part", "outcome"}),
	}

	m.registry.MustRegister(m.attempts, m.descents, m.resolutions, m.overwrites, m.depth, m.runs)
	return m
}

// Probe returns a probe recording work for id. The max depth gauge of id is reset.
func (m *Metrics) Probe(id domain.PuzzleID) ports.Probe {
	day, part := labels(id)
	gauge := m.depth.WithLabelValues(day, part)
	gauge.Set(0)

	return &probe{
		attempts:    m.attempts.WithLabelValues(day, part),
		descents:    m.descents.WithLabelValues(day, part),
		resolutions: m.resolutions.WithLabelValues(day, part),
		overwrites:  m.overwrites.WithLabelValues(day, part),
		depth:       gauge,
	}
}

// Outcome counts a finished run of id, e.g. "solved", "cached" or "failed".
func (m *Metrics) Outcome(id domain.PuzzleID, outcome string) {
	day, part := labels(id)
	m.runs.WithLabelValues(day, part, outcome).Inc()
}

// Report writes all series in the Prometheus text exposition format.
func (m *Metrics) Report(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return zerr.Wrap(err, "failed to gather metrics")
	}
	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(w, family); err != nil {
			return zerr.Wrap(err, "failed to write metrics")
		}
	}
	return nil
}

// Handler serves the registry for scraping.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func labels(id domain.PuzzleID) (day, part string) {
	return strconv.Itoa(id.Day), strconv.Itoa(id.Part)
}

type probe struct {
	attempts    prometheus.Counter
	descents    prometheus.Counter
	resolutions prometheus.Counter
	overwrites  prometheus.Counter
	depth       prometheus.Gauge
	maxDepth    int
}

func (p *probe) Attempt()   { p.attempts.Inc() }
func (p *probe) Descend()   { p.descents.Inc() }
func (p *probe) Overwrite() { p.overwrites.Inc() }

func (p *probe) Resolve(depth int) {
	p.resolutions.Inc()
	if depth > p.maxDepth {
		p.maxDepth = depth
		p.depth.Set(float64(depth))
	}
}
