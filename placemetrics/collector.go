// Package placemetrics provides operational counters for the placement
// core: a small Collector interface wrapping
// github.com/prometheus/client_golang counters/histograms, so that place
// and legalise can record cells placed, ripups, and legalisation outcomes
// without ever requiring a metrics server to be running.
//
// This is ambient operational visibility, not a new domain feature: every
// caller is free to pass NoopCollector{} (the default) and pay nothing.
package placemetrics

import "github.com/prometheus/client_golang/prometheus"

// Outcome labels a completed legalisation chain for legalise_chains_total.
type Outcome string

const (
	OutcomeSatisfied Outcome = "satisfied" // constraints_distance was already 0
	OutcomeSearched  Outcome = "searched"  // a search found and applied a solution
	OutcomeFailed    Outcome = "failed"    // no root location admitted a solution
)

// Collector records the operational counters place and legalise emit during
// a run. Implementations must be safe to call from the single-threaded core
// (no concurrency requirement beyond that).
type Collector interface {
	// CellPlaced records one successful place.PlaceSingleCell call.
	CellPlaced()

	// Ripup records one incumbent displaced by either place or legalise.
	Ripup()

	// LegaliseChain records one chain root's final outcome.
	LegaliseChain(outcome Outcome)

	// SearchDepth records the number of candidate root locations tried
	// before legaliseCell found (or failed to find) a solution.
	SearchDepth(depth int)
}

// NoopCollector discards every observation. It is the default Collector
// used when a caller passes nil.
type NoopCollector struct{}

func (NoopCollector) CellPlaced()           {}
func (NoopCollector) Ripup()                {}
func (NoopCollector) LegaliseChain(Outcome) {}
func (NoopCollector) SearchDepth(int)       {}

// WithDefault returns c, or NoopCollector{} if c is nil — the same
// nil-defaulting convention devmodel.Logger applies to *zerolog.Logger.
func WithDefault(c Collector) Collector {
	if c == nil {
		return NoopCollector{}
	}

	return c
}

// PrometheusCollector implements Collector on top of a
// prometheus.Registerer, exporting cells_placed_total, ripups_total,
// legalise_chains_total{outcome}, and legalise_search_depth.
type PrometheusCollector struct {
	cellsPlaced    prometheus.Counter
	ripups         prometheus.Counter
	legaliseChains *prometheus.CounterVec
	searchDepth    prometheus.Histogram
}

// NewPrometheusCollector registers its metrics against reg and returns a
// ready-to-use Collector. reg may be prometheus.DefaultRegisterer.
func NewPrometheusCollector(reg prometheus.Registerer) *PrometheusCollector {
	c := &PrometheusCollector{
		cellsPlaced: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cells_placed_total",
			Help: "Cells successfully bound to a bel by PlaceSingleCell.",
		}),
		ripups: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ripups_total",
			Help: "Incumbent cells displaced by place or legalise.",
		}),
		legaliseChains: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "legalise_chains_total",
			Help: "Constraint chains processed by LegaliseConstraints, by outcome.",
		}, []string{"outcome"}),
		searchDepth: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "legalise_search_depth",
			Help:    "Candidate root locations tried per chain before success or failure.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}),
	}
	reg.MustRegister(c.cellsPlaced, c.ripups, c.legaliseChains, c.searchDepth)

	return c
}

func (c *PrometheusCollector) CellPlaced()             { c.cellsPlaced.Inc() }
func (c *PrometheusCollector) Ripup()                  { c.ripups.Inc() }
func (c *PrometheusCollector) LegaliseChain(o Outcome) { c.legaliseChains.WithLabelValues(string(o)).Inc() }
func (c *PrometheusCollector) SearchDepth(depth int)   { c.searchDepth.Observe(float64(depth)) }
