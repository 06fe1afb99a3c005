// SPDX-License-Identifier: MIT

// Package metrics exports Prometheus instrumentation for decomposition runs.
//
// A Collector is registered on a caller-supplied prometheus.Registerer; the
// library never touches the global default registry. Feed it either per
// solve (Record) or per iteration (Observer, passed as rpca.WithObserver).
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/lowrank/matrix"
	"github.com/katalvlaran/lowrank/rpca"
)

// Outcome label values of the solves counter.
const (
	OutcomeConverged    = "converged"
	OutcomeExhausted    = "budget_exhausted"
	OutcomeInvalidInput = "invalid_input"
	OutcomeComputation  = "computation_error"
	OutcomeOther        = "error"
)

// Collector holds the decomposition metrics.
type Collector struct {
	Solves     *prometheus.CounterVec   // {method, outcome}
	Iterations *prometheus.HistogramVec // {method}, iterations per solve
	Residual   *prometheus.HistogramVec // {method}, final relative residual
	Duration   *prometheus.HistogramVec // {method}, wall time per solve
	Steps      *prometheus.CounterVec   // {method}, iterations observed live
	LastResid  *prometheus.GaugeVec     // {method}, residual of the latest iteration
}

// NewCollector builds the metrics under namespace and registers them on reg.
// Errors: the registration error (e.g. duplicate collector) from reg.
func NewCollector(reg prometheus.Registerer, namespace string) (*Collector, error) {
	c := &Collector{
		Solves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rpca_solves_total",
				Help:      "Decompositions by solver and outcome",
			},
			[]string{"method", "outcome"},
		),
		Iterations: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "rpca_iterations",
				Help:      "Iterations executed per decomposition",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 11), // 1 … 1024
			},
			[]string{"method"},
		),
		Residual: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "rpca_final_residual",
				Help:      "Relative residual ‖M−L−S‖_F/‖M‖_F at termination",
				Buckets:   prometheus.ExponentialBuckets(1e-10, 10, 11), // 1e-10 … 1
			},
			[]string{"method"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "rpca_solve_duration_seconds",
				Help:      "Wall time of one decomposition in seconds",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
			},
			[]string{"method"},
		),
		Steps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rpca_iterations_total",
				Help:      "Iterations reported through the per-iteration observer",
			},
			[]string{"method"},
		),
		LastResid: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "rpca_last_residual",
				Help:      "Relative residual of the most recent iteration",
			},
			[]string{"method"},
		),
	}

	for _, col := range []prometheus.Collector{c.Solves, c.Iterations, c.Residual, c.Duration, c.Steps, c.LastResid} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Record accounts one finished solve. res may be nil when err is non-nil.
func (c *Collector) Record(method rpca.Method, res *rpca.Result, err error, elapsed time.Duration) {
	name := method.String()
	c.Duration.WithLabelValues(name).Observe(elapsed.Seconds())

	if err != nil {
		c.Solves.WithLabelValues(name, errorOutcome(err)).Inc()
		return
	}

	outcome := OutcomeExhausted
	if res.Converged {
		outcome = OutcomeConverged
	}
	c.Solves.WithLabelValues(name, outcome).Inc()
	c.Iterations.WithLabelValues(name).Observe(float64(res.Iterations))
	c.Residual.WithLabelValues(name).Observe(res.Residual)
}

// Observer returns a per-iteration hook for rpca.WithObserver.
// The returned function is safe for concurrent solves.
func (c *Collector) Observer() rpca.Observer {
	return func(st rpca.IterationStat) {
		name := st.Method.String()
		c.Steps.WithLabelValues(name).Inc()
		c.LastResid.WithLabelValues(name).Set(st.Residual)
	}
}

// Decompose runs rpca.Decompose with the per-iteration hook installed and
// records the outcome. Options passed by the caller come first, so a caller's
// own WithObserver is replaced.
func (c *Collector) Decompose(m matrix.Matrix, method rpca.Method, opts ...rpca.Option) (*rpca.Result, error) {
	opts = append(opts[:len(opts):len(opts)], rpca.WithObserver(c.Observer()))

	start := time.Now()
	res, err := rpca.Decompose(m, method, opts...)
	c.Record(method, res, err, time.Since(start))

	return res, err
}

func errorOutcome(err error) string {
	switch {
	case errors.Is(err, rpca.ErrInvalidInput):
		return OutcomeInvalidInput
	case errors.Is(err, rpca.ErrComputation):
		return OutcomeComputation
	default:
		return OutcomeOther
	}
}
