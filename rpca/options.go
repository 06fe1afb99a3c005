// SPDX-License-Identifier: MIT

// Package rpca: functional configuration for the decomposition solvers.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions, which resolves and validates the effective configuration.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Out-of-range values are reported as ErrInvalidInput by the solver entry
//     point (never a panic), before any iteration runs.
//   - Zero-config calls reproduce the classic IALM defaults.
package rpca

import (
	"math"

	"github.com/rs/zerolog"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxIter is the iteration budget of one solve.
	DefaultMaxIter = 1000

	// DefaultMinIterations lets the convergence test fire from the first iteration.
	DefaultMinIterations = 0

	// DefaultTolerance bounds the relative residual ‖M−L−S‖_F / ‖M‖_F at convergence.
	DefaultTolerance = 1e-7

	// DefaultRho is the geometric growth rate of the penalty μ per iteration.
	DefaultRho = 1.5

	// DefaultMuBarFactor caps the penalty at μ̄ = μ₀·DefaultMuBarFactor.
	DefaultMuBarFactor = 1e7

	// DefaultWeightEpsilon keeps IRLS weights 1/(|σ|+ε) finite for σ = 0.
	DefaultWeightEpsilon = 1e-6

	// DefaultLogEvery emits a progress event every N iterations (0 disables).
	DefaultLogEvery = 50

	// DefaultMuScale is the numerator of the default initial penalty μ₀ = 1.25/‖M‖₂.
	DefaultMuScale = 1.25

	// normFloor keeps every norm-based division finite on an all-zero input.
	normFloor = 1e-12
)

// DefaultLambda returns the sparsity weight 1/sqrt(max(rows, cols)).
//
// For a matrix whose only non-zero is a single entry, L=0, S=M is the exact
// optimum whenever λ < 1, which this default satisfies for every shape with
// at least two rows or columns.
func DefaultLambda(rows, cols int) float64 {
	return 1 / math.Sqrt(float64(max(rows, cols)))
}

// ---------- Public option type (functional) ----------

// Option mutates solver options. Safe to apply repeatedly; the last write wins.
type Option func(*Options)

// Observer receives one IterationStat per completed iteration, synchronously,
// on the solving goroutine.
type Observer func(IterationStat)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	lambda    float64 // sparsity weight λ; 0 with lambdaSet=false ⇒ DefaultLambda
	lambdaSet bool
	mu        float64 // initial penalty μ₀; muSet=false ⇒ 1.25/‖M‖₂
	muSet     bool

	maxIter     int
	minIter     int
	tol         float64
	rho         float64
	muBarFactor float64
	eps         float64 // IRLS weight epsilon

	logger   zerolog.Logger
	logEvery int
	observer Observer
	trace    bool
}

// defaultOptions returns the zero-config solver setup.
func defaultOptions() Options {
	return Options{
		maxIter:     DefaultMaxIter,
		minIter:     DefaultMinIterations,
		tol:         DefaultTolerance,
		rho:         DefaultRho,
		muBarFactor: DefaultMuBarFactor,
		eps:         DefaultWeightEpsilon,
		logger:      zerolog.Nop(),
		logEvery:    DefaultLogEvery,
	}
}

// WithLambda sets the sparsity weight λ (must be finite and > 0).
func WithLambda(lambda float64) Option {
	return func(o *Options) { o.lambda, o.lambdaSet = lambda, true }
}

// WithMu sets the initial penalty μ₀ (must be finite and > 0).
// Only meaningful when the caller has a better scale than 1.25/‖M‖₂.
func WithMu(mu float64) Option {
	return func(o *Options) { o.mu, o.muSet = mu, true }
}

// WithMaxIter sets the iteration budget (≥ 1).
func WithMaxIter(n int) Option {
	return func(o *Options) { o.maxIter = n }
}

// WithMinIterations suppresses the convergence test until n iterations have run.
// The residual of a degenerate input (e.g. a single non-zero entry) can vanish
// on the first iteration before L and S have separated; a small floor lets the
// penalty schedule finish the split.
func WithMinIterations(n int) Option {
	return func(o *Options) { o.minIter = n }
}

// WithTolerance sets the relative-residual stopping threshold (finite, > 0).
func WithTolerance(tol float64) Option {
	return func(o *Options) { o.tol = tol }
}

// WithRho sets the penalty growth rate ρ (finite, > 1).
func WithRho(rho float64) Option {
	return func(o *Options) { o.rho = rho }
}

// WithMuBarFactor sets the penalty cap multiplier, μ̄ = μ₀·factor (finite, ≥ 1).
func WithMuBarFactor(factor float64) Option {
	return func(o *Options) { o.muBarFactor = factor }
}

// WithWeightEpsilon sets ε in the IRLS weights 1/(|σ|+ε) (finite, > 0).
// Ignored by PCP.
func WithWeightEpsilon(eps float64) Option {
	return func(o *Options) { o.eps = eps }
}

// WithLogger routes solver progress to l. The default is zerolog.Nop().
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithLogEvery emits a progress event every n iterations; n ≤ 0 disables them.
func WithLogEvery(n int) Option {
	return func(o *Options) { o.logEvery = n }
}

// WithObserver installs a per-iteration hook.
func WithObserver(fn Observer) Option {
	return func(o *Options) { o.observer = fn }
}

// WithResidualTrace keeps the residual of every iteration in Result.Trace.
func WithResidualTrace() Option {
	return func(o *Options) { o.trace = true }
}

// gatherOptions applies opts over the defaults and validates the result.
// Errors are ErrInvalidOption causes; the caller joins them with ErrInvalidInput.
func gatherOptions(opts []Option) (Options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	switch {
	case o.lambdaSet && !positiveFinite(o.lambda):
		return o, optionErrorf("lambda=%g must be finite and > 0", o.lambda)
	case o.muSet && !positiveFinite(o.mu):
		return o, optionErrorf("mu=%g must be finite and > 0", o.mu)
	case o.maxIter < 1:
		return o, optionErrorf("max iterations=%d must be >= 1", o.maxIter)
	case o.minIter < 0:
		return o, optionErrorf("min iterations=%d must be >= 0", o.minIter)
	case !positiveFinite(o.tol):
		return o, optionErrorf("tolerance=%g must be finite and > 0", o.tol)
	case math.IsInf(o.rho, 0) || !(o.rho > 1):
		return o, optionErrorf("rho=%g must be finite and > 1", o.rho)
	case math.IsInf(o.muBarFactor, 0) || !(o.muBarFactor >= 1):
		return o, optionErrorf("mu bar factor=%g must be finite and >= 1", o.muBarFactor)
	case !positiveFinite(o.eps):
		return o, optionErrorf("weight epsilon=%g must be finite and > 0", o.eps)
	}

	return o, nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) // NaN fails v > 0
}
