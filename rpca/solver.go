// SPDX-License-Identifier: MIT

// Package rpca: shared inexact augmented Lagrange multiplier (IALM) core.
//
// Both solvers run the same loop; only the L-update (LowRankStep) differs.
// Each iteration is a pure function of (M, L, S, Y, μ, s_prev): advance never
// mutates its inputs and returns a fresh state.

package rpca

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lowrank/matrix"
)

// problem holds the immutable data of one solve.
type problem struct {
	method Method
	m      *matrix.Dense
	step   LowRankStep

	lambda float64
	mu0    float64
	muBar  float64
	rho    float64
	normM  float64 // ‖M‖_F
}

// state is the mutable iterate, replaced wholesale on every iteration.
type state struct {
	low, sparse, dual *matrix.Dense
	mu                float64
	spectrum          []float64 // thresholded σ of low; s_prev for the next step
}

// advance performs one IALM iteration.
// Implementation:
//   - Stage 1: L ← step(M − S + Y/μ, 1/μ).
//   - Stage 2: S ← Shrink(M − L + Y/μ, λ/μ).
//   - Stage 3: R ← M − L − S; Y ← Y + μ·R.
//   - Stage 4: err ← ‖R‖_F / (‖M‖_F + floor).
//   - Stage 5: μ ← min(μ·ρ, μ̄). The caller discards it when err converged.
//
// Errors:
//   - ErrComputation when the L-update SVD fails.
func advance(p *problem, st state) (state, float64, error) {
	inv := 1 / st.mu

	x, err := matrix.Sub(p.m, st.sparse)
	if err != nil {
		return st, 0, computationFailed("advance", err)
	}
	if x, err = matrix.AddScaled(x, st.dual, inv); err != nil {
		return st, 0, computationFailed("advance", err)
	}
	low, spectrum, err := p.step.Update(x, inv, st.spectrum)
	if err != nil {
		return st, 0, err
	}

	if x, err = matrix.Sub(p.m, low); err != nil {
		return st, 0, computationFailed("advance", err)
	}
	if x, err = matrix.AddScaled(x, st.dual, inv); err != nil {
		return st, 0, computationFailed("advance", err)
	}
	sparse, err := shrink(x, p.lambda*inv)
	if err != nil {
		return st, 0, err
	}

	r, err := matrix.Sub(p.m, low)
	if err != nil {
		return st, 0, computationFailed("advance", err)
	}
	if r, err = matrix.Sub(r, sparse); err != nil {
		return st, 0, computationFailed("advance", err)
	}
	dual, err := matrix.AddScaled(st.dual, r, st.mu)
	if err != nil {
		return st, 0, computationFailed("advance", err)
	}

	normR, err := matrix.FrobeniusNorm(r)
	if err != nil {
		return st, 0, computationFailed("advance", err)
	}
	residual := normR / (p.normM + normFloor)

	next := state{
		low:      low,
		sparse:   sparse,
		dual:     dual,
		mu:       math.Min(st.mu*p.rho, p.muBar),
		spectrum: spectrum,
	}

	return next, residual, nil
}

// newProblem validates m, resolves data-dependent defaults and builds the
// initial state (L₀ = S₀ = 0, Y₀ = M / (max(‖M‖₂, ‖M‖∞/λ) + floor)).
func newProblem(op string, method Method, m matrix.Matrix, step LowRankStep, o Options) (*problem, state, error) {
	if err := matrix.ValidateFinite(m); err != nil {
		return nil, state{}, invalidInput(op, err)
	}
	md, err := matrix.Copy(m)
	if err != nil {
		return nil, state{}, invalidInput(op, err)
	}
	rows, cols := md.Shape()

	spectral, err := matrix.SpectralNorm(md)
	if err != nil {
		return nil, state{}, computationFailed(op, err)
	}
	normF, err := matrix.FrobeniusNorm(md)
	if err != nil {
		return nil, state{}, computationFailed(op, err)
	}
	normInf, err := matrix.InfNorm(md)
	if err != nil {
		return nil, state{}, computationFailed(op, err)
	}

	p := &problem{method: method, m: md, step: step, rho: o.rho, normM: normF}
	p.lambda = DefaultLambda(rows, cols)
	if o.lambdaSet {
		p.lambda = o.lambda
	}
	p.mu0 = DefaultMuScale / (spectral + normFloor)
	if o.muSet {
		p.mu0 = o.mu
	}
	p.muBar = p.mu0 * o.muBarFactor

	dual, err := matrix.Scale(md, 1/(math.Max(spectral, normInf/p.lambda)+normFloor))
	if err != nil {
		return nil, state{}, computationFailed(op, err)
	}
	low, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, state{}, invalidInput(op, err)
	}
	sparse, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, state{}, invalidInput(op, err)
	}

	return p, state{low: low, sparse: sparse, dual: dual, mu: p.mu0}, nil
}

// solve runs the IALM loop shared by PCP and IRLS.
// MAIN DESCRIPTION:
//   - Iterates advance until the relative residual drops below the tolerance
//     (and at least MinIterations iterations ran) or the budget is exhausted.
//
// Behavior highlights:
//   - Budget exhaustion is not an error: the last iterate is returned with
//     Converged=false.
//   - An all-zero M converges on the first iteration with L = S = 0.
//
// Errors:
//   - ErrInvalidInput before the loop (options, shape, non-finite entries).
//   - ErrComputation from any iteration; no partial result is returned.
//
// Complexity:
//   - Time O(iter·min(m,n)·m·n), Space O(m·n).
func solve(op string, method Method, m matrix.Matrix, step LowRankStep, o Options) (*Result, error) {
	p, st, err := newProblem(op, method, m, step, o)
	if err != nil {
		return nil, err
	}
	rows, cols := p.m.Shape()

	log := o.logger.With().Str("method", method.String()).Logger()
	log.Debug().
		Int("rows", rows).
		Int("cols", cols).
		Float64("lambda", p.lambda).
		Float64("mu0", p.mu0).
		Int("max_iter", o.maxIter).
		Float64("tol", o.tol).
		Msg("rpca: solve started")

	res := &Result{Method: method, Lambda: p.lambda, Mu0: p.mu0}
	if o.trace {
		res.Trace = make([]float64, 0, min(o.maxIter, 64))
	}

	var (
		next     state
		residual float64
		k        int
	)
	for k = 0; k < o.maxIter; k++ {
		next, residual, err = advance(p, st)
		if err != nil {
			return nil, fmt.Errorf("%s iteration %d: %w", op, k, err)
		}
		stat := IterationStat{
			Method:    method,
			Iteration: k,
			Residual:  residual,
			Mu:        st.mu,
			Rank:      rankOf(next.spectrum),
		}
		st = next

		if o.trace {
			res.Trace = append(res.Trace, residual)
		}
		if o.observer != nil {
			if stat.NonZero, err = matrix.CountNonZero(st.sparse, 0); err != nil {
				return nil, computationFailed(op, err)
			}
			o.observer(stat)
		}
		if o.logEvery > 0 && k%o.logEvery == 0 {
			log.Info().
				Int("iteration", k).
				Float64("residual", residual).
				Float64("mu", stat.Mu).
				Int("rank", stat.Rank).
				Msg("rpca: progress")
		}

		if k+1 >= o.minIter && residual < o.tol {
			res.Converged = true
			k++
			break
		}
	}

	res.Low, res.Sparse = st.low, st.sparse
	res.Iterations = k
	res.Residual = residual
	res.Rank = rankOf(st.spectrum)
	if res.NonZero, err = matrix.CountNonZero(st.sparse, 0); err != nil {
		return nil, computationFailed(op, err)
	}

	log.Info().
		Bool("converged", res.Converged).
		Int("iterations", res.Iterations).
		Float64("residual", res.Residual).
		Int("rank", res.Rank).
		Int("nonzero", res.NonZero).
		Msg("rpca: solve finished")

	return res, nil
}

// rankOf counts the non-zero thresholded singular values.
func rankOf(spectrum []float64) int {
	n := 0
	for _, s := range spectrum {
		if s > 0 {
			n++
		}
	}

	return n
}
