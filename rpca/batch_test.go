// SPDX-License-Identifier: MIT

package rpca_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lowrank/matrix"
	"github.com/katalvlaran/lowrank/rpca"
)

func TestRunBatch_IndexAligned(t *testing.T) {
	_, m := spiked(t)
	zero := mustDense(t, 3, 3)

	jobs := []rpca.Job{
		{Name: "spike/pcp", Input: m, Method: rpca.MethodPCP},
		{Name: "spike/irls", Input: m, Method: rpca.MethodIRLS},
		{Name: "zero", Input: zero, Method: rpca.MethodPCP},
		{Name: "budget", Input: m, Method: rpca.MethodPCP, Options: []rpca.Option{rpca.WithMaxIter(1)}},
	}
	before := m.ToRows()

	results, err := rpca.RunBatch(context.Background(), jobs, 2)
	require.NoError(t, err)
	require.Len(t, results, len(jobs))

	assert.Equal(t, rpca.MethodPCP, results[0].Method)
	assert.Equal(t, rpca.MethodIRLS, results[1].Method)
	assert.Equal(t, 1, results[2].Iterations)
	assert.False(t, results[3].Converged)
	assert.Equal(t, 1, results[3].Iterations)
	assert.Equal(t, before, m.ToRows(), "shared input must not be mutated")

	// Concurrent results match sequential ones.
	seq, err := rpca.PCP(m)
	require.NoError(t, err)
	assert.Equal(t, seq.Low.ToRows(), results[0].Low.ToRows())
	assert.Equal(t, seq.Sparse.ToRows(), results[0].Sparse.ToRows())
}

func TestRunBatch_Unbounded(t *testing.T) {
	jobs := make([]rpca.Job, 6)
	var calls atomic.Int32
	for i := range jobs {
		jobs[i] = rpca.Job{
			Input:   outer(t, weeklyTrend, regionWeight),
			Method:  rpca.Method(i % 2),
			Options: []rpca.Option{rpca.WithObserver(func(rpca.IterationStat) { calls.Add(1) })},
		}
	}
	results, err := rpca.RunBatch(context.Background(), jobs, 0)
	require.NoError(t, err)

	total := 0
	for _, r := range results {
		require.NotNil(t, r)
		assert.True(t, r.Converged)
		total += r.Iterations
	}
	assert.Equal(t, int32(total), calls.Load())
}

func TestRunBatch_Errors(t *testing.T) {
	_, m := spiked(t)

	_, err := rpca.RunBatch(context.Background(), []rpca.Job{{Name: "missing"}}, 1)
	assert.ErrorIs(t, err, rpca.ErrInvalidInput)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = rpca.RunBatch(context.Background(), []rpca.Job{
		{Name: "ok", Input: m},
		{Name: "bad", Input: m, Options: []rpca.Option{rpca.WithRho(0.5)}},
	}, 1)
	assert.ErrorIs(t, err, rpca.ErrInvalidOption)
	assert.ErrorContains(t, err, "job 1 (bad)")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = rpca.RunBatch(ctx, []rpca.Job{{Name: "late", Input: m}}, 1)
	assert.ErrorIs(t, err, context.Canceled)

	results, err := rpca.RunBatch(context.Background(), nil, 4)
	require.NoError(t, err)
	assert.Empty(t, results)
}
