// SPDX-License-Identifier: MIT

package rpca

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lowrank/matrix"
)

// Job is one independent decomposition inside a batch.
type Job struct {
	Name    string // free-form, used in errors only
	Input   matrix.Matrix
	Method  Method
	Options []Option
}

// RunBatch runs independent solves concurrently, at most limit at a time
// (limit ≤ 0 means no bound). Results are index-aligned with jobs.
// MAIN DESCRIPTION:
//   - Solves never share mutable state: every solver copies its input and
//     owns its iterate. Inputs are only read, so two jobs may reference the
//     same matrix.
//
// Behavior highlights:
//   - The first failing job cancels the group; jobs that have not started yet
//     observe the cancellation and return ctx.Err().
//   - A running solve is never interrupted; its iteration budget is the only
//     stop inside a solve.
//   - Observers installed through Job.Options run on the job's goroutine.
//
// Errors:
//   - ErrInvalidInput (+ matrix.ErrNilMatrix) for a job without input, before
//     anything runs.
//   - the first job error (annotated with the job index and name), or ctx.Err().
func RunBatch(ctx context.Context, jobs []Job, limit int) ([]*Result, error) {
	for i, job := range jobs {
		if err := matrix.ValidateNotNil(job.Input); err != nil {
			return nil, invalidInput(opBatch, fmt.Errorf("job %d (%s): %w", i, job.Name, err))
		}
	}

	results := make([]*Result, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := Decompose(job.Input, job.Method, job.Options...)
			if err != nil {
				return fmt.Errorf("rpca.%s: job %d (%s): %w", opBatch, i, job.Name, err)
			}
			results[i] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
