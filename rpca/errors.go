// SPDX-License-Identifier: MIT

// Package rpca: sentinel error set.
//
// Two categories are exposed and every returned error matches exactly one:
//   - ErrInvalidInput: precondition violation detected before any iteration
//     (nil/empty/non-finite matrix, out-of-range parameter). No partial output.
//   - ErrComputation: the underlying linear-algebra routine failed (SVD did not
//     converge). Depends on the numerics, not on the caller's input shape.
//
// The concrete cause is joined to the category, so errors.Is also matches the
// cause (e.g. matrix.ErrNaNInf, ErrInvalidOption, matrix.ErrSVDFailed).

package rpca

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput signals a precondition violation; retrying with the same
	// arguments can never succeed.
	ErrInvalidInput = errors.New("rpca: invalid input")

	// ErrInvalidOption marks an option or config value outside its documented range.
	// Always joined with ErrInvalidInput.
	ErrInvalidOption = errors.New("rpca: invalid option")

	// ErrComputation signals a numerical failure inside an iteration.
	ErrComputation = errors.New("rpca: computation failed")

	// ErrUnknownMethod is returned by ParseMethod and Decompose for an unsupported solver.
	// Always joined with ErrInvalidInput.
	ErrUnknownMethod = errors.New("rpca: unknown method")
)

// invalidInput joins the ErrInvalidInput category with a concrete cause.
func invalidInput(op string, cause error) error {
	return fmt.Errorf("rpca.%s: %w: %w", op, ErrInvalidInput, cause)
}

// computationFailed joins the ErrComputation category with a concrete cause.
func computationFailed(op string, cause error) error {
	return fmt.Errorf("rpca.%s: %w: %w", op, ErrComputation, cause)
}

// optionErrorf builds an ErrInvalidOption cause with a formatted detail.
func optionErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidOption}, args...)...)
}
