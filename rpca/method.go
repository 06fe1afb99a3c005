// SPDX-License-Identifier: MIT

package rpca

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lowrank/matrix"
)

// Method selects a decomposition solver.
type Method int

const (
	// MethodPCP is convex Principal Component Pursuit.
	MethodPCP Method = iota
	// MethodIRLS is the iteratively reweighted (non-convex) variant.
	MethodIRLS
)

// String returns the canonical lower-case name ("pcp", "irls").
func (m Method) String() string {
	switch m {
	case MethodPCP:
		return "pcp"
	case MethodIRLS:
		return "irls"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// ParseMethod maps a case-insensitive name to a Method.
// Accepted: "pcp", "irls" (and the long forms "convex", "nonconvex").
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pcp", "convex":
		return MethodPCP, nil
	case "irls", "nonconvex", "non-convex":
		return MethodIRLS, nil
	default:
		return 0, invalidInput("ParseMethod", fmt.Errorf("%q: %w", s, ErrUnknownMethod))
	}
}

// Decompose dispatches to PCP or IRLS.
func Decompose(m matrix.Matrix, method Method, opts ...Option) (*Result, error) {
	switch method {
	case MethodPCP:
		return PCP(m, opts...)
	case MethodIRLS:
		return IRLS(m, opts...)
	default:
		return nil, invalidInput(opDecompose, fmt.Errorf("%v: %w", method, ErrUnknownMethod))
	}
}
