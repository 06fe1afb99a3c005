// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Attach opaque row labels (time index: dates, weeks) and column labels
//     (group index: continents, regions) to a Dense without the math ever
//     looking at them.
//   - Let a decomposition return its components under the exact labels of its input.
//
// Determinism:
//   - Label order is the caller's order; lookups go through index maps built once.

package matrix

import "fmt"

const ctxLabeled = "Labeled"

// Labeled is a Dense annotated with one label per row and one per column.
// Labels are immutable after construction; the underlying Dense is shared,
// not copied, so callers hand over ownership.
type Labeled struct {
	data     *Dense
	rows     []string
	cols     []string
	rowIndex map[string]int
	colIndex map[string]int
}

// NewLabeled binds row and column labels to d.
// Implementation:
//   - Stage 1: validate d non-nil and len(rows)==d.Rows(), len(cols)==d.Cols().
//   - Stage 2: build label → index maps, rejecting duplicates per axis.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrDuplicateLabel.
//
// Complexity:
//   - Time O(r + c), Space O(r + c).
func NewLabeled(d *Dense, rows, cols []string) (*Labeled, error) {
	if d == nil {
		return nil, fmt.Errorf("%s: %w", ctxLabeled, ErrNilMatrix)
	}
	if len(rows) != d.r || len(cols) != d.c {
		return nil, fmt.Errorf("%s: %d×%d labels for %d×%d matrix: %w",
			ctxLabeled, len(rows), len(cols), d.r, d.c, ErrDimensionMismatch)
	}
	rowIndex, err := indexLabels(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: rows: %w", ctxLabeled, err)
	}
	colIndex, err := indexLabels(cols)
	if err != nil {
		return nil, fmt.Errorf("%s: cols: %w", ctxLabeled, err)
	}

	return &Labeled{
		data:     d,
		rows:     append([]string(nil), rows...),
		cols:     append([]string(nil), cols...),
		rowIndex: rowIndex,
		colIndex: colIndex,
	}, nil
}

func indexLabels(labels []string) (map[string]int, error) {
	idx := make(map[string]int, len(labels))
	for i, l := range labels {
		if _, dup := idx[l]; dup {
			return nil, fmt.Errorf("%q: %w", l, ErrDuplicateLabel)
		}
		idx[l] = i
	}

	return idx, nil
}

// Dense returns the underlying matrix (shared, not copied).
func (l *Labeled) Dense() *Dense { return l.data }

// RowLabels returns a copy of the row labels in row order.
func (l *Labeled) RowLabels() []string { return append([]string(nil), l.rows...) }

// ColLabels returns a copy of the column labels in column order.
func (l *Labeled) ColLabels() []string { return append([]string(nil), l.cols...) }

// Value returns the entry addressed by (row label, column label).
// Errors: ErrUnknownLabel.
func (l *Labeled) Value(row, col string) (float64, error) {
	i, ok := l.rowIndex[row]
	if !ok {
		return 0, fmt.Errorf("%s.Value: row %q: %w", ctxLabeled, row, ErrUnknownLabel)
	}
	j, ok := l.colIndex[col]
	if !ok {
		return 0, fmt.Errorf("%s.Value: col %q: %w", ctxLabeled, col, ErrUnknownLabel)
	}

	return l.data.data[i*l.data.c+j], nil
}

// Column returns a copy of the column addressed by label, in row order.
// Errors: ErrUnknownLabel.
func (l *Labeled) Column(col string) ([]float64, error) {
	j, ok := l.colIndex[col]
	if !ok {
		return nil, fmt.Errorf("%s.Column: %q: %w", ctxLabeled, col, ErrUnknownLabel)
	}
	out := make([]float64, l.data.r)
	for i := range out {
		out[i] = l.data.data[i*l.data.c+j]
	}

	return out, nil
}

// Relabel binds this matrix's labels to another same-shape Dense.
// Used to return decomposition components under the input's labels.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (l *Labeled) Relabel(d *Dense) (*Labeled, error) {
	if d == nil {
		return nil, fmt.Errorf("%s.Relabel: %w", ctxLabeled, ErrNilMatrix)
	}
	if d.r != l.data.r || d.c != l.data.c {
		return nil, fmt.Errorf("%s.Relabel: %w", ctxLabeled, ErrDimensionMismatch)
	}

	return &Labeled{
		data:     d,
		rows:     l.rows,
		cols:     l.cols,
		rowIndex: l.rowIndex,
		colIndex: l.colIndex,
	}, nil
}
