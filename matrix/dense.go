// SPDX-License-Identifier: MIT
// Package matrix: Dense implementation.
//
// Dense stores values in one flat row-major []float64 buffer; row i,
// column j lives at data[i*cols+j]. All loops traverse i→j for stable
// results.
package matrix

import "math"

// Operation name constants for unified error wrapping.
const (
	opNewDense = "NewDense"
	opAt       = "At"
	opSet      = "Set"
	opColumn   = "Column"
)

// Dense is a row-major dense float64 matrix.
type Dense struct {
	rows, cols int
	data       []float64
}

// NewDense allocates a zero-initialized rows×cols matrix.
// Returns ErrBadDimension for negative dimensions; 0×N and N×0 are legal.
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(opNewDense, ErrBadDimension)
	}

	return &Dense{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the row count.
func (d *Dense) Rows() int { return d.rows }

// Cols returns the column count.
func (d *Dense) Cols() int { return d.cols }

// At returns the value at (i, j).
func (d *Dense) At(i, j int) (float64, error) {
	if i < 0 || i >= d.rows || j < 0 || j >= d.cols {
		return 0, matrixErrorf(opAt, ErrIndexOutOfRange)
	}

	return d.data[i*d.cols+j], nil
}

// Set stores v at (i, j). NaN and ±Inf are stored as-is: sentinel values
// are first-class citizens in feature matrices and are removed by the
// column filter, not rejected at ingestion.
func (d *Dense) Set(i, j int, v float64) error {
	if i < 0 || i >= d.rows || j < 0 || j >= d.cols {
		return matrixErrorf(opSet, ErrIndexOutOfRange)
	}
	d.data[i*d.cols+j] = v

	return nil
}

// Row returns a copy of row i, or nil if out of range.
func (d *Dense) Row(i int) []float64 {
	if i < 0 || i >= d.rows {
		return nil
	}
	out := make([]float64, d.cols)
	copy(out, d.data[i*d.cols:(i+1)*d.cols])

	return out
}

// Column returns a copy of column j.
func (d *Dense) Column(j int) ([]float64, error) {
	if j < 0 || j >= d.cols {
		return nil, matrixErrorf(opColumn, ErrIndexOutOfRange)
	}
	out := make([]float64, d.rows)
	for i := 0; i < d.rows; i++ {
		out[i] = d.data[i*d.cols+j]
	}

	return out, nil
}

// Clone returns a deep copy.
func (d *Dense) Clone() *Dense {
	cp := &Dense{rows: d.rows, cols: d.cols, data: make([]float64, len(d.data))}
	copy(cp.data, d.data)

	return cp
}

// SelectColumns returns a new Dense containing the listed columns of d, in
// the given order. Indices out of range yield ErrIndexOutOfRange.
func (d *Dense) SelectColumns(idx []int) (*Dense, error) {
	out, err := NewDense(d.rows, len(idx))
	if err != nil {
		return nil, err
	}
	for pos, j := range idx {
		if j < 0 || j >= d.cols {
			return nil, matrixErrorf(opColumn, ErrIndexOutOfRange)
		}
		for i := 0; i < d.rows; i++ {
			out.data[i*out.cols+pos] = d.data[i*d.cols+j]
		}
	}

	return out, nil
}

// AllFinite reports whether xs contains no NaN and no ±Inf.
func AllFinite(xs []float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}

	return true
}
