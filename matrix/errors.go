// SPDX-License-Identifier: MIT
// Package matrix: sentinel errors.
package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrNilMatrix indicates a nil *Dense was passed to an operation.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrBadDimension indicates a non-positive or mismatched dimension.
	ErrBadDimension = errors.New("matrix: invalid dimension")

	// ErrIndexOutOfRange indicates an (i,j) access outside the matrix.
	ErrIndexOutOfRange = errors.New("matrix: index out of range")

	// ErrNotSymmetric indicates Eigen received an asymmetric matrix.
	ErrNotSymmetric = errors.New("matrix: matrix is not symmetric")

	// ErrEigenFailed indicates Jacobi sweeps did not reach the tolerance
	// within the iteration cap.
	ErrEigenFailed = errors.New("matrix: eigen iteration did not converge")

	// ErrGraphNil indicates a nil graph was passed to an adapter.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrNoEdges indicates an adapter that needs at least one edge
	// (the modularity matrix divides by the edge count) got none.
	ErrNoEdges = errors.New("matrix: graph has no edges")
)

// matrixErrorf wraps err with the operation tag for unified context.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
