// SPDX-License-Identifier: MIT
// Package matrix: symmetric eigenvalues via Jacobi sweeps.
package matrix

import (
	"math"
	"sort"
)

const opEigen = "Eigen"

// Default Eigen parameters, exported so feature classes and tests share
// one source of truth.
const (
	// DefaultEigenTol is the off-diagonal convergence threshold.
	DefaultEigenTol = 1e-10

	// DefaultEigenMaxIter caps the number of Jacobi sweeps. Each sweep
	// performs up to n(n-1)/2 rotations, so the rotation budget grows
	// with the matrix.
	DefaultEigenMaxIter = 100
)

// symTol bounds |A[i,j]-A[j,i]| for the symmetry pre-check.
const symTol = 1e-9

// Eigen computes the eigenvalues of a symmetric matrix via Jacobi
// rotations and returns them sorted ascending.
//
// maxIter caps full sweeps, each performing up to n(n-1)/2 classical
// pivot rotations. The pivot scan is a fixed i→j traversal picking the
// largest |A[p,q]|, so results are deterministic for equal input. If the
// largest off-diagonal entry still exceeds tol after maxIter sweeps, the
// computation fails with ErrEigenFailed.
//
// Errors: ErrNilMatrix, ErrBadDimension (non-square), ErrNotSymmetric,
// ErrEigenFailed.
// Complexity: O(maxIter · n⁴) time worst case, O(n²) space for the
// working copy.
func Eigen(m *Dense, tol float64, maxIter int) ([]float64, error) {
	if m == nil {
		return nil, matrixErrorf(opEigen, ErrNilMatrix)
	}
	n := m.rows
	if n != m.cols {
		return nil, matrixErrorf(opEigen, ErrBadDimension)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(m.data[i*n+j]-m.data[j*n+i]) > symTol {
				return nil, matrixErrorf(opEigen, ErrNotSymmetric)
			}
		}
	}

	// Work on a copy: callers keep their matrix intact.
	a := m.Clone()

	var (
		p, q        int     // current pivot indices
		maxOff, off float64 // pivot scan state
	)
	rotationsPerSweep := n * (n - 1) / 2
	for sweep := 0; sweep < maxIter; sweep++ {
		for rot := 0; rot < rotationsPerSweep; rot++ {
			// Find pivot (p,q) maximizing |A[p,q]| in fixed i→j order.
			maxOff = 0
			for i := 0; i < n; i++ {
				base := i * n
				for j := i + 1; j < n; j++ {
					off = math.Abs(a.data[base+j])
					if off > maxOff {
						maxOff, p, q = off, i, j
					}
				}
			}
			if maxOff < tol {
				return sortedDiagonal(a, n), nil
			}

			// Rotation parameters from A[p,p], A[q,q], A[p,q].
			app := a.data[p*n+p]
			aqq := a.data[q*n+q]
			apq := a.data[p*n+q]

			theta := (aqq - app) / (2 * apq)
			t := 1 / (math.Abs(theta) + math.Sqrt(theta*theta+1))
			if theta < 0 {
				t = -t
			}
			c := 1 / math.Sqrt(t*t+1)
			s := t * c

			// Apply the rotation to rows/columns p and q.
			for i := 0; i < n; i++ {
				if i == p || i == q {
					continue
				}
				aip := a.data[i*n+p]
				aiq := a.data[i*n+q]
				newIP := c*aip - s*aiq
				newIQ := s*aip + c*aiq
				a.data[i*n+p], a.data[p*n+i] = newIP, newIP
				a.data[i*n+q], a.data[q*n+i] = newIQ, newIQ
			}
			a.data[p*n+p] = app - t*apq
			a.data[q*n+q] = aqq + t*apq
			a.data[p*n+q], a.data[q*n+p] = 0, 0
		}
	}

	// One final scan: the cap may land exactly on convergence.
	maxOff = 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if v := math.Abs(a.data[i*n+j]); v > maxOff {
				maxOff = v
			}
		}
	}
	if maxOff < tol {
		return sortedDiagonal(a, n), nil
	}

	return nil, matrixErrorf(opEigen, ErrEigenFailed)
}

// sortedDiagonal extracts the diagonal of a and sorts it ascending.
func sortedDiagonal(a *Dense, n int) []float64 {
	vals := make([]float64, n)
	for i := 0; i < n; i++ {
		vals[i] = a.data[i*n+i]
	}
	sort.Float64s(vals)

	return vals
}
