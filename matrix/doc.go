// SPDX-License-Identifier: MIT
// Package matrix provides the dense numeric kernel under feature extraction.
//
// Purpose:
//   - Dense: row-major float64 matrix backing the feature matrix and the
//     spectral feature class.
//   - Column scans: per-column finiteness and variance checks used by the
//     column filter.
//   - Summarize: the fixed six-operator summary (mean, max, min, median,
//     std, sum) used for statistics expansion of sequence features.
//   - Eigen: symmetric eigenvalues via deterministic Jacobi sweeps.
//   - Adjacency / Laplacian: graph → matrix adapters with ID-ascending
//     vertex order.
//
// Determinism:
//   - Fixed i→j traversal for all loops; stable vertex order (ID asc);
//     no randomness anywhere in this package.
//
// Notes:
//   - Std is the population standard deviation (divide by n, not n-1),
//     matching the summary semantics used across the feature catalogue.
package matrix
