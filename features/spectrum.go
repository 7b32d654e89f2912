package features

import (
	"errors"

	"github.com/katalvlaran/grafeat/core"
	"github.com/katalvlaran/grafeat/feature"
	"github.com/katalvlaran/grafeat/matrix"
)

// errDegenerateSpectrum marks spectra too small or too flat for the
// leading-eigenvalue ratio.
var errDegenerateSpectrum = errors.New("features: degenerate spectrum")

// Spectrum summarizes the eigenvalue distributions of the adjacency,
// Laplacian and modularity matrices. Directed graphs produce asymmetric
// matrices, so every SPM column records NaN for them.
type Spectrum struct{}

// Descriptor implements feature.Class.
func (Spectrum) Descriptor() feature.Descriptor {
	return feature.Descriptor{
		Shortname: "SPM",
		Name:      "spectrum",
		Modes:     []feature.Mode{feature.ModeMedium, feature.ModeSlow},
		Encoding:  "core",
	}
}

// Compute implements feature.Class.
func (Spectrum) Compute(rec *feature.Recorder, g *core.Graph, cache *feature.Cache) error {
	rec.AddSequence("adjacency_eigenvalues", "the eigenvalue distribution of the adjacency matrix",
		feature.Score(3),
		func() ([]float64, error) { return adjacencySpectrum(g, cache) })

	rec.AddSequence("laplacian_eigenvalues", "the eigenvalue distribution of the Laplacian matrix",
		feature.Score(3),
		func() ([]float64, error) { return laplacianSpectrum(g, cache) })

	rec.AddSequence("modularity_eigenvalues", "the eigenvalue distribution of the modularity matrix",
		feature.Score(3),
		func() ([]float64, error) { return modularitySpectrum(g, cache) })

	rec.AddScalar("eigenvalue_ratio_1_0", "the ratio of the two largest adjacency eigenvalues",
		feature.Score(2),
		func() (float64, error) {
			vals, err := adjacencySpectrum(g, cache)
			if err != nil {
				return 0, err
			}
			n := len(vals)
			if n < 2 || vals[n-1] == 0 {
				return 0, errDegenerateSpectrum
			}

			return vals[n-2] / vals[n-1], nil
		})

	rec.AddScalar("spectral_gap", "the gap between the two smallest Laplacian eigenvalues",
		feature.Score(3),
		func() (float64, error) {
			vals, err := laplacianSpectrum(g, cache)
			if err != nil {
				return 0, err
			}
			if len(vals) < 2 {
				return 0, errDegenerateSpectrum
			}

			return vals[1] - vals[0], nil
		})

	return nil
}

// Cache keys for the memoized spectra.
const (
	cacheKeyAdjSpectrum = "spectrum/adjacency"
	cacheKeyLapSpectrum = "spectrum/laplacian"
	cacheKeyModSpectrum = "spectrum/modularity"
)

// adjacencySpectrum memoizes the adjacency eigenvalues (ascending).
func adjacencySpectrum(g *core.Graph, cache *feature.Cache) ([]float64, error) {
	return feature.Memo(cache, cacheKeyAdjSpectrum, func() ([]float64, error) {
		a, _, err := matrix.Adjacency(g)
		if err != nil {
			return nil, err
		}

		return matrix.Eigen(a, matrix.DefaultEigenTol, matrix.DefaultEigenMaxIter)
	})
}

// laplacianSpectrum memoizes the Laplacian eigenvalues (ascending).
func laplacianSpectrum(g *core.Graph, cache *feature.Cache) ([]float64, error) {
	return feature.Memo(cache, cacheKeyLapSpectrum, func() ([]float64, error) {
		l, _, err := matrix.Laplacian(g)
		if err != nil {
			return nil, err
		}

		return matrix.Eigen(l, matrix.DefaultEigenTol, matrix.DefaultEigenMaxIter)
	})
}

// modularitySpectrum memoizes the modularity-matrix eigenvalues
// (ascending). Edgeless graphs error out and record NaN.
func modularitySpectrum(g *core.Graph, cache *feature.Cache) ([]float64, error) {
	return feature.Memo(cache, cacheKeyModSpectrum, func() ([]float64, error) {
		b, _, err := matrix.Modularity(g)
		if err != nil {
			return nil, err
		}

		return matrix.Eigen(b, matrix.DefaultEigenTol, matrix.DefaultEigenMaxIter)
	})
}
