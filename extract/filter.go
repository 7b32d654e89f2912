// Package extract: degenerate-column filtering.
package extract

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/grafeat/matrix"
)

// filterColumns drops columns that cannot support downstream modeling:
// any column containing a non-finite value (NaN or ±Inf) in any row, and
// any column whose values are identical across every row. The two rules
// commute; surviving columns keep their order, and the returned
// FeatureInfo is restricted to survivors.
func filterColumns(fm *FeatureMatrix, info FeatureInfo, logger zerolog.Logger) (*FeatureMatrix, FeatureInfo, error) {
	var keepIdx []int
	keepNames := make([]string, 0, len(fm.Columns))

	for j, name := range fm.Columns {
		col, err := fm.Dense.Column(j)
		if err != nil {
			return nil, nil, fmt.Errorf("extract: filter: %w", err)
		}
		if !matrix.AllFinite(col) {
			logger.Debug().Str("feature", name).Msg("dropping column: non-finite values")

			continue
		}
		if constantColumn(col) {
			logger.Debug().Str("feature", name).Msg("dropping column: zero variance")

			continue
		}
		keepIdx = append(keepIdx, j)
		keepNames = append(keepNames, name)
	}

	kept, err := fm.Dense.SelectColumns(keepIdx)
	if err != nil {
		return nil, nil, fmt.Errorf("extract: filter: %w", err)
	}

	keptInfo := make(FeatureInfo, len(keepNames))
	for _, name := range keepNames {
		keptInfo[name] = info[name]
	}

	return &FeatureMatrix{Dense: kept, Columns: keepNames}, keptInfo, nil
}

// constantColumn reports whether every value equals the first one.
// Exact comparison on purpose: a column is constant only when every graph
// produced the identical value.
func constantColumn(col []float64) bool {
	for _, v := range col[1:] {
		if v != col[0] {
			return false
		}
	}

	return true
}
