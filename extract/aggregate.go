// Package extract: bundle aggregation.
package extract

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/grafeat/feature"
	"github.com/katalvlaran/grafeat/matrix"
)

// FeatureMatrix is the rectangular extraction output: one row per input
// graph (input order), one column per feature name.
type FeatureMatrix struct {
	// Dense holds the cell values.
	Dense *matrix.Dense

	// Columns names each column, aligned with Dense's column order.
	Columns []string
}

// ColumnInfo traces one matrix column back to its origin.
type ColumnInfo struct {
	// Class is the originating class shortname.
	Class string

	// Description is the human explanation of the feature.
	Description string

	// Score rates interpretability 1–5.
	Score feature.InterpretabilityScore

	// Expanded is true for columns produced by statistics expansion.
	Expanded bool
}

// FeatureInfo is per-column metadata keyed by feature name.
type FeatureInfo map[string]ColumnInfo

// aggregate transposes per-graph bundles into a FeatureMatrix plus its
// FeatureInfo table.
//
// The first bundle establishes the authoritative column set (class order
// from the registry, record order within each class). A later bundle
// missing a column gets the NaN sentinel rather than an error: schema
// mismatch is a data condition, not a programming one.
func aggregate(bundles []feature.Bundle, reg *Registry, logger zerolog.Logger) (*FeatureMatrix, FeatureInfo, error) {
	if len(bundles) == 0 {
		return nil, nil, ErrNoGraphs
	}

	// Reference schema from the first bundle: ordered (class, record) walk.
	type column struct {
		class string
		name  string
	}
	var columns []column
	var names []string
	info := make(FeatureInfo)
	for _, ent := range reg.entries {
		for _, rec := range bundles[0][ent.desc.Shortname] {
			columns = append(columns, column{class: ent.desc.Shortname, name: rec.Name})
			names = append(names, rec.Name)
			info[rec.Name] = ColumnInfo{
				Class:       ent.desc.Shortname,
				Description: rec.Description,
				Score:       rec.Score,
				Expanded:    rec.Expanded,
			}
		}
	}

	dense, err := matrix.NewDense(len(bundles), len(columns))
	if err != nil {
		return nil, nil, fmt.Errorf("extract: aggregate: %w", err)
	}

	for i, bundle := range bundles {
		// Per-class name → value lookup for this graph.
		lookup := make(map[string]map[string]float64, len(bundle))
		for class, records := range bundle {
			byName := make(map[string]float64, len(records))
			for _, rec := range records {
				byName[rec.Name] = rec.Value
			}
			lookup[class] = byName
		}

		for j, col := range columns {
			value, ok := lookup[col.class][col.name]
			if !ok {
				logger.Debug().
					Int("graph", i).
					Str("class", col.class).
					Str("feature", col.name).
					Msg("schema mismatch; filling with NaN")
				value = math.NaN()
			}
			if serr := dense.Set(i, j, value); serr != nil {
				return nil, nil, fmt.Errorf("extract: aggregate: %w", serr)
			}
		}
	}

	return &FeatureMatrix{Dense: dense, Columns: names}, info, nil
}
