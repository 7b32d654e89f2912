// Package extract: the one-call orchestrator.
package extract

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/grafeat/core"
)

// Result is the outcome of one extraction run.
type Result struct {
	// Matrix is the filtered feature matrix: rows follow input graph
	// order, columns carry only non-degenerate features.
	Matrix *FeatureMatrix

	// Info maps every surviving column to its origin and metadata.
	Info FeatureInfo

	// RawColumns is the pre-filter column count, useful for reporting
	// how much the filter removed.
	RawColumns int
}

// Extract runs the full pipeline over graphs: registry boot, per-graph
// dispatch, aggregation and filtering.
//
// Errors: ErrNoGraphs for empty input, ErrOptionViolation for invalid
// options, ErrUnknownMode / ErrBoot / ErrNoClasses from registry boot,
// and the context's error when ctx is cancelled between graphs. Per-graph
// computation failures never error; they surface as NaN cells and are
// usually removed by the filter.
func Extract(ctx context.Context, graphs []*core.Graph, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if len(graphs) == 0 {
		return nil, ErrNoGraphs
	}

	reg, err := NewRegistry(o.Classes, o.Mode)
	if err != nil {
		return nil, err
	}
	o.Logger.Info().
		Str("mode", string(o.Mode)).
		Strs("classes", reg.Shortnames()).
		Int("graphs", len(graphs)).
		Int("workers", o.Workers).
		Msg("extraction started")

	start := time.Now()
	bundles, err := computeBundles(ctx, graphs, reg, o.Workers, o.Logger)
	if err != nil {
		return nil, err
	}

	fm, info, err := aggregate(bundles, reg, o.Logger)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}
	rawColumns := len(fm.Columns)

	fm, info, err = filterColumns(fm, info, o.Logger)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}

	o.Logger.Info().
		Int("raw_columns", rawColumns).
		Int("columns", len(fm.Columns)).
		Dur("elapsed", time.Since(start)).
		Msg("extraction finished")

	return &Result{Matrix: fm, Info: info, RawColumns: rawColumns}, nil
}
