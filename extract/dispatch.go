// Package extract: the per-graph dispatcher.
//
// The dispatcher applies every active class to every graph, producing one
// bundle per graph in input order. Parallel fan-out uses a bounded
// errgroup with results written into an index-addressed slice, so
// completion order can never leak into output order.
package extract

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/grafeat/core"
	"github.com/katalvlaran/grafeat/feature"
)

// computeBundles produces one feature.Bundle per input graph, realigned to
// input order regardless of worker count. Per-(graph, class) failures are
// absorbed into NaN records; the only returned errors are context
// cancellation between graphs.
func computeBundles(ctx context.Context, graphs []*core.Graph, reg *Registry, workers int, logger zerolog.Logger) ([]feature.Bundle, error) {
	bundles := make([]feature.Bundle, len(graphs))

	if workers == 1 {
		for i, g := range graphs {
			// Cancellation is observed only between graphs: a graph's
			// pass always runs to completion once started.
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("extract: dispatch: %w", err)
			}
			bundles[i] = computeGraph(g, reg, logger.With().Int("graph", i).Logger())
		}

		return bundles, nil
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, g := range graphs {
		i, g := i, g
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			bundles[i] = computeGraph(g, reg, logger.With().Int("graph", i).Logger())

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("extract: dispatch: %w", err)
	}

	return bundles, nil
}

// computeGraph runs every active class on g with a fresh per-pass cache.
// The cache dies with the pass; workers never share memoized structures.
func computeGraph(g *core.Graph, reg *Registry, logger zerolog.Logger) feature.Bundle {
	cache := feature.NewCache()
	bundle := make(feature.Bundle, reg.Len())

	for _, ent := range reg.entries {
		start := time.Now()
		records, err := safeCompute(ent.class, g, cache)
		if err != nil {
			// Class-level failure: the class's whole expected schema
			// becomes NaN for this graph and the batch moves on.
			logger.Debug().
				Str("class", ent.desc.Shortname).
				Err(err).
				Msg("feature class failed; filling schema with NaN")
			records = nanRecords(ent, err)
		}
		bundle[ent.desc.Shortname] = records

		logger.Trace().
			Str("class", ent.desc.Shortname).
			Dur("elapsed", time.Since(start)).
			Msg("feature class computed")
	}

	return bundle
}

// nanRecords copies the class's canary schema with every value replaced by
// the NaN sentinel and the class failure retained on each record.
func nanRecords(ent entry, cause error) []feature.Record {
	out := make([]feature.Record, len(ent.canary))
	for i, template := range ent.canary {
		template.Value = math.NaN()
		template.Err = cause
		out[i] = template
	}

	return out
}
