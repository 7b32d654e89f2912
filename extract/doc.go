// Package extract is the feature-extraction engine: it selects and
// validates the active feature classes, fans per-graph computation across
// workers, aggregates raw per-graph bundles into a rectangular matrix, and
// filters out columns that cannot support downstream modeling.
//
// Pipeline:
//
//	NewRegistry  — mode selection + canary validation (fail-fast ErrBoot)
//	dispatch     — one bundle per graph, sequential or bounded-parallel,
//	               per-(graph, class) failure isolation via NaN sentinels
//	aggregate    — bundles → FeatureMatrix + FeatureInfo, schema gaps
//	               filled with NaN
//	filter       — drop non-finite and zero-variance columns
//
// Guarantees:
//   - Row i of the matrix is graph i of the input, for any worker count.
//   - A failing class never aborts a batch; its columns read NaN for the
//     affected graph.
//   - Identical input, mode and worker count produce identical matrices;
//     worker count itself never changes a single cell.
//
// Logging uses zerolog; the default logger is a no-op, wire one with
// WithLogger to observe boot, per-graph progress and recovered failures.
package extract
