// Package extract: sentinel errors.
//
// Error policy: sentinels are branched with errors.Is; context is attached
// with %w at the failure site. Only ErrBoot and input-validation sentinels
// can abort an extraction — per-graph computation failures never surface
// as errors (they become NaN cells).
package extract

import "errors"

var (
	// ErrBoot indicates a feature class failed registry-time validation:
	// an invalid descriptor, a duplicate shortname, a feature name
	// colliding with another class, or a canary run that errored or
	// panicked. Intentionally fatal: it marks a structurally broken
	// module, not a data-dependent failure.
	ErrBoot = errors.New("extract: feature class failed boot validation")

	// ErrUnknownMode indicates a mode outside fast|medium|slow|all.
	ErrUnknownMode = errors.New("extract: unknown mode")

	// ErrNoClasses indicates the registry would be empty for the
	// requested mode.
	ErrNoClasses = errors.New("extract: no feature classes active")

	// ErrNoGraphs indicates an empty input collection.
	ErrNoGraphs = errors.New("extract: no input graphs")

	// ErrOptionViolation indicates an invalid functional option value
	// (non-positive worker count, nil class slice entry, ...).
	ErrOptionViolation = errors.New("extract: invalid option supplied")
)
