// Package fluidc: tunable options and error definitions.
package fluidc

import (
	"errors"
	"math/rand"
)

// Sentinel errors for partition preconditions. All of them fail fast:
// no iteration runs and no partial partition is ever returned.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("fluidc: graph is nil")

	// ErrDirected is returned for directed graphs; fluid communities are
	// defined on undirected graphs only.
	ErrDirected = errors.New("fluidc: directed graphs not supported")

	// ErrDisconnected is returned when the graph is not connected.
	ErrDisconnected = errors.New("fluidc: graph must be connected")

	// ErrNonPositiveK is returned when k < 1.
	ErrNonPositiveK = errors.New("fluidc: k must be positive")

	// ErrKTooLarge is returned when k exceeds the vertex count.
	ErrKTooLarge = errors.New("fluidc: k exceeds vertex count")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("fluidc: invalid option supplied")
)

// Tolerance within which a community's vote counts as maximal.
const voteTolerance = 1e-4

// DefaultMaxIterations caps the number of full vertex sweeps.
const DefaultMaxIterations = 100

// Option configures Partition behavior via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when Partition is invoked.
type Option func(*Options)

// Options holds parameters to customize a Partition run.
type Options struct {
	// MaxIterations caps the number of vertex sweeps: the run stops
	// non-converged after the first sweep past the cap, so
	// Result.Iterations can reach MaxIterations+1.
	MaxIterations int

	// Rng drives every random decision of the run: seed placement, sweep
	// order, and tie-breaking. Never global state.
	Rng *rand.Rand

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - MaxIterations = DefaultMaxIterations
//   - Rng seeded with 0 (fixed seed: deterministic unless overridden)
func DefaultOptions() Options {
	return Options{
		MaxIterations: DefaultMaxIterations,
		Rng:           rand.New(rand.NewSource(0)),
	}
}

// WithMaxIterations sets the sweep cap. Values < 1 surface as
// ErrOptionViolation.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = ErrOptionViolation

			return
		}
		o.MaxIterations = n
	}
}

// WithSeed replaces the generator with one seeded at seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies an existing generator. Nil surfaces as
// ErrOptionViolation.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) {
		if rng == nil {
			o.err = ErrOptionViolation

			return
		}
		o.Rng = rng
	}
}

// Result is the outcome of a Partition run.
type Result struct {
	// Communities lists each community's member IDs, sorted ascending,
	// indexed by community. Together they partition the vertex set
	// exactly: no omissions, no overlaps. A community abandoned during
	// iteration appears as an empty slice.
	Communities [][]string

	// Densities holds 1 / len(Communities[i]) per community at the moment
	// of output (+Inf for an abandoned, empty community).
	Densities []float64

	// Converged is true when a full sweep produced zero reassignments,
	// false when the sweep cap terminated the run.
	Converged bool

	// Iterations is the number of completed sweeps.
	Iterations int
}
