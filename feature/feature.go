// Package feature: descriptor, mode and class contract declarations.
package feature

import (
	"github.com/katalvlaran/grafeat/core"
)

// Mode names an extraction cost tier. Classes declare the tiers they are
// cheap enough for; ModeAll activates every class regardless.
type Mode string

// The recognized modes.
const (
	ModeFast   Mode = "fast"
	ModeMedium Mode = "medium"
	ModeSlow   Mode = "slow"
	ModeAll    Mode = "all"
)

// KnownMode reports whether m is one of the four recognized modes.
func KnownMode(m Mode) bool {
	switch m {
	case ModeFast, ModeMedium, ModeSlow, ModeAll:
		return true
	default:
		return false
	}
}

// InterpretabilityScore is a hand-assigned 1–5 rating of how explainable
// a feature is to a human analyst (5 = fully interpretable).
type InterpretabilityScore int

// Interpretability bounds.
const (
	MinInterpretability InterpretabilityScore = 1
	MaxInterpretability InterpretabilityScore = 5
)

// Score clamps n into the valid interpretability range.
func Score(n int) InterpretabilityScore {
	s := InterpretabilityScore(n)
	if s < MinInterpretability {
		return MinInterpretability
	}
	if s > MaxInterpretability {
		return MaxInterpretability
	}

	return s
}

// Descriptor identifies a feature class. Immutable once registered.
type Descriptor struct {
	// Shortname is the class key, unique across the registry ("DS", "SPM"...).
	Shortname string

	// Name is the human-readable class name ("degree_statistics").
	Name string

	// Modes lists the cost tiers this class participates in.
	Modes []Mode

	// Encoding tags the graph representation the class consumes.
	Encoding string
}

// ActiveIn reports whether the class runs under the requested mode.
// ModeAll ignores declared modes and activates everything.
func (d Descriptor) ActiveIn(mode Mode) bool {
	if mode == ModeAll {
		return true
	}
	for _, m := range d.Modes {
		if m == mode {
			return true
		}
	}

	return false
}

// Class is the capability every feature-computation module exposes.
//
// Compute registers this class's features for g on rec, using cache for
// expensive shared sub-results. Implementations are stateless: the engine
// may call Compute concurrently on different graphs.
//
// Returning an error marks the entire class failed for g; the dispatcher
// fills the class's expected schema with NaN and the batch continues.
type Class interface {
	Descriptor() Descriptor
	Compute(rec *Recorder, g *core.Graph, cache *Cache) error
}

// Bundle is one graph's raw extraction result: class shortname → ordered
// feature records (sequences already expanded to scalars).
type Bundle map[string][]Record
