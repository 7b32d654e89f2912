// Package extract: the compiled feature registry.
package extract

import (
	"fmt"

	"github.com/katalvlaran/grafeat/builder"
	"github.com/katalvlaran/grafeat/core"
	"github.com/katalvlaran/grafeat/feature"
)

// canaryOrder is the size of the fixed canary graph (a complete graph)
// every candidate class must survive at registry time.
const canaryOrder = 3

// entry binds an active class to the schema its canary run established.
type entry struct {
	class feature.Class
	desc  feature.Descriptor

	// canary holds the records of the canary run. They double as the
	// class's expected schema: the dispatcher copies their metadata when
	// it NaN-fills a failed class, and the aggregator uses their order.
	canary []feature.Record
}

// Registry is the immutable set of active feature classes for one mode.
// Build it once at start-up; it is safe for concurrent use afterwards.
type Registry struct {
	mode    feature.Mode
	entries []entry
}

// NewRegistry filters classes by mode, validates each survivor against the
// canary graph, and returns the immutable registry.
//
// Validation is fail-fast: an unknown mode returns ErrUnknownMode; a
// duplicate shortname, an empty descriptor, a feature name already claimed
// by another class, or a canary run that errors or panics returns ErrBoot
// with context. A class failing here is
// structurally broken — aborting start-up beats NaN-filling every batch.
func NewRegistry(classes []feature.Class, mode feature.Mode) (*Registry, error) {
	if !feature.KnownMode(mode) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}

	canaryGraph := builder.MustGraph(nil, builder.Complete(canaryOrder))

	reg := &Registry{mode: mode}
	seen := make(map[string]struct{})
	featureOwner := make(map[string]string)
	for _, cls := range classes {
		desc := cls.Descriptor()
		if desc.Shortname == "" || desc.Name == "" {
			return nil, fmt.Errorf("%w: class %q has an incomplete descriptor", ErrBoot, desc.Name)
		}
		if _, dup := seen[desc.Shortname]; dup {
			return nil, fmt.Errorf("%w: duplicate shortname %q", ErrBoot, desc.Shortname)
		}
		seen[desc.Shortname] = struct{}{}

		if !desc.ActiveIn(mode) {
			continue
		}

		records, err := safeCompute(cls, canaryGraph, feature.NewCache())
		if err != nil {
			return nil, fmt.Errorf("%w: class %q canary run: %w", ErrBoot, desc.Shortname, err)
		}
		if len(records) == 0 {
			return nil, fmt.Errorf("%w: class %q registered no features", ErrBoot, desc.Shortname)
		}
		for _, record := range records {
			if owner, taken := featureOwner[record.Name]; taken {
				return nil, fmt.Errorf("%w: feature %q registered by both %q and %q",
					ErrBoot, record.Name, owner, desc.Shortname)
			}
			featureOwner[record.Name] = desc.Shortname
		}

		reg.entries = append(reg.entries, entry{class: cls, desc: desc, canary: records})
	}

	if len(reg.entries) == 0 {
		return nil, fmt.Errorf("%w: mode %q", ErrNoClasses, mode)
	}

	return reg, nil
}

// Mode returns the mode the registry was built for.
func (r *Registry) Mode() feature.Mode { return r.mode }

// Len returns the number of active classes.
func (r *Registry) Len() int { return len(r.entries) }

// Shortnames returns the active class shortnames in registry order.
func (r *Registry) Shortnames() []string {
	out := make([]string, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.desc.Shortname
	}

	return out
}

// safeCompute runs cls.Compute on a fresh recorder, converting panics into
// errors so one broken module cannot take down boot or a batch.
func safeCompute(cls feature.Class, g *core.Graph, cache *feature.Cache) (records []feature.Record, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic: %v", rec)
		}
	}()

	recorder := feature.NewRecorder()
	if err = cls.Compute(recorder, g, cache); err != nil {
		return nil, err
	}

	return recorder.Records(), nil
}
