package features

import "github.com/katalvlaran/grafeat/feature"

// DefaultClasses returns the compiled built-in feature set in its
// canonical order. The slice is freshly allocated per call; callers may
// append their own classes before building a registry.
//
// Order matters: it fixes class order in every bundle and therefore the
// column order of the final matrix.
func DefaultClasses() []feature.Class {
	return []feature.Class{
		DegreeStats{},
		NodeFeatureStats{},
		ShortestPathStats{},
		Spectrum{},
		FluidCommunities{},
		CliqueNumber{},
	}
}
