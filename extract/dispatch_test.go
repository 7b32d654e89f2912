package extract

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grafeat/builder"
	"github.com/katalvlaran/grafeat/core"
	"github.com/katalvlaran/grafeat/feature"
)

// stubClass is a scriptable feature.Class for dispatcher tests.
type stubClass struct {
	desc    feature.Descriptor
	compute func(rec *feature.Recorder, g *core.Graph, cache *feature.Cache) error
}

func (s stubClass) Descriptor() feature.Descriptor { return s.desc }

func (s stubClass) Compute(rec *feature.Recorder, g *core.Graph, cache *feature.Cache) error {
	return s.compute(rec, g, cache)
}

// okClass records the vertex count under a single column.
func okClass() feature.Class {
	return stubClass{
		desc: feature.Descriptor{Shortname: "OK", Name: "order", Modes: []feature.Mode{feature.ModeFast}},
		compute: func(rec *feature.Recorder, g *core.Graph, _ *feature.Cache) error {
			rec.AddScalar("order", "vertex count", feature.Score(5), func() (float64, error) {
				return float64(g.VertexCount()), nil
			})

			return nil
		},
	}
}

var errTooBig = errors.New("graph too big")

// flakyClass succeeds on graphs of at most four vertices and fails as a
// whole class otherwise. Small enough to pass the canary.
func flakyClass() feature.Class {
	return stubClass{
		desc: feature.Descriptor{Shortname: "FL", Name: "flaky", Modes: []feature.Mode{feature.ModeFast}},
		compute: func(rec *feature.Recorder, g *core.Graph, _ *feature.Cache) error {
			if g.VertexCount() > 4 {
				return errTooBig
			}
			rec.AddScalar("flaky_order", "vertex count, grudgingly", feature.Score(3), func() (float64, error) {
				return float64(g.VertexCount()), nil
			})

			return nil
		},
	}
}

// TestComputeBundles_FailureIsolation verifies a class failing on one graph
// poisons only its own schema on that graph: the other class's records and
// every other graph stay intact.
func TestComputeBundles_FailureIsolation(t *testing.T) {
	reg, err := NewRegistry([]feature.Class{okClass(), flakyClass()}, feature.ModeFast)
	require.NoError(t, err)

	graphs := []*core.Graph{
		builder.MustGraph(nil, builder.Complete(3)), // flaky succeeds
		builder.MustGraph(nil, builder.Cycle(5)),    // flaky fails
	}

	bundles, err := computeBundles(context.Background(), graphs, reg, 1, zerolog.Nop())
	require.NoError(t, err)
	require.Len(t, bundles, 2)

	// Graph 0: both classes healthy.
	require.Len(t, bundles[0]["FL"], 1)
	assert.Equal(t, 3.0, bundles[0]["FL"][0].Value)
	assert.NoError(t, bundles[0]["FL"][0].Err)

	// Graph 1: flaky failed, its schema is NaN-filled with the cause kept.
	require.Len(t, bundles[1]["FL"], 1)
	failed := bundles[1]["FL"][0]
	assert.Equal(t, "flaky_order", failed.Name, "NaN fill keeps the canary schema")
	assert.True(t, math.IsNaN(failed.Value))
	assert.ErrorIs(t, failed.Err, errTooBig)

	// The healthy class on graph 1 is untouched.
	require.Len(t, bundles[1]["OK"], 1)
	assert.Equal(t, 5.0, bundles[1]["OK"][0].Value)
	assert.NoError(t, bundles[1]["OK"][0].Err)
}

// TestComputeBundles_PanicIsolation verifies a panicking class is absorbed
// the same way an erroring one is.
func TestComputeBundles_PanicIsolation(t *testing.T) {
	panicky := stubClass{
		desc: feature.Descriptor{Shortname: "PN", Name: "panicky", Modes: []feature.Mode{feature.ModeFast}},
		compute: func(rec *feature.Recorder, g *core.Graph, _ *feature.Cache) error {
			if g.VertexCount() > 3 {
				panic("boom")
			}
			rec.AddScalar("pn", "noop", feature.Score(1), func() (float64, error) { return 0, nil })

			return nil
		},
	}

	reg, err := NewRegistry([]feature.Class{okClass(), panicky}, feature.ModeFast)
	require.NoError(t, err)

	graphs := []*core.Graph{builder.MustGraph(nil, builder.Cycle(4))}
	bundles, err := computeBundles(context.Background(), graphs, reg, 1, zerolog.Nop())
	require.NoError(t, err)

	require.Len(t, bundles[0]["PN"], 1)
	assert.True(t, math.IsNaN(bundles[0]["PN"][0].Value))
	assert.Error(t, bundles[0]["PN"][0].Err)
	assert.Equal(t, 4.0, bundles[0]["OK"][0].Value)
}

// TestComputeBundles_WorkerInvariance verifies bundle content is identical
// whether graphs are processed sequentially or in parallel.
func TestComputeBundles_WorkerInvariance(t *testing.T) {
	reg, err := NewRegistry([]feature.Class{okClass(), flakyClass()}, feature.ModeFast)
	require.NoError(t, err)

	graphs := []*core.Graph{
		builder.MustGraph(nil, builder.Cycle(5)),
		builder.MustGraph(nil, builder.Path(3), builder.CycleAt(4, 3)),
		builder.MustGraph(nil, builder.Complete(6)),
	}

	seq, err := computeBundles(context.Background(), graphs, reg, 1, zerolog.Nop())
	require.NoError(t, err)
	par, err := computeBundles(context.Background(), graphs, reg, 3, zerolog.Nop())
	require.NoError(t, err)

	require.Len(t, par, len(seq))
	for i := range seq {
		for _, short := range reg.Shortnames() {
			sRecs, pRecs := seq[i][short], par[i][short]
			require.Len(t, pRecs, len(sRecs))
			for j := range sRecs {
				assert.Equal(t, sRecs[j].Name, pRecs[j].Name)
				if math.IsNaN(sRecs[j].Value) {
					assert.True(t, math.IsNaN(pRecs[j].Value))
				} else {
					assert.Equal(t, sRecs[j].Value, pRecs[j].Value)
				}
			}
		}
	}
}

// TestComputeBundles_CancelledContext verifies cancellation surfaces as an
// error rather than a partial result.
func TestComputeBundles_CancelledContext(t *testing.T) {
	reg, err := NewRegistry([]feature.Class{okClass()}, feature.ModeFast)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	graphs := []*core.Graph{builder.MustGraph(nil, builder.Cycle(4))}
	_, err = computeBundles(ctx, graphs, reg, 1, zerolog.Nop())
	assert.ErrorIs(t, err, context.Canceled)

	_, err = computeBundles(ctx, graphs, reg, 2, zerolog.Nop())
	assert.ErrorIs(t, err, context.Canceled)
}

// TestNewRegistry_BootFailures covers the fail-fast validation paths.
func TestNewRegistry_BootFailures(t *testing.T) {
	broken := stubClass{
		desc: feature.Descriptor{Shortname: "BR", Name: "broken", Modes: []feature.Mode{feature.ModeFast}},
		compute: func(*feature.Recorder, *core.Graph, *feature.Cache) error {
			return errors.New("always fails")
		},
	}
	panicky := stubClass{
		desc: feature.Descriptor{Shortname: "PB", Name: "panic at boot", Modes: []feature.Mode{feature.ModeFast}},
		compute: func(*feature.Recorder, *core.Graph, *feature.Cache) error {
			panic("broken module")
		},
	}
	anonymous := stubClass{
		desc: feature.Descriptor{Shortname: "", Name: "", Modes: []feature.Mode{feature.ModeFast}},
		compute: func(*feature.Recorder, *core.Graph, *feature.Cache) error { return nil },
	}
	barren := stubClass{
		desc: feature.Descriptor{Shortname: "NB", Name: "no records", Modes: []feature.Mode{feature.ModeFast}},
		compute: func(*feature.Recorder, *core.Graph, *feature.Cache) error { return nil },
	}

	_, err := NewRegistry([]feature.Class{okClass(), broken}, feature.ModeFast)
	assert.ErrorIs(t, err, ErrBoot, "canary error must abort boot")

	_, err = NewRegistry([]feature.Class{okClass(), panicky}, feature.ModeFast)
	assert.ErrorIs(t, err, ErrBoot, "canary panic must abort boot")

	_, err = NewRegistry([]feature.Class{anonymous}, feature.ModeFast)
	assert.ErrorIs(t, err, ErrBoot, "incomplete descriptor must abort boot")

	_, err = NewRegistry([]feature.Class{barren}, feature.ModeFast)
	assert.ErrorIs(t, err, ErrBoot, "a class registering no features must abort boot")

	_, err = NewRegistry([]feature.Class{okClass(), okClass()}, feature.ModeFast)
	assert.ErrorIs(t, err, ErrBoot, "duplicate shortname must abort boot")

	squatter := stubClass{
		desc: feature.Descriptor{Shortname: "SQ", Name: "squatter", Modes: []feature.Mode{feature.ModeFast}},
		compute: func(rec *feature.Recorder, _ *core.Graph, _ *feature.Cache) error {
			rec.AddScalar("order", "claims another class's column", feature.Score(1),
				func() (float64, error) { return 0, nil })

			return nil
		},
	}
	_, err = NewRegistry([]feature.Class{okClass(), squatter}, feature.ModeFast)
	assert.ErrorIs(t, err, ErrBoot, "cross-class feature name collision must abort boot")

	_, err = NewRegistry([]feature.Class{okClass()}, feature.Mode("turbo"))
	assert.ErrorIs(t, err, ErrUnknownMode)

	_, err = NewRegistry([]feature.Class{okClass()}, feature.ModeSlow)
	assert.ErrorIs(t, err, ErrNoClasses, "no class active in the requested mode")
}

// TestNewRegistry_ModeAll verifies ModeAll activates classes regardless of
// their declared tiers.
func TestNewRegistry_ModeAll(t *testing.T) {
	reg, err := NewRegistry([]feature.Class{okClass()}, feature.ModeAll)
	require.NoError(t, err)
	assert.Equal(t, []string{"OK"}, reg.Shortnames())
	assert.Equal(t, feature.ModeAll, reg.Mode())
}
