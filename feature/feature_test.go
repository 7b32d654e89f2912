package feature_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grafeat/feature"
)

// TestScore_Clamping verifies the 1–5 clamp.
func TestScore_Clamping(t *testing.T) {
	assert.Equal(t, feature.MinInterpretability, feature.Score(0))
	assert.Equal(t, feature.MinInterpretability, feature.Score(-3))
	assert.Equal(t, feature.InterpretabilityScore(3), feature.Score(3))
	assert.Equal(t, feature.MaxInterpretability, feature.Score(9))
}

// TestDescriptor_ActiveIn verifies mode matching and the ModeAll override.
func TestDescriptor_ActiveIn(t *testing.T) {
	d := feature.Descriptor{
		Shortname: "XX",
		Modes:     []feature.Mode{feature.ModeMedium, feature.ModeSlow},
	}

	assert.False(t, d.ActiveIn(feature.ModeFast))
	assert.True(t, d.ActiveIn(feature.ModeMedium))
	assert.True(t, d.ActiveIn(feature.ModeSlow))
	assert.True(t, d.ActiveIn(feature.ModeAll), "all ignores declared modes")
}

// TestKnownMode rejects arbitrary strings.
func TestKnownMode(t *testing.T) {
	assert.True(t, feature.KnownMode(feature.ModeFast))
	assert.True(t, feature.KnownMode(feature.ModeAll))
	assert.False(t, feature.KnownMode(feature.Mode("turbo")))
}

// TestRecorder_AddScalar verifies success and failure records.
func TestRecorder_AddScalar(t *testing.T) {
	rec := feature.NewRecorder()
	failure := errors.New("boom")

	rec.AddScalar("ok", "a fine feature", feature.Score(5), func() (float64, error) {
		return 2.5, nil
	})
	rec.AddScalar("bad", "a failing feature", feature.Score(1), func() (float64, error) {
		return 0, failure
	})

	records := rec.Records()
	require.Len(t, records, 2)

	assert.Equal(t, "ok", records[0].Name)
	assert.Equal(t, 2.5, records[0].Value)
	assert.NoError(t, records[0].Err)
	assert.False(t, records[0].Expanded)

	assert.Equal(t, "bad", records[1].Name)
	assert.True(t, math.IsNaN(records[1].Value), "failure records NaN")
	assert.ErrorIs(t, records[1].Err, failure, "failure stays visible on the record")
}

// TestRecorder_AddSequence verifies the fixed expansion columns and values.
func TestRecorder_AddSequence(t *testing.T) {
	rec := feature.NewRecorder()

	rec.AddSequence("deg", "degree distribution", feature.Score(4), func() ([]float64, error) {
		return []float64{1, 2, 3, 4}, nil
	})

	records := rec.Records()
	require.Len(t, records, 6)

	assert.Equal(t,
		[]string{"deg_mean", "deg_max", "deg_min", "deg_median", "deg_std", "deg_sum"},
		rec.Names())
	assert.Equal(t, 2.5, records[0].Value)
	assert.Equal(t, 4.0, records[1].Value)
	assert.Equal(t, 1.0, records[2].Value)
	assert.Equal(t, 2.5, records[3].Value)
	assert.InDelta(t, math.Sqrt(1.25), records[4].Value, 1e-12)
	assert.Equal(t, 10.0, records[5].Value)
	for _, r := range records {
		assert.True(t, r.Expanded)
	}
}

// TestRecorder_AddSequence_Failure verifies six NaN columns on error.
func TestRecorder_AddSequence_Failure(t *testing.T) {
	rec := feature.NewRecorder()
	failure := errors.New("no data")

	rec.AddSequence("seq", "failing sequence", feature.Score(2), func() ([]float64, error) {
		return nil, failure
	})

	records := rec.Records()
	require.Len(t, records, 6)
	for _, r := range records {
		assert.True(t, math.IsNaN(r.Value))
		assert.ErrorIs(t, r.Err, failure)
	}
}

// TestRecorder_DuplicatePanics documents the programmer-error contract.
func TestRecorder_DuplicatePanics(t *testing.T) {
	rec := feature.NewRecorder()
	rec.AddScalar("x", "", feature.Score(3), func() (float64, error) { return 1, nil })

	assert.Panics(t, func() {
		rec.AddScalar("x", "", feature.Score(3), func() (float64, error) { return 2, nil })
	})
}

// TestCache_Memo verifies single production, hits, and error passthrough.
func TestCache_Memo(t *testing.T) {
	cache := feature.NewCache()
	calls := 0

	produce := func() ([]float64, error) {
		calls++

		return []float64{1, 2}, nil
	}

	first, err := feature.Memo(cache, "k", produce)
	require.NoError(t, err)
	second, err := feature.Memo(cache, "k", produce)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls, "producer runs once per key")
	assert.Equal(t, 1, cache.Len())

	// Errors are not cached: the next caller retries.
	failures := 0
	_, err = feature.Memo(cache, "bad", func() (int, error) {
		failures++

		return 0, errors.New("nope")
	})
	require.Error(t, err)
	_, err = feature.Memo(cache, "bad", func() (int, error) {
		failures++

		return 7, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, failures)
}
