// Package feature: the Recorder feature classes write into.
package feature

import (
	"fmt"
	"math"

	"github.com/katalvlaran/grafeat/matrix"
)

// ExpandSuffixes is the fixed, ordered suffix set for statistics
// expansion. Order is part of the column contract: every sequence feature
// contributes exactly these six columns, in this order.
var ExpandSuffixes = [6]string{"_mean", "_max", "_min", "_median", "_std", "_sum"}

// ExpandedNames returns the six expanded column names for a sequence
// feature called name.
func ExpandedNames(name string) []string {
	out := make([]string, len(ExpandSuffixes))
	for i, s := range ExpandSuffixes {
		out[i] = name + s
	}

	return out
}

// Record is one computed feature value plus its metadata. A failed
// computation records NaN with Err preserved, so failure paths stay
// visible to tests instead of being silently absorbed.
type Record struct {
	// Name is the column name, unique within the class.
	Name string

	// Value is the scalar cell value; NaN marks failure or absence.
	Value float64

	// Description is the human explanation of the feature.
	Description string

	// Score rates interpretability 1–5.
	Score InterpretabilityScore

	// Expanded is true for columns produced by statistics expansion.
	Expanded bool

	// Err retains the computation failure that produced a NaN Value,
	// nil on success.
	Err error
}

// Recorder accumulates the Records of one class on one graph. Feature
// functions are evaluated eagerly at Add time, on the calling goroutine.
type Recorder struct {
	records []Record
	names   map[string]struct{}
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{names: make(map[string]struct{})}
}

// AddScalar evaluates fn and records a single scalar feature.
// A duplicate name panics: feature names are a static property of the
// class, so a clash is a programmer error, not a data condition.
func (r *Recorder) AddScalar(name, desc string, score InterpretabilityScore, fn func() (float64, error)) {
	r.reserve(name)

	value, err := fn()
	if err != nil {
		value = math.NaN()
	}
	r.records = append(r.records, Record{
		Name:        name,
		Value:       value,
		Description: desc,
		Score:       score,
		Err:         err,
	})
}

// AddSequence evaluates fn and expands the sequence into the six fixed
// summary columns, each named name+suffix and flagged as expanded.
// On failure all six columns record NaN with the error preserved.
func (r *Recorder) AddSequence(name, desc string, score InterpretabilityScore, fn func() ([]float64, error)) {
	for _, expanded := range ExpandedNames(name) {
		r.reserve(expanded)
	}

	seq, err := fn()
	var values [6]float64
	if err != nil {
		nan := math.NaN()
		values = [6]float64{nan, nan, nan, nan, nan, nan}
	} else {
		s := matrix.Summarize(seq)
		values = [6]float64{s.Mean, s.Max, s.Min, s.Median, s.Std, s.Sum}
	}

	for i, expanded := range ExpandedNames(name) {
		r.records = append(r.records, Record{
			Name:        expanded,
			Value:       values[i],
			Description: desc,
			Score:       score,
			Expanded:    true,
			Err:         err,
		})
	}
}

// Records returns the accumulated records in registration order.
func (r *Recorder) Records() []Record {
	return r.records
}

// Names returns the accumulated column names in registration order.
func (r *Recorder) Names() []string {
	out := make([]string, len(r.records))
	for i, rec := range r.records {
		out[i] = rec.Name
	}

	return out
}

// reserve claims name, panicking on a duplicate.
func (r *Recorder) reserve(name string) {
	if _, dup := r.names[name]; dup {
		panic(fmt.Sprintf("feature: duplicate feature name %q", name))
	}
	r.names[name] = struct{}{}
}
