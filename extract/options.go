// Package extract: functional configuration for Extract.
package extract

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/grafeat/feature"
	"github.com/katalvlaran/grafeat/features"
)

// DefaultWorkers runs extraction sequentially unless told otherwise.
const DefaultWorkers = 1

// Option configures Extract behavior via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when Extract is invoked.
type Option func(*Options)

// Options holds parameters to customize an extraction run.
type Options struct {
	// Mode selects the active cost tier: fast, medium, slow or all.
	Mode feature.Mode

	// Workers bounds parallel fan-out; 1 forces sequential execution.
	Workers int

	// Classes is the compiled candidate set the registry filters by mode.
	Classes []feature.Class

	// Logger observes boot, progress and recovered failures.
	Logger zerolog.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Mode fast
//   - sequential execution (Workers = 1)
//   - the built-in class catalogue
//   - a no-op logger
func DefaultOptions() Options {
	return Options{
		Mode:    feature.ModeFast,
		Workers: DefaultWorkers,
		Classes: features.DefaultClasses(),
		Logger:  zerolog.Nop(),
	}
}

// WithMode selects the extraction mode. Unknown modes surface as
// ErrUnknownMode at Extract time.
func WithMode(mode feature.Mode) Option {
	return func(o *Options) { o.Mode = mode }
}

// WithWorkers sets the worker count. Values < 1 surface as
// ErrOptionViolation.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = ErrOptionViolation

			return
		}
		o.Workers = n
	}
}

// WithClasses replaces the candidate class set. Empty or nil-containing
// slices surface as ErrOptionViolation.
func WithClasses(classes []feature.Class) Option {
	return func(o *Options) {
		if len(classes) == 0 {
			o.err = ErrOptionViolation

			return
		}
		for _, c := range classes {
			if c == nil {
				o.err = ErrOptionViolation

				return
			}
		}
		o.Classes = classes
	}
}

// WithLogger wires a zerolog logger into the run.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}
