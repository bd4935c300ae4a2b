package gridrect

import (
	"fmt"
	"log/slog"
)

// Option configures a decomposition via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// entry point runs.
type Option func(*Options)

// Options holds the parameters of one decomposition call.
type Options struct {
	// Conn selects 4- or 8-directional adjacency. Conn4 is the default.
	Conn Connectivity

	// Visit selects visited-cell storage. It never changes the result.
	Visit VisitStrategy

	// MinCells drops components with fewer cells from the output.
	// Dropped components are still consumed and never split or re-emitted.
	MinCells int

	// Logger receives Debug records per component and per call.
	Logger *slog.Logger

	// OnRegion is called after each region is appended to the output,
	// with its output index.
	OnRegion func(index int, r Region)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with defaults:
//   - Conn4 adjacency
//   - VisitAuto storage
//   - MinCells 1 (keep every component)
//   - slog.Default() logger
//   - no-op OnRegion hook
func DefaultOptions() Options {
	return Options{
		Conn:     Conn4,
		Visit:    VisitAuto,
		MinCells: 1,
		Logger:   slog.Default(),
		OnRegion: func(int, Region) {},
	}
}

// WithConnectivity selects neighbor adjacency. Values other than Conn4 and
// Conn8 are violations.
func WithConnectivity(c Connectivity) Option {
	return func(o *Options) {
		if c != Conn4 && c != Conn8 {
			o.err = fmt.Errorf("%w: unknown connectivity %d", ErrOptionViolation, int(c))
			return
		}
		o.Conn = c
	}
}

// WithVisitStrategy selects visited-cell storage.
func WithVisitStrategy(s VisitStrategy) Option {
	return func(o *Options) {
		switch s {
		case VisitAuto, VisitDense, VisitSparse:
			o.Visit = s
		default:
			o.err = fmt.Errorf("%w: unknown visit strategy %d", ErrOptionViolation, int(s))
		}
	}
}

// WithMinCells drops components smaller than n cells.
//
//	n > 0: keep components with at least n cells
//	n == 0: same as 1, keep everything
//	n < 0: invalid option → ErrOptionViolation
func WithMinCells(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MinCells cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.MinCells = 1
		default:
			o.MinCells = n
		}
	}
}

// WithLogger sets the logger; nil keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnRegion registers a callback run after each emitted region.
func WithOnRegion(fn func(index int, r Region)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRegion = fn
		}
	}
}

// gatherOptions applies opts over the defaults and returns the first recorded violation.
func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&o)
		if o.err != nil {
			return o, o.err
		}
	}
	return o, nil
}
