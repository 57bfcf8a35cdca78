// Package bellmanford defines core types and configuration options for the
// full edge-relaxation sweep.
package bellmanford

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
)

// Sentinel errors returned by BellmanFord.
var (
	// ErrNilGraph indicates that a nil graph was passed.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrSourceOutOfRange indicates a source vertex outside [0, V).
	ErrSourceOutOfRange = errors.New("bellmanford: source vertex out of range")

	// ErrBadMaxPasses indicates a pass cap below one.
	ErrBadMaxPasses = errors.New("bellmanford: max passes must be ≥ 1")
)

// Stats collects counters of one run.
type Stats struct {
	Passes      int  // full sweeps performed, including the final quiet one
	Relaxations int  // strict distance improvements
	Converged   bool // no edge can improve any distance when the run ends
}

// Options configures BellmanFord.
type Options struct {
	MaxPasses int                // 0 means V−1
	Logger    logrus.FieldLogger // debug run summaries; nil discards
	Stats     *Stats             // if non-nil, receives the run counters
	Ctx       context.Context    // cancellation, polled before every pass
}

// Option represents a functional option for configuring BellmanFord.
type Option func(*Options)

// DefaultOptions returns Options with the V−1 pass cap, no logger, no stats
// and a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithMaxPasses lowers the pass cap to n. The cap never exceeds V−1.
// Panics if n < 1.
func WithMaxPasses(n int) Option {
	if n < 1 {
		panic(ErrBadMaxPasses.Error())
	}
	return func(o *Options) {
		o.MaxPasses = n
	}
}

// WithLogger sets the logger used for debug run summaries.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithStats stores the run counters into st when the run completes.
func WithStats(st *Stats) Option {
	return func(o *Options) {
		o.Stats = st
	}
}

// WithCancelContext sets the context polled before every pass. Passing a nil
// context has no effect.
func WithCancelContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
