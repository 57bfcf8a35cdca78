// Package dagsp defines core types and configuration options for the
// rank-ordered shortest-path sweep.
package dagsp

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
)

// Sentinel errors returned by Shortest.
var (
	// ErrNilGraph indicates that a nil graph was passed.
	ErrNilGraph = errors.New("dagsp: graph is nil")

	// ErrSourceOutOfRange indicates a source vertex outside [0, V).
	ErrSourceOutOfRange = errors.New("dagsp: source vertex out of range")

	// ErrNotTopological indicates an arc from a higher to a lower (or equal)
	// vertex index, reported only when WithOrderCheck is set.
	ErrNotTopological = errors.New("dagsp: ascending vertex index is not a topological order")

	// ErrNotAcyclic indicates a graph without the static acyclic guarantee,
	// reported only when WithRequireAcyclic is set.
	ErrNotAcyclic = errors.New("dagsp: graph is not guaranteed acyclic")
)

// Stats collects counters of one run.
type Stats struct {
	Processed   int // vertices whose out-arcs were relaxed
	Relaxations int // strict distance improvements
}

// Options configures Shortest.
type Options struct {
	CheckOrder     bool               // verify every arc ascends before running
	RequireAcyclic bool               // demand g.IsAcyclic()
	Logger         logrus.FieldLogger // debug run summaries; nil discards
	Stats          *Stats             // if non-nil, receives the run counters
	Ctx            context.Context    // cancellation, polled every cancelCheckEvery swept vertices
}

// Option represents a functional option for configuring Shortest.
type Option func(*Options)

// DefaultOptions returns Options with every check disabled, no logger,
// no stats and a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithOrderCheck enables an O(V+E) scan failing with ErrNotTopological
// unless every arc goes from a lower to a higher vertex index.
func WithOrderCheck() Option {
	return func(o *Options) {
		o.CheckOrder = true
	}
}

// WithRequireAcyclic rejects graphs whose IsAcyclic reports false with
// ErrNotAcyclic. The check is O(1): it trusts the construction guarantee
// and does not scan for cycles.
func WithRequireAcyclic() Option {
	return func(o *Options) {
		o.RequireAcyclic = true
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

// WithCancelContext sets the context polled during the sweep. Passing a nil
// context has no effect.
func WithCancelContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
