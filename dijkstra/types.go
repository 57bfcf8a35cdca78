// Package dijkstra defines core types and configuration options
// for priority-relaxation shortest paths over grid graphs.
package dijkstra

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNilQueue indicates that a nil queue was passed to Run.
	ErrNilQueue = errors.New("dijkstra: queue is nil")

	// ErrQueueNotEmpty indicates that the caller-supplied queue still holds
	// entries from elsewhere; a run needs exclusive use of an empty queue.
	ErrQueueNotEmpty = errors.New("dijkstra: queue must be empty on entry")

	// ErrNoDecreaseKey indicates ModeDecreaseKey with a queue that does not
	// implement pqueue.Updater.
	ErrNoDecreaseKey = errors.New("dijkstra: decrease-key mode requires a pqueue.Updater")

	// ErrSourceOutOfRange indicates a source vertex outside [0, V).
	ErrSourceOutOfRange = errors.New("dijkstra: source vertex out of range")

	// ErrNegativeWeight indicates a negative vertex weight, reported only
	// when WithNegativeWeightCheck is set.
	ErrNegativeWeight = errors.New("dijkstra: negative vertex weight")

	// ErrBadMode indicates an unknown Mode value.
	ErrBadMode = errors.New("dijkstra: unknown mode")
)

// Mode selects the priority-queue policy.
type Mode int

const (
	// ModeDecreaseKey keeps one queue slot per vertex and updates it in place
	// on improvement.
	ModeDecreaseKey Mode = iota

	// ModeNaive reinserts an improved vertex as a new entry and discards
	// stale entries (popped with a distance above the current best) on Pop.
	ModeNaive
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeDecreaseKey:
		return "decrease-key"
	case ModeNaive:
		return "naive"
	default:
		return "unknown"
	}
}

// Stats collects counters of one run.
type Stats struct {
	Pops        int // entries extracted from the queue
	StalePops   int // extracted entries discarded as stale (naive mode only)
	Relaxations int // strict distance improvements
}

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	Mode          Mode               // queue policy
	CheckNegative bool               // reject negative weights before running
	Logger        logrus.FieldLogger // debug run summaries; nil discards
	Stats         *Stats             // if non-nil, receives the run counters
	Ctx           context.Context    // cancellation, polled every cancelCheckEvery pops
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns an Options struct initialized with:
//   - Mode:          ModeDecreaseKey.
//   - CheckNegative: false (non-negative weights are a caller obligation).
//   - Logger:        nil (discard).
//   - Stats:         nil.
//   - Ctx:           context.Background().
func DefaultOptions() Options {
	return Options{Mode: ModeDecreaseKey, Ctx: context.Background()}
}

// WithMode selects the queue policy. Panics on an unknown mode.
func WithMode(m Mode) Option {
	if m != ModeDecreaseKey && m != ModeNaive {
		panic(ErrBadMode.Error())
	}
	return func(o *Options) {
		o.Mode = m
	}
}

// WithNaive is WithMode(ModeNaive).
func WithNaive() Option {
	return WithMode(ModeNaive)
}

// WithNegativeWeightCheck enables an O(V) HasNegativeWeights scan before the
// run; a negative weight then fails with ErrNegativeWeight instead of
// silently producing a wrong tree.
func WithNegativeWeightCheck() Option {
	return func(o *Options) {
		o.CheckNegative = true
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

// WithCancelContext sets the context polled during the run. A cancelled run
// returns ctx.Err() and leaves the queue empty. Passing a nil context has no
// effect.
func WithCancelContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
