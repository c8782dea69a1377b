package search

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/pathfinder/maze"
)

// Sentinel errors for search execution.
var (
	// ErrNilMaze is returned when a nil *maze.Maze is passed.
	ErrNilMaze = errors.New("search: maze is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrExpansionLimit is returned when a run exceeds WithMaxExpansions.
	ErrExpansionLimit = errors.New("search: expansion limit reached")

	// ErrUnknownAlgorithm is returned for an identifier not in the registry.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")
)

// Option configures a search run via functional arguments.
// If an Option is invalid (e.g. negative expansion limit), it is recorded
// and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds the parameters of a single search run.
type Options struct {
	// Shuffle randomizes the order of each node's neighbors.
	Shuffle bool

	// Rand drives shuffling. Nil means the math/rand global source.
	// A *rand.Rand is not safe for concurrent use; do not share one
	// between concurrent searches.
	Rand *rand.Rand

	// MaxExpansions, if > 0, aborts the run once that many nodes were expanded.
	MaxExpansions int

	// OnExpand is called after a node is expanded for the first time, with
	// its 1-based position in the expansion order.
	OnExpand func(n maze.Node, order int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - shuffling on, drawn from the global source
//   - no expansion limit
//   - a no-op OnExpand hook.
func DefaultOptions() Options {
	return Options{
		Shuffle:       true,
		Rand:          nil,
		MaxExpansions: 0,
		OnExpand:      func(maze.Node, int) {},
	}
}

// WithShuffle turns neighbor shuffling on or off. With shuffling off every
// run over the same inputs is deterministic.
func WithShuffle(on bool) Option {
	return func(o *Options) {
		o.Shuffle = on
	}
}

// WithRand sets the source used for shuffling. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("search: WithRand(nil)")
	}
	return func(o *Options) {
		o.Rand = r
	}
}

// WithSeed gives the run its own source seeded with seed, so repeated runs
// with the same seed shuffle identically.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithMaxExpansions bounds the number of expanded nodes.
//
//	n > 0: stop with ErrExpansionLimit once n nodes were expanded and the goal is still ahead
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnExpand registers a callback invoked on every first expansion.
func WithOnExpand(fn func(n maze.Node, order int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// buildOptions applies opts over DefaultOptions and returns the first violation.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}
