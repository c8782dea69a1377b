package maze

import "math/rand"

// Recorder wraps a Maze and records, in first-seen order, every node whose
// neighbors are requested through it. One Recorder belongs to exactly one
// search run; it is not safe for concurrent use.
type Recorder struct {
	maze  *Maze
	order []Node
	seen  map[Node]struct{}
}

// NewRecorder returns an empty Recorder over m.
func NewRecorder(m *Maze) *Recorder {
	return &Recorder{
		maze: m,
		seen: make(map[Node]struct{}),
	}
}

// Maze returns the wrapped grid.
func (r *Recorder) Maze() *Maze { return r.maze }

// Neighbors records n as expanded (once) and returns m.Neighbors(n, shuffle, rng).
func (r *Recorder) Neighbors(n Node, shuffle bool, rng *rand.Rand) []Move {
	if _, ok := r.seen[n]; !ok {
		r.seen[n] = struct{}{}
		r.order = append(r.order, n)
	}
	return r.maze.Neighbors(n, shuffle, rng)
}

// Len returns the number of distinct expanded nodes.
func (r *Recorder) Len() int { return len(r.order) }

// Contains reports whether n has been expanded.
func (r *Recorder) Contains(n Node) bool {
	_, ok := r.seen[n]
	return ok
}

// Order returns a copy of the expansion order.
func (r *Recorder) Order() []Node {
	out := make([]Node, len(r.order))
	copy(out, r.order)
	return out
}

// Set returns a copy of the expanded-node set.
func (r *Recorder) Set() map[Node]struct{} {
	out := make(map[Node]struct{}, len(r.seen))
	for n := range r.seen {
		out[n] = struct{}{}
	}
	return out
}

// Reset forgets all recorded expansions.
func (r *Recorder) Reset() {
	r.order = nil
	r.seen = make(map[Node]struct{})
}
