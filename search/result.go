package search

import "github.com/katalvlaran/pathfinder/maze"

// Result is the terminal output of one search run. It is not modified after
// it is returned.
//
//   - Maze: the searched grid (read-only).
//   - Path: start → goal inclusive; nil when Found is false.
//   - ExpandedOrder: nodes in the order they were first expanded.
//   - Expanded: the same nodes as a set.
//   - PathCost: sum of entered-cell costs along Path (start excluded).
type Result struct {
	Algorithm     Algorithm
	Maze          *maze.Maze
	Start, Goal   maze.Node
	Path          []maze.Node
	ExpandedOrder []maze.Node
	Expanded      map[maze.Node]struct{}
	PathCost      int
	Found         bool
}

// PathLength returns the number of nodes on the path, or -1 if there is none.
func (r *Result) PathLength() int {
	if r.Path == nil {
		return -1
	}
	return len(r.Path)
}

// Expansions returns the number of expanded nodes.
func (r *Result) Expansions() int {
	return len(r.ExpandedOrder)
}

// WasExpanded reports whether n was expanded during the run.
func (r *Result) WasExpanded(n maze.Node) bool {
	_, ok := r.Expanded[n]
	return ok
}

// OnPath reports whether n lies on the found path.
func (r *Result) OnPath(n maze.Node) bool {
	for _, p := range r.Path {
		if p == n {
			return true
		}
	}
	return false
}

// Steps returns the path annotated with arrival and leave directions.
func (r *Result) Steps() []maze.PathStep {
	return maze.Annotate(r.Path)
}
