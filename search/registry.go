package search

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pathfinder/maze"
)

// Algorithm identifies one of the registered search strategies.
type Algorithm int

const (
	// DepthFirstSearch selects DepthFirst.
	DepthFirstSearch Algorithm = iota
	// BreadthFirstSearch selects BreadthFirst.
	BreadthFirstSearch
	// UniformCostSearch selects UniformCost.
	UniformCostSearch
	// AStarSearch selects AStar.
	AStarSearch

	numAlgorithms
)

// Func is the shared signature of every search strategy.
type Func func(start, goal maze.Node, m *maze.Maze, opts ...Option) (*Result, error)

// registry has exactly one row per Algorithm, indexed by it.
var registry = [...]struct {
	name  string // stable display identifier
	alias string // short command-line form
	run   Func
}{
	DepthFirstSearch:   {"Depth First Search", "dfs", DepthFirst},
	BreadthFirstSearch: {"Breadth First Search", "bfs", BreadthFirst},
	UniformCostSearch:  {"Uniform Cost Search", "ucs", UniformCost},
	AStarSearch:        {"A* Search", "astar", AStar},
}

// Fails to compile unless registry has one row per Algorithm.
var _ [len(registry) - int(numAlgorithms)]struct{} = [0]struct{}{}

// Valid reports whether a is a registered algorithm.
func (a Algorithm) Valid() bool {
	return a >= 0 && a < numAlgorithms
}

// String returns the stable identifier of a, e.g. "A* Search".
func (a Algorithm) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return registry[a].name
}

// Alias returns the short identifier of a, e.g. "astar".
func (a Algorithm) Alias() string {
	if !a.Valid() {
		return ""
	}
	return registry[a].alias
}

// Algorithms lists every registered algorithm in registry order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, numAlgorithms)
	for i := range out {
		out[i] = Algorithm(i)
	}
	return out
}

// Names lists the stable identifiers in registry order.
func Names() []string {
	out := make([]string, len(registry))
	for i, row := range registry {
		out[i] = row.name
	}
	return out
}

// Parse resolves a stable identifier or its alias, ignoring case and
// surrounding space. Unknown input yields ErrUnknownAlgorithm.
func Parse(name string) (Algorithm, error) {
	key := strings.TrimSpace(name)
	for i, row := range registry {
		if strings.EqualFold(key, row.name) || strings.EqualFold(key, row.alias) {
			return Algorithm(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Run executes alg. An unregistered alg fails with ErrUnknownAlgorithm
// without searching.
func Run(alg Algorithm, start, goal maze.Node, m *maze.Maze, opts ...Option) (*Result, error) {
	if !alg.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, alg)
	}
	return registry[alg].run(start, goal, m, opts...)
}

// RunNamed resolves name with Parse and executes it.
func RunNamed(name string, start, goal maze.Node, m *maze.Maze, opts ...Option) (*Result, error) {
	alg, err := Parse(name)
	if err != nil {
		return nil, err
	}
	return Run(alg, start, goal, m, opts...)
}
