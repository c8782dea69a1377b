package search

import (
	"fmt"

	"github.com/katalvlaran/pathfinder/maze"
)

// DepthFirst searches with a LIFO stack. The most recently pushed branch is
// explored first; with shuffling on, repeated runs may return different paths.
// The path is valid but neither shortest nor cheapest in general.
func DepthFirst(start, goal maze.Node, m *maze.Maze, opts ...Option) (*Result, error) {
	return walk(DepthFirstSearch, start, goal, m, &stack{}, nil, opts)
}

// BreadthFirst searches with a FIFO queue and returns a path with the fewest
// moves. Cell costs are ignored for ordering.
func BreadthFirst(start, goal maze.Node, m *maze.Maze, opts ...Option) (*Result, error) {
	return walk(BreadthFirstSearch, start, goal, m, &queue{}, nil, opts)
}

// UniformCost searches with a min-priority queue keyed by cumulative path
// cost and returns a cheapest path. Ties pop in insertion order.
func UniformCost(start, goal maze.Node, m *maze.Maze, opts ...Option) (*Result, error) {
	priority := func(g int, _ maze.Node) int { return g }
	return walk(UniformCostSearch, start, goal, m, newPriorityQueue(false), priority, opts)
}

// AStar searches with a min-priority queue keyed by cumulative cost plus the
// Manhattan distance to goal. Ties prefer the entry with the larger cumulative
// cost, then insertion order. The result is cheapest when every open cell
// costs at least 1; see the package documentation for cost-0 cells.
func AStar(start, goal maze.Node, m *maze.Maze, opts ...Option) (*Result, error) {
	priority := func(g int, n maze.Node) int { return g + maze.Manhattan(n, goal) }
	return walk(AStarSearch, start, goal, m, newPriorityQueue(true), priority, opts)
}

// walker encapsulates the mutable state of one search run. Nothing in it
// outlives the run or is shared with another run.
type walker struct {
	alg      Algorithm
	rec      *maze.Recorder
	opts     Options
	start    maze.Node
	goal     maze.Node
	front    frontier
	priority func(g int, n maze.Node) int // nil for unordered frontiers
	visited  map[maze.Node]struct{}
	seq      uint64
}

// walk validates input, builds a walker and runs the shared loop.
func walk(
	alg Algorithm,
	start, goal maze.Node,
	m *maze.Maze,
	front frontier,
	priority func(g int, n maze.Node) int,
	opts []Option,
) (*Result, error) {
	if m == nil {
		return nil, ErrNilMaze
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	w := &walker{
		alg:      alg,
		rec:      maze.NewRecorder(m),
		opts:     o,
		start:    start,
		goal:     goal,
		front:    front,
		priority: priority,
		visited:  make(map[maze.Node]struct{}),
	}

	return w.loop()
}

// loop removes one entry per iteration until the goal is reached or the
// frontier is exhausted.
func (w *walker) loop() (*Result, error) {
	w.push(maze.Start(w.start), 0)

	for w.front.len() > 0 {
		e := w.front.pop()
		cur := e.np.Node

		if cur == w.goal {
			return w.found(e.np), nil
		}
		if _, done := w.visited[cur]; done {
			continue
		}
		if w.opts.MaxExpansions > 0 && len(w.visited) >= w.opts.MaxExpansions {
			return nil, fmt.Errorf("%w: %d nodes expanded without reaching %v",
				ErrExpansionLimit, len(w.visited), w.goal)
		}
		w.expand(e)
	}

	return w.exhausted(), nil
}

// expand marks e's node visited, records it and pushes one extended entry per
// open neighbor.
func (w *walker) expand(e entry) {
	cur := e.np.Node
	w.visited[cur] = struct{}{}

	moves := w.rec.Neighbors(cur, w.opts.Shuffle, w.opts.Rand)
	w.opts.OnExpand(cur, w.rec.Len())

	for _, mv := range moves {
		w.push(e.np.Extend(mv.Node), e.g+w.rec.Maze().Cost(mv.Node))
	}
}

// push wraps np into a frontier entry with cumulative cost g.
func (w *walker) push(np maze.NodePath, g int) {
	e := entry{np: np, g: g, seq: w.seq}
	w.seq++
	if w.priority != nil {
		e.f = w.priority(g, np.Node)
	}
	w.front.push(e)
}

// found builds the Result for a successful run. Cost is recomputed from the
// grid rather than taken from the frontier priority.
func (w *walker) found(np maze.NodePath) *Result {
	return &Result{
		Algorithm:     w.alg,
		Maze:          w.rec.Maze(),
		Start:         w.start,
		Goal:          w.goal,
		Path:          np.Path,
		ExpandedOrder: w.rec.Order(),
		Expanded:      w.rec.Set(),
		PathCost:      w.rec.Maze().PathCost(np.Path),
		Found:         true,
	}
}

// exhausted builds the explicit no-path Result.
func (w *walker) exhausted() *Result {
	return &Result{
		Algorithm:     w.alg,
		Maze:          w.rec.Maze(),
		Start:         w.start,
		Goal:          w.goal,
		ExpandedOrder: w.rec.Order(),
		Expanded:      w.rec.Set(),
	}
}
