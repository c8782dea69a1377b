// Package search finds a route between two cells of a maze.Maze with one of
// four classic strategies and records enough about each run to replay it.
//
// Algorithms:
//
//   - DepthFirst   – LIFO stack; returns a path, not necessarily short or cheap.
//   - BreadthFirst – FIFO queue; fewest moves, not necessarily cheapest.
//   - UniformCost  – min-heap on cumulative cost g; cheapest path.
//   - AStar        – min-heap on g + Manhattan(node, goal); cheapest path while
//     every open cell costs at least 1 (see the admissibility note below).
//
// Every run seeds its frontier with (start, [start]), checks the goal when an
// entry is removed, and expands each node at most once. Expansions go through a
// maze.Recorder owned by that run, so the returned Result carries the exact order
// in which nodes were expanded. The grid itself is only read, so one *maze.Maze
// may be searched concurrently as long as each call has its own options.
//
// Result:
//
//   - Found=false is the explicit "no path" outcome; it is not an error.
//   - PathCost is always recomputed from the grid (start cell excluded),
//     independent of the priority that drove the search.
//   - PathLength() is len(Path), or -1 without a path.
//
// Selection by name goes through the Algorithm registry: Parse, Run, RunNamed.
// Unknown names fail with ErrUnknownAlgorithm before any search runs.
//
// Admissibility:
//
//	Manhattan distance counts moves. When a maze contains cost-0 cells the
//	remaining cost can be lower than the number of moves, the heuristic then
//	overestimates, and AStar may return a more expensive path than UniformCost.
//	This is left as is.
//
// Options:
//
//   - WithShuffle(bool): randomize neighbor order (default true).
//   - WithSeed(int64) / WithRand(*rand.Rand): pin the shuffle source.
//   - WithMaxExpansions(n): stop with ErrExpansionLimit after n expansions.
//   - WithOnExpand(fn): observe each expansion as it happens.
//
// Complexity (V = open cells):
//
//   - Time:  O(V) expansions; every expansion copies its path, so O(V·L) for
//     path length L. UCS/A* add O(log F) per push/pop for frontier size F.
//   - Space: O(F·L) for the frontier entries.
package search
