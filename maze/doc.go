// Package maze models a rectangular grid of traversable cells and walls
// as the search space for the pathfinding algorithms in package search.
//
// What:
//
//   - Maze wraps a rectangular [][]string of cell markers. A marker is either a
//     non-negative integer traversal cost ("0", "1", "17", ...) or the Wall marker "_".
//   - Node is a (Row, Col) position. Two nodes are equal iff row and column match.
//   - Move pairs a neighbor Node with the cardinal Direction that reached it.
//   - NodePath is a frontier entry: a node plus the full path from the start.
//   - Recorder observes neighbor queries and keeps the expansion order of one search.
//   - Annotate turns a finished path into PathSteps carrying arrival/leave directions.
//
// Why:
//
//   - The grid never changes once built, so one *Maze may be shared read-only by
//     any number of concurrent searches, each owning its own Recorder.
//   - Direction is rendering metadata; it travels beside a Node (Move, PathStep)
//     and never takes part in equality or map hashing.
//
// Costs:
//
//   - Entering a cell costs Cost(cell); the start cell is never charged.
//   - Walls report cost 0 and are never returned by Neighbors.
//   - A cell costs at most MaxCost and all costs together fit in an int, so
//     no path sum or cumulative search cost can wrap around.
//
// Complexity:
//
//   - New: O(H×W) time and memory.
//   - IsValid/IsWall/IsOpen/Cost: O(1).
//   - Neighbors: O(1) (at most four candidates).
//   - Regions/Connected: O(H×W).
//
// Errors:
//
//   - ErrInvalidGrid: umbrella for every construction failure, combined with
//     ErrEmptyGrid, ErrNonRectangular, ErrInvalidCell (see CellError) or
//     ErrCostOverflow (the costs of all cells do not sum within int).
//   - ErrInvalidSize: bad dimensions or cost passed to Uniform.
package maze
