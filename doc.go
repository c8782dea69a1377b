// Package pathfinder is a small toolkit for searching weighted grid mazes
// and seeing how each search got where it did.
//
// What is in the box?
//
//	A maze is a rectangle of cells. A cell is either a wall ("_") or a
//	non-negative integer: the cost of stepping onto it. Moves go north,
//	south, east and west. Four searches run over it:
//		• Depth First Search   - LIFO frontier, any path
//		• Breadth First Search - FIFO frontier, fewest moves
//		• Uniform Cost Search  - cheapest path by accumulated cost
//		• A* Search            - cost plus Manhattan distance to the goal
//
// Every run records the order in which nodes were first expanded, so a
// result can be replayed step by step as well as inspected at the end.
//
// Subpackages:
//
//	maze/            - Maze grid, Node/Direction/Move, NodePath, expansion Recorder
//	search/          - DFS, BFS, UCS, A*, the Result type and the algorithm registry
//	mazefile/        - "rows,cols" text format: Parse, Load, Write, Save, InitDir, List
//	render/          - PNG images, replay frames and ASCII views of a Result
//	cmd/pathfinder/  - command-line driver
//
// Quick ASCII example:
//
//	S 1 1        S . .
//	1 _ 1   →    v # .
//	1 1 G        > > G
//
//	breadth-first search around a single wall: arrows mark the path,
//	dots mark cells that were expanded but not used.
//
//	go install github.com/katalvlaran/pathfinder/cmd/pathfinder@latest
package pathfinder
