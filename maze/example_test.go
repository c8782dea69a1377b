// File: maze/example_test.go
package maze_test

import (
	"fmt"

	"github.com/katalvlaran/pathfinder/maze"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Neighbors
////////////////////////////////////////////////////////////////////////////////

// ExampleMaze_Neighbors lists the open neighbors of the top-middle cell of a
// 3×3 maze whose center is a wall. Order is canonical (N,S,E,W) because
// shuffling is off.
func ExampleMaze_Neighbors() {
	m, _ := maze.New([][]string{
		{"1", "2", "3"},
		{"4", "_", "6"},
		{"7", "8", "9"},
	})
	for _, mv := range m.Neighbors(maze.At(0, 1), false, nil) {
		fmt.Printf("%v %s cost=%d\n", mv.Node, mv.Dir, m.Cost(mv.Node))
	}
	// Output:
	// (0,2) east cost=3
	// (0,0) west cost=1
}

////////////////////////////////////////////////////////////////////////////////
// Example: Annotate
////////////////////////////////////////////////////////////////////////////////

// ExampleAnnotate shows the direction pairs attached to a finished path.
func ExampleAnnotate() {
	path := []maze.Node{{0, 0}, {1, 0}, {1, 1}}
	for _, s := range maze.Annotate(path) {
		fmt.Printf("%v arrive=%s leave=%s\n", s.Node, s.Arrive, s.Leave)
	}
	// Output:
	// (0,0) arrive=none leave=south
	// (1,0) arrive=south leave=east
	// (1,1) arrive=east leave=none
}
