package render_test

import (
	"fmt"

	"github.com/katalvlaran/pathfinder/maze"
	"github.com/katalvlaran/pathfinder/render"
	"github.com/katalvlaran/pathfinder/search"
)

////////////////////////////////////////////////////////////////////////////////
// Example: ASCII
////////////////////////////////////////////////////////////////////////////////

// ExampleASCII prints a breadth-first search around a single wall.
// Arrows show where the path leaves each cell; dots are cells that were
// expanded but not used.
func ExampleASCII() {
	m, _ := maze.New([][]string{
		{"1", "1", "1"},
		{"1", "_", "1"},
		{"1", "1", "1"},
	})
	res, _ := search.BreadthFirst(maze.At(0, 0), maze.At(2, 2), m, search.WithShuffle(false))

	text, _ := render.ASCII(res)
	fmt.Println(text)
	// Output:
	// S..
	// v#.
	// >>G
}
