// File: search/example_test.go
package search_test

import (
	"fmt"

	"github.com/katalvlaran/pathfinder/maze"
	"github.com/katalvlaran/pathfinder/search"
)

////////////////////////////////////////////////////////////////////////////////
// Example: UniformCost
////////////////////////////////////////////////////////////////////////////////

// ExampleUniformCost routes around an expensive cell.
//
//	S 9 G
//	1 1 1
//
// Going straight costs 9+1; the detour along the bottom row costs 4.
func ExampleUniformCost() {
	m, _ := maze.New([][]string{
		{"1", "9", "1"},
		{"1", "1", "1"},
	})
	res, _ := search.UniformCost(maze.At(0, 0), maze.At(0, 2), m)

	fmt.Println("path:", res.Path)
	fmt.Println("cost:", res.PathCost, "length:", res.PathLength())
	// Output:
	// path: [(0,0) (1,0) (1,1) (1,2) (0,2)]
	// cost: 4 length: 5
}

////////////////////////////////////////////////////////////////////////////////
// Example: RunNamed
////////////////////////////////////////////////////////////////////////////////

// ExampleRunNamed compares every registered algorithm on an open 10×10 grid.
// Shuffling is off so the expansion counts are stable.
func ExampleRunNamed() {
	m, _ := maze.Uniform(10, 10, 1)
	for _, name := range search.Names() {
		res, err := search.RunNamed(name, maze.At(0, 0), maze.At(9, 9), m, search.WithShuffle(false))
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf("%-20s cost=%d length=%d\n", name, res.PathCost, res.PathLength())
	}

	_, err := search.RunNamed("Greedy", maze.At(0, 0), maze.At(9, 9), m)
	fmt.Println(err)
	// Output:
	// Depth First Search   cost=90 length=91
	// Breadth First Search cost=18 length=19
	// Uniform Cost Search  cost=18 length=19
	// A* Search            cost=18 length=19
	// search: unknown algorithm: "Greedy"
}

////////////////////////////////////////////////////////////////////////////////
// Example: no path
////////////////////////////////////////////////////////////////////////////////

// ExampleAStar_noPath shows the explicit no-path outcome.
func ExampleAStar_noPath() {
	m, _ := maze.New([][]string{
		{"1", "_", "1"},
	})
	res, err := search.AStar(maze.At(0, 0), maze.At(0, 2), m)
	fmt.Println(err, res.Found, res.PathLength(), res.Expansions())
	// Output:
	// <nil> false -1 1
}
