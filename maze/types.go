package maze

import (
	"fmt"
	"math"
)

// Wall is the cell marker for an impassable cell.
const Wall = "_"

// MaxCost is the largest cost a single cell may carry.
const MaxCost = math.MaxInt32

// Direction names the cardinal move that connects two adjacent cells.
// The zero value NoDirection means "unset".
type Direction int8

const (
	// NoDirection is the unset direction (start of a path, end of a path, non-adjacent nodes).
	NoDirection Direction = iota
	// North decreases the row.
	North
	// South increases the row.
	South
	// East increases the column.
	East
	// West decreases the column.
	West
)

var directionNames = [...]string{
	NoDirection: "none",
	North:       "north",
	South:       "south",
	East:        "east",
	West:        "west",
}

// String returns the lower-case name of d.
func (d Direction) String() string {
	if d < NoDirection || int(d) >= len(directionNames) {
		return fmt.Sprintf("Direction(%d)", int8(d))
	}
	return directionNames[d]
}

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	return d >= North && d <= West
}

// Delta returns the (row, column) offset of a single move in direction d.
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case North:
		return -1, 0
	case South:
		return 1, 0
	case East:
		return 0, 1
	case West:
		return 0, -1
	}
	return 0, 0
}

// Opposite returns the reverse direction; NoDirection stays NoDirection.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	return NoDirection
}

// compass lists the neighbor directions in canonical order: N, S, E, W.
var compass = [...]Direction{North, South, East, West}

// Node is a (Row, Col) grid position. Nodes are comparable and may be used
// as map keys; equality is by row and column only.
type Node struct {
	Row, Col int
}

// At is shorthand for Node{Row: row, Col: col}.
func At(row, col int) Node {
	return Node{Row: row, Col: col}
}

// Step returns the node reached by a single move in direction d.
func (n Node) Step(d Direction) Node {
	dr, dc := d.Delta()
	return Node{Row: n.Row + dr, Col: n.Col + dc}
}

// String formats n as "(row,col)".
func (n Node) String() string {
	return fmt.Sprintf("(%d,%d)", n.Row, n.Col)
}

// DirectionBetween returns the move that takes from to to, or NoDirection
// when the two nodes are not 4-adjacent.
func DirectionBetween(from, to Node) Direction {
	for _, d := range compass {
		if from.Step(d) == to {
			return d
		}
	}
	return NoDirection
}

// Move is a neighbor returned by Neighbors together with the direction
// of the move that produced it.
type Move struct {
	Node Node
	Dir  Direction
}

// NodePath is a frontier entry: a node and the path from the start to it.
// Path is never empty and its last element equals Node.
type NodePath struct {
	Node Node
	Path []Node
}

// Start returns the seed entry (n, [n]).
func Start(n Node) NodePath {
	return NodePath{Node: n, Path: []Node{n}}
}

// Extend returns a new entry for next whose path is a fresh copy of np.Path
// with next appended. np is left untouched and shares no memory with the result.
func (np NodePath) Extend(next Node) NodePath {
	path := make([]Node, len(np.Path), len(np.Path)+1)
	copy(path, np.Path)
	return NodePath{Node: next, Path: append(path, next)}
}

// Len returns the number of nodes on the entry's path.
func (np NodePath) Len() int {
	return len(np.Path)
}

// PathStep is a node on a finished path with the direction it was entered
// from (Arrive) and the direction it is left by (Leave).
type PathStep struct {
	Node   Node
	Arrive Direction
	Leave  Direction
}

// Annotate builds the PathStep sequence for path. The start has no Arrive
// direction and the goal has no Leave direction. The input is not modified.
// Complexity: O(len(path)).
func Annotate(path []Node) []PathStep {
	if len(path) == 0 {
		return nil
	}
	steps := make([]PathStep, len(path))
	for i, n := range path {
		steps[i].Node = n
		if i > 0 {
			steps[i].Arrive = DirectionBetween(path[i-1], n)
			steps[i-1].Leave = steps[i].Arrive
		}
	}
	return steps
}
