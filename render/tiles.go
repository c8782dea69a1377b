package render

import (
	"fmt"

	"github.com/katalvlaran/pathfinder/maze"
	"github.com/katalvlaran/pathfinder/search"
)

// Tile classifies a cell for drawing.
type Tile int

const (
	// TileOpen is an untouched traversable cell.
	TileOpen Tile = iota
	// TileWall is an impassable cell.
	TileWall
	// TileStart is the search start.
	TileStart
	// TileGoal is the search goal.
	TileGoal
	// TilePath is a cell on the found path (start and goal excluded).
	TilePath
	// TileExpanded is a cell expanded during the search but not on the path.
	TileExpanded
)

// view is a snapshot of a Result after a given number of expansions.
// Precedence when classifying: wall > goal > start > path > expanded > open.
type view struct {
	res      *search.Result
	expanded map[maze.Node]struct{}
	leave    map[maze.Node]maze.Direction // path tiles, only once the replay is complete
}

// newView prepares the snapshot after step expansions.
func newView(res *search.Result, step int) (*view, error) {
	if res == nil || res.Maze == nil {
		return nil, ErrNilResult
	}
	if step < 0 || step > res.Expansions() {
		return nil, fmt.Errorf("%w: step %d of %d", ErrStepRange, step, res.Expansions())
	}

	v := &view{
		res:      res,
		expanded: make(map[maze.Node]struct{}, step),
	}
	for _, n := range res.ExpandedOrder[:step] {
		v.expanded[n] = struct{}{}
	}
	if res.Found && step == res.Expansions() {
		steps := res.Steps()
		v.leave = make(map[maze.Node]maze.Direction, len(steps))
		for _, s := range steps {
			v.leave[s.Node] = s.Leave
		}
	}

	return v, nil
}

// tile classifies n.
func (v *view) tile(n maze.Node) Tile {
	switch {
	case v.res.Maze.IsWall(n):
		return TileWall
	case n == v.res.Goal:
		return TileGoal
	case n == v.res.Start:
		return TileStart
	}
	if _, ok := v.leave[n]; ok {
		return TilePath
	}
	if _, ok := v.expanded[n]; ok {
		return TileExpanded
	}
	return TileOpen
}

// arrow returns the leave direction drawn on n, if any.
func (v *view) arrow(n maze.Node) maze.Direction {
	return v.leave[n]
}

// Classify returns the Tile of n in the completed rendering of res.
func Classify(res *search.Result, n maze.Node) (Tile, error) {
	if res == nil {
		return TileOpen, ErrNilResult
	}
	v, err := newView(res, res.Expansions())
	if err != nil {
		return TileOpen, err
	}
	return v.tile(n), nil
}
