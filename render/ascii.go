package render

import (
	"strings"

	"github.com/katalvlaran/pathfinder/maze"
	"github.com/katalvlaran/pathfinder/search"
)

// ASCII glyphs.
const (
	GlyphWall     = '#'
	GlyphStart    = 'S'
	GlyphGoal     = 'G'
	GlyphExpanded = '.'
	GlyphWideCost = '+' // open cell whose cost has more than one digit
)

var arrowGlyphs = map[maze.Direction]byte{
	maze.North: '^',
	maze.South: 'v',
	maze.East:  '>',
	maze.West:  '<',
}

// ASCII renders the completed search one character per cell, rows separated
// by newlines: walls '#', start 'S', goal 'G', path cells as the arrow of the
// move leaving them, expanded cells '.', other open cells their cost digit.
func ASCII(res *search.Result) (string, error) {
	if res == nil {
		return "", ErrNilResult
	}
	v, err := newView(res, res.Expansions())
	if err != nil {
		return "", err
	}

	m := res.Maze
	var sb strings.Builder
	sb.Grow(m.Height() * (m.Width() + 1))
	for r := 0; r < m.Height(); r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < m.Width(); c++ {
			n := maze.At(r, c)
			switch v.tile(n) {
			case TileWall:
				sb.WriteByte(GlyphWall)
			case TileStart:
				sb.WriteByte(GlyphStart)
			case TileGoal:
				sb.WriteByte(GlyphGoal)
			case TilePath:
				sb.WriteByte(arrowGlyphs[v.arrow(n)])
			case TileExpanded:
				sb.WriteByte(GlyphExpanded)
			default:
				if cell := m.Cell(n); len(cell) == 1 {
					sb.WriteString(cell)
				} else {
					sb.WriteByte(GlyphWideCost)
				}
			}
		}
	}
	return sb.String(), nil
}
