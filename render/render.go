// Package render draws a search.Result: walls, expanded cells, the found
// path with direction arrows, start/goal markers and cell costs.
//
// Image draws the finished search. Frame and Frames replay it: frame k shows
// the first k expansions, and the path appears only on the final frame, in
// the same order an interactive viewer would animate it.
// ASCII gives a dependency-free text view for terminals and logs.
package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/yalue/image_utils"

	"github.com/katalvlaran/pathfinder/maze"
	"github.com/katalvlaran/pathfinder/search"
)

// Image renders the completed search.
func Image(res *search.Result, opts ...Option) (image.Image, error) {
	if res == nil {
		return nil, ErrNilResult
	}
	return Frame(res, res.Expansions(), opts...)
}

// Frame renders the search as it stood after step expansions.
// step must lie in [0, res.Expansions()].
func Frame(res *search.Result, step int, opts ...Option) (image.Image, error) {
	v, err := newView(res, step)
	if err != nil {
		return nil, err
	}
	return draw(v, buildOptions(opts)), nil
}

// Frames renders a replay with one frame every `every` expansions. The last
// frame is always the completed search.
func Frames(res *search.Result, every int, opts ...Option) ([]image.Image, error) {
	if res == nil {
		return nil, ErrNilResult
	}
	if every < 1 {
		return nil, fmt.Errorf("%w: frame interval %d", ErrStepRange, every)
	}
	o := buildOptions(opts)
	total := res.Expansions()
	frames := make([]image.Image, 0, total/every+1)
	for step := 0; ; step += every {
		if step > total {
			step = total
		}
		v, err := newView(res, step)
		if err != nil {
			return nil, err
		}
		frames = append(frames, draw(v, o))
		if step == total {
			break
		}
	}
	return frames, nil
}

// SavePNG writes img to path as PNG.
func SavePNG(path string, img image.Image) error {
	return gg.SavePNG(path, img)
}

// draw paints every tile of v onto a fresh context.
func draw(v *view, o Options) image.Image {
	m := v.res.Maze
	ts := o.TileSize
	dc := gg.NewContext(m.Width()*ts, m.Height()*ts)
	dc.SetColor(o.Palette.Open)
	dc.Clear()
	glyphs := make(map[maze.Direction]image.Image, 4)

	for r := 0; r < m.Height(); r++ {
		for c := 0; c < m.Width(); c++ {
			n := maze.At(r, c)
			x, y := float64(c*ts), float64(r*ts)
			kind := v.tile(n)

			dc.SetColor(o.Palette.fill(kind))
			dc.DrawRectangle(x, y, float64(ts), float64(ts))
			dc.Fill()

			if o.Arrows && (kind == TilePath || kind == TileStart) {
				if d := v.arrow(n); d.Valid() {
					if glyphs[d] == nil {
						glyphs[d] = arrow(d, o.Palette.Arrow, ts/2)
					}
					dc.DrawImage(glyphs[d], c*ts+ts/4, r*ts+ts/4)
				}
			}

			dc.SetColor(o.Palette.Text)
			switch kind {
			case TileStart:
				dc.DrawStringAnchored("S", x+float64(ts)/2, y+float64(ts)/2, 0.5, 0.5)
			case TileGoal:
				dc.DrawStringAnchored("G", x+float64(ts)/2, y+float64(ts)/2, 0.5, 0.5)
			}
			if o.Costs && kind != TileWall && kind != TileStart {
				dc.DrawStringAnchored(m.Cell(n), x+3, y+3, 0, 1)
			}

			dc.SetColor(o.Palette.Grid)
			dc.SetLineWidth(1)
			dc.DrawRectangle(x, y, float64(ts), float64(ts))
			dc.Stroke()
		}
	}

	return dc.Image()
}

// glyphSize is the edge of the master arrow glyph before scaling.
const glyphSize = 64

// arrow returns a size×size arrow pointing in direction d. The glyph is drawn
// once at glyphSize, pointing east and rotated about its center, then scaled.
func arrow(d maze.Direction, c color.Color, size int) image.Image {
	const mid = glyphSize / 2
	dc := gg.NewContext(glyphSize, glyphSize)
	dc.RotateAbout(heading(d), mid, mid)
	// shaft
	dc.DrawRectangle(8, mid-6, 30, 12)
	// head
	dc.MoveTo(36, 10)
	dc.LineTo(58, mid)
	dc.LineTo(36, glyphSize-10)
	dc.ClosePath()
	dc.SetColor(c)
	dc.Fill()

	return image_utils.ResizeImage(dc.Image(), size, size)
}

// heading is the clockwise rotation, in radians, that turns an east-pointing
// glyph towards d on a y-down canvas.
func heading(d maze.Direction) float64 {
	switch d {
	case maze.South:
		return gg.Radians(90)
	case maze.West:
		return gg.Radians(180)
	case maze.North:
		return gg.Radians(270)
	}
	return 0
}

// fill maps a tile kind to its fill.
func (p Palette) fill(t Tile) color.Color {
	switch t {
	case TileWall:
		return p.Wall
	case TileStart:
		return p.Start
	case TileGoal:
		return p.Goal
	case TilePath:
		return p.Path
	case TileExpanded:
		return p.Expanded
	}
	return p.Open
}
