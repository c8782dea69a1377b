package render_test

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yalue/image_utils"

	"github.com/katalvlaran/pathfinder/maze"
	"github.com/katalvlaran/pathfinder/render"
	"github.com/katalvlaran/pathfinder/search"
)

const tile = 32

// ringResult is an unshuffled BFS over a 3×3 ring from (0,0) to (2,2).
// Path: (0,0) (1,0) (2,0) (2,1) (2,2); seven expansions.
func ringResult(t *testing.T) *search.Result {
	t.Helper()
	m, err := maze.New([][]string{
		{"1", "1", "1"},
		{"1", "_", "1"},
		{"1", "1", "1"},
	})
	require.NoError(t, err)
	res, err := search.BreadthFirst(maze.At(0, 0), maze.At(2, 2), m, search.WithShuffle(false))
	require.NoError(t, err)
	require.Equal(t, 7, res.Expansions())

	return res
}

// sample reads the lower-right quadrant of a tile, clear of labels, arrows and grid lines.
func sample(img image.Image, n maze.Node) color.RGBA {
	return color.RGBAModel.Convert(img.At(n.Col*tile+27, n.Row*tile+27)).(color.RGBA)
}

func rgba(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

func TestASCII(t *testing.T) {
	got, err := render.ASCII(ringResult(t))
	require.NoError(t, err)
	assert.Equal(t, "S..\nv#.\n>>G", got)

	_, err = render.ASCII(nil)
	assert.ErrorIs(t, err, render.ErrNilResult)
}

func TestASCII_NoPathAndWideCosts(t *testing.T) {
	m, err := maze.New([][]string{
		{"1", "_", "12"},
		{"3", "_", "4"},
	})
	require.NoError(t, err)
	res, err := search.AStar(maze.At(0, 0), maze.At(1, 2), m)
	require.NoError(t, err)
	require.False(t, res.Found)

	got, err := render.ASCII(res)
	require.NoError(t, err)
	assert.Equal(t, "S#+\n.#G", got)
}

func TestClassify(t *testing.T) {
	res := ringResult(t)
	cases := map[maze.Node]render.Tile{
		maze.At(0, 0): render.TileStart,
		maze.At(2, 2): render.TileGoal,
		maze.At(1, 1): render.TileWall,
		maze.At(1, 0): render.TilePath,
		maze.At(0, 2): render.TileExpanded,
	}
	for n, want := range cases {
		got, err := render.Classify(res, n)
		require.NoError(t, err)
		assert.Equal(t, want, got, "tile %v", n)
	}

	_, err := render.Classify(nil, maze.At(0, 0))
	assert.ErrorIs(t, err, render.ErrNilResult)
}

func TestImage_Colors(t *testing.T) {
	res := ringResult(t)
	p := render.DefaultPalette()

	img, err := render.Image(res)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 3*tile, 3*tile), img.Bounds())

	assert.Equal(t, rgba(p.Wall), sample(img, maze.At(1, 1)))
	assert.Equal(t, rgba(p.Start), sample(img, maze.At(0, 0)))
	assert.Equal(t, rgba(p.Goal), sample(img, maze.At(2, 2)))
	assert.Equal(t, rgba(p.Path), sample(img, maze.At(2, 1)))
	assert.Equal(t, rgba(p.Expanded), sample(img, maze.At(1, 2)))

	small, err := render.Image(res, render.WithTileSize(16), render.WithCosts(false), render.WithArrows(false))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 48, 48), small.Bounds())
}

// TestImage_Arrows checks that path tiles carry a drawn arrow at their center
// and that WithArrows(false) leaves the plain path fill.
func TestImage_Arrows(t *testing.T) {
	res := ringResult(t)
	p := render.DefaultPalette()
	center := func(img image.Image, n maze.Node) color.Color {
		return img.At(n.Col*tile+tile/2, n.Row*tile+tile/2)
	}

	img, err := render.Image(res)
	require.NoError(t, err)
	for _, n := range []maze.Node{maze.At(1, 0), maze.At(2, 0), maze.At(2, 1)} {
		assert.True(t, image_utils.ColorsEqual(p.Arrow, center(img, n)), "arrow missing on %v", n)
	}
	// expanded but off the path: no arrow
	assert.True(t, image_utils.ColorsEqual(p.Expanded, center(img, maze.At(1, 2))))

	plain, err := render.Image(res, render.WithArrows(false))
	require.NoError(t, err)
	assert.True(t, image_utils.ColorsEqual(p.Path, center(plain, maze.At(2, 1))))

	// the last frame before completion shows no arrows yet
	mid, err := render.Frame(res, res.Expansions()-1)
	require.NoError(t, err)
	assert.False(t, image_utils.ColorsEqual(p.Arrow, center(mid, maze.At(2, 1))))
}

// TestFrame_Replay checks expansions appear step by step and the path only at the end.
func TestFrame_Replay(t *testing.T) {
	res := ringResult(t)
	p := render.DefaultPalette()

	first, err := render.Frame(res, 0)
	require.NoError(t, err)
	assert.Equal(t, rgba(p.Open), sample(first, maze.At(1, 2)))
	assert.Equal(t, rgba(p.Open), sample(first, maze.At(2, 1)))

	// six expansions: (1,2) is still pending, (2,1) is expanded but the path is not shown yet
	mid, err := render.Frame(res, 6)
	require.NoError(t, err)
	assert.Equal(t, rgba(p.Open), sample(mid, maze.At(1, 2)))
	assert.Equal(t, rgba(p.Expanded), sample(mid, maze.At(2, 1)))

	for _, step := range []int{-1, 8} {
		_, err = render.Frame(res, step)
		assert.ErrorIs(t, err, render.ErrStepRange, "step %d", step)
	}
	_, err = render.Frame(nil, 0)
	assert.ErrorIs(t, err, render.ErrNilResult)
}

func TestFrames(t *testing.T) {
	res := ringResult(t)

	frames, err := render.Frames(res, 3)
	require.NoError(t, err)
	require.Len(t, frames, 4) // steps 0, 3, 6, 7

	full, err := render.Image(res)
	require.NoError(t, err)
	assert.Equal(t, full, frames[len(frames)-1])

	frames, err = render.Frames(res, 100)
	require.NoError(t, err)
	assert.Len(t, frames, 2) // steps 0 and 7

	_, err = render.Frames(res, 0)
	assert.ErrorIs(t, err, render.ErrStepRange)
	_, err = render.Frames(nil, 1)
	assert.ErrorIs(t, err, render.ErrNilResult)
}

func TestSavePNG(t *testing.T) {
	img, err := render.Image(ringResult(t), render.WithTileSize(10))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "ring.png")
	require.NoError(t, render.SavePNG(path, img))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 30, 30), decoded.Bounds())
}

func TestOptions(t *testing.T) {
	assert.Panics(t, func() { render.WithTileSize(render.MinTileSize - 1) })
	assert.NotPanics(t, func() { render.WithTileSize(render.MinTileSize) })

	custom := render.DefaultPalette()
	custom.Wall = color.RGBA{255, 0, 0, 255}
	img, err := render.Image(ringResult(t), render.WithPalette(custom))
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, sample(img, maze.At(1, 1)))
}
