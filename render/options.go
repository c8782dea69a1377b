package render

import (
	"errors"
	"image/color"
)

// Sentinel errors for rendering.
var (
	// ErrNilResult is returned when a nil *search.Result is passed.
	ErrNilResult = errors.New("render: result is nil")
	// ErrStepRange is returned for a replay step outside [0, Expansions()]
	// or a non-positive frame interval.
	ErrStepRange = errors.New("render: replay step out of range")
)

// MinTileSize is the smallest tile edge, in pixels, WithTileSize accepts.
const MinTileSize = 8

// Palette holds the colors used for each tile kind and overlay.
type Palette struct {
	Open     color.Color
	Wall     color.Color
	Start    color.Color
	Goal     color.Color
	Path     color.Color
	Expanded color.Color
	Arrow    color.Color
	Grid     color.Color
	Text     color.Color
}

// DefaultPalette returns the stock colors.
func DefaultPalette() Palette {
	return Palette{
		Open:     color.RGBA{240, 240, 240, 255},
		Wall:     color.RGBA{40, 40, 48, 255},
		Start:    color.RGBA{40, 180, 70, 255},
		Goal:     color.RGBA{100, 120, 255, 255},
		Path:     color.RGBA{250, 210, 80, 255},
		Expanded: color.RGBA{170, 210, 235, 255},
		Arrow:    color.RGBA{200, 60, 40, 255},
		Grid:     color.Black,
		Text:     color.Black,
	}
}

// Options configures rendering.
type Options struct {
	// TileSize is the edge of one cell in pixels.
	TileSize int
	// Costs draws each open cell's cost marker.
	Costs bool
	// Arrows draws the leave direction on start and path tiles.
	Arrows bool
	// Palette selects the colors.
	Palette Palette
}

// Option configures rendering via functional arguments.
type Option func(*Options)

// DefaultOptions returns 32px tiles with costs and arrows shown.
func DefaultOptions() Options {
	return Options{
		TileSize: 32,
		Costs:    true,
		Arrows:   true,
		Palette:  DefaultPalette(),
	}
}

// WithTileSize sets the tile edge in pixels. Panics below MinTileSize.
func WithTileSize(px int) Option {
	if px < MinTileSize {
		panic("render: tile size below MinTileSize")
	}
	return func(o *Options) {
		o.TileSize = px
	}
}

// WithCosts toggles cost labels.
func WithCosts(on bool) Option {
	return func(o *Options) {
		o.Costs = on
	}
}

// WithArrows toggles direction arrows on the path.
func WithArrows(on bool) Option {
	return func(o *Options) {
		o.Arrows = on
	}
}

// WithPalette replaces the colors.
func WithPalette(p Palette) Option {
	return func(o *Options) {
		o.Palette = p
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
