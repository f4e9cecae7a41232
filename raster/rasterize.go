package raster

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/disintegration/gift"
)

// CellAspect compensates for terminal cells being roughly twice as tall as wide
const CellAspect = 0.55

var (
	ErrInvalidWidth = errors.New("raster: target width must be positive")
	ErrEmptyImage   = errors.New("raster: image has no pixels")
)

// Options configures rasterization
type Options struct {
	Ramp       Ramp
	CellAspect float64
}

// Option mutates Options
type Option func(*Options)

// WithRamp overrides the glyph ramp
func WithRamp(r Ramp) Option {
	return func(o *Options) {
		o.Ramp = r
	}
}

// WithCellAspect overrides the vertical compression factor
func WithCellAspect(aspect float64) Option {
	return func(o *Options) {
		o.CellAspect = aspect
	}
}

func defaultOptions() Options {
	return Options{
		Ramp:       DefaultRamp,
		CellAspect: CellAspect,
	}
}

// GridSize returns the grid dimensions for a srcW x srcH image at the given width
// height = round(width * srcH/srcW * cellAspect), never less than one row
func GridSize(srcW, srcH, width int, cellAspect float64) (int, int, error) {
	if width <= 0 {
		return 0, 0, fmt.Errorf("%w: got %d", ErrInvalidWidth, width)
	}
	if srcW <= 0 || srcH <= 0 {
		return 0, 0, ErrEmptyImage
	}

	aspectRatio := float64(srcH) / float64(srcW)
	height := int(math.Round(float64(width) * aspectRatio * cellAspect))
	if height < 1 {
		height = 1
	}
	return width, height, nil
}

// Rasterize resamples img to width columns and maps each pixel's luminance to a glyph
// Pure: the same image and width always produce the same grid
func Rasterize(img image.Image, width int, opts ...Option) (*Grid, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Ramp.Len() == 0 {
		return nil, ErrEmptyRamp
	}

	bounds := img.Bounds()
	outW, outH, err := GridSize(bounds.Dx(), bounds.Dy(), width, o.CellAspect)
	if err != nil {
		return nil, err
	}

	gray := Luminance(img, outW, outH)

	grid := NewGrid(outW, outH, o.Ramp.Last())
	for y := 0; y < outH; y++ {
		row := gray.Pix[y*gray.Stride : y*gray.Stride+outW]
		for x, v := range row {
			grid.set(x, y, o.Ramp.Glyph(float64(v)/255))
		}
	}

	return grid, nil
}

// Luminance resamples img to exactly w x h with nearest-neighbor and converts to grayscale
// Alpha is ignored: a transparent pixel keeps the luminance of its stored color.
// The returned image has its origin at (0,0)
func Luminance(img image.Image, w, h int) *image.Gray {
	g := gift.New(
		gift.ColorFunc(dropAlpha),
		gift.Resize(w, h, gift.NearestNeighborResampling),
		gift.Grayscale(),
	)
	dst := image.NewGray(g.Bounds(img.Bounds()))
	g.Draw(dst, img)
	return dst
}

func dropAlpha(r, g, b, _ float32) (float32, float32, float32, float32) {
	return r, g, b, 1
}
