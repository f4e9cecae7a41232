// Package convert runs the image to colored text pipeline: load once,
// rasterize, then emit with colors sampled from the same decoded image.
package convert

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log"

	"github.com/lixenwraith/img2ascii/emit"
	"github.com/lixenwraith/img2ascii/loader"
	"github.com/lixenwraith/img2ascii/raster"
)

// DefaultWidth is the grid width used when none is given
const DefaultWidth = 64

// ErrNoInput is returned when Options.Input is empty
var ErrNoInput = errors.New("input path is required")

// Options configures one conversion
type Options struct {
	Input    string
	Width    int
	Policy   emit.Policy
	Coalesce bool

	// Zero values select raster.DefaultRamp and raster.CellAspect
	Ramp       raster.Ramp
	CellAspect float64
}

// DefaultOptions returns options with the default width and nearest sampling
func DefaultOptions() Options {
	return Options{
		Width:  DefaultWidth,
		Policy: emit.PolicyNearest,
	}
}

// Result reports what a conversion produced
type Result struct {
	Format  string
	SourceW int
	SourceH int
	GridW   int
	GridH   int

	emit.Stats
}

// Run converts opts.Input and writes the colored text to w
func Run(opts Options, w io.Writer) (Result, error) {
	if opts.Input == "" {
		return Result{}, ErrNoInput
	}
	img, format, err := loader.LoadFormat(opts.Input)
	if err != nil {
		var de *loader.DecodeError
		if errors.As(err, &de) {
			log.Printf("Load %s failed: %+v", de.Path, de.Err)
		}
		return Result{}, err
	}
	log.Printf("Loaded %s (%s)", opts.Input, format)
	res, err := Image(img, opts, w)
	res.Format = format
	return res, err
}

// Image converts an already decoded image; the same instance feeds both the
// rasterizer and the color sampler
func Image(img image.Image, opts Options, w io.Writer) (Result, error) {
	b := img.Bounds()
	res := Result{SourceW: b.Dx(), SourceH: b.Dy()}
	log.Printf("Source %dx%d, width %d, policy %s", res.SourceW, res.SourceH, opts.Width, opts.Policy)

	var rOpts []raster.Option
	if opts.Ramp.Len() > 0 {
		rOpts = append(rOpts, raster.WithRamp(opts.Ramp))
	}
	if opts.CellAspect > 0 {
		rOpts = append(rOpts, raster.WithCellAspect(opts.CellAspect))
	}

	grid, err := raster.Rasterize(img, opts.Width, rOpts...)
	if err != nil {
		return res, fmt.Errorf("rasterize: %w", err)
	}
	res.GridW = grid.Width()
	res.GridH = grid.Height()
	log.Printf("Grid %dx%d (%d cells)", res.GridW, res.GridH, grid.Len())

	e := &emit.Emitter{Policy: opts.Policy, Coalesce: opts.Coalesce}
	stats, err := e.Emit(w, grid, img)
	res.Stats = stats
	if err != nil {
		return res, fmt.Errorf("emit: %w", err)
	}
	log.Printf("Emitted %d glyphs (%d dropped), %d bytes in %d write(s)",
		stats.Glyphs, stats.Dropped, stats.Bytes, stats.Writes)
	return res, nil
}
