package emit

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log"

	"github.com/lixenwraith/img2ascii/raster"
	"github.com/lixenwraith/img2ascii/terminal"
)

// ErrGridMismatch is returned when a grid and its color data disagree in size,
// or the grid is missing
var ErrGridMismatch = errors.New("emit: grid and colors do not match")

// Stats describes one emission
type Stats struct {
	Glyphs  int   // characters written with a color
	Dropped int   // characters skipped because their source pixel was out of bounds
	Bytes   int64 // bytes delivered to the writer, reset included
	Writes  int   // write calls on the writer
}

// Emitter paints a glyph grid with colors sampled from its source image
type Emitter struct {
	Policy   Policy
	Coalesce bool
}

// New returns an emitter with the default policy
func New() *Emitter {
	return &Emitter{Policy: PolicyNearest}
}

// Colors samples one color per grid cell, row-major
// PolicyStride has no per-cell mapping and returns ErrUnknownPolicy
func (e *Emitter) Colors(grid *raster.Grid, img image.Image) ([]terminal.RGB, error) {
	if err := checkInputs(grid, img); err != nil {
		return nil, err
	}
	sampler, err := SamplerFor(e.Policy)
	if err != nil {
		return nil, fmt.Errorf("%w: %s has no per-cell colors", err, e.Policy)
	}
	return sampler.Sample(img, grid.Width(), grid.Height()), nil
}

// Emit writes grid to w, one 24-bit foreground sequence per glyph, rows
// separated by newlines, followed by a color reset.
// Output is buffered and reaches w in a single write. The reset is written
// even when emission stops early.
func (e *Emitter) Emit(w io.Writer, grid *raster.Grid, img image.Image) (stats Stats, err error) {
	if err := checkInputs(grid, img); err != nil {
		return stats, err
	}

	var colors []terminal.RGB
	if e.Policy != PolicyStride {
		if colors, err = e.Colors(grid, img); err != nil {
			return stats, err
		}
	}

	newlines := grid.Height() - 1
	stream := terminal.NewStream(w, terminal.StreamSize(grid.Len()+newlines, newlines))
	stream.Coalesce = e.Coalesce
	defer func() {
		closeErr := stream.Close()
		stats.Bytes = stream.Written()
		stats.Writes = stream.Writes()
		if err == nil && closeErr != nil {
			err = fmt.Errorf("emit: flush: %w", closeErr)
		}
	}()

	if e.Policy == PolicyStride {
		err = emitStride(stream, grid, img, &stats)
		if stats.Dropped > 0 {
			log.Printf("emit: stride dropped %d of %d characters (source %dx%d, grid %dx%d)",
				stats.Dropped, stats.Dropped+stats.Glyphs,
				img.Bounds().Dx(), img.Bounds().Dy(), grid.Width(), grid.Height())
		}
		return stats, err
	}

	width := grid.Width()
	for y := 0; y < grid.Height(); y++ {
		if y > 0 {
			if err = stream.WriteGlyph('\n'); err != nil {
				return stats, err
			}
		}
		for x := 0; x < width; x++ {
			ch, _ := grid.At(x, y)
			if err = stream.SetFg(colors[y*width+x]); err != nil {
				return stats, err
			}
			if err = stream.WriteGlyph(ch); err != nil {
				return stats, err
			}
			stats.Glyphs++
		}
	}
	return stats, nil
}

// emitStride walks the grid text, newlines included, by flat index with the
// source width as row stride. Characters whose pixel lies below the source
// are skipped.
func emitStride(stream *terminal.Stream, grid *raster.Grid, img image.Image, stats *Stats) error {
	bounds := img.Bounds()
	stride := bounds.Dx()
	rows := bounds.Dy()

	i := 0
	for _, ch := range grid.String() {
		x := i % stride
		y := i / stride
		i++
		if y >= rows {
			stats.Dropped++
			continue
		}
		fg := terminal.FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y))
		if err := stream.SetFg(fg); err != nil {
			return err
		}
		if err := stream.WriteGlyph(ch); err != nil {
			return err
		}
		stats.Glyphs++
	}
	return nil
}

func checkInputs(grid *raster.Grid, img image.Image) error {
	if grid == nil || grid.Len() == 0 {
		return ErrGridMismatch
	}
	if img == nil || img.Bounds().Empty() {
		return raster.ErrEmptyImage
	}
	return nil
}
