package raster

import (
	"errors"
	"fmt"
	"math"

	"github.com/mattn/go-runewidth"
)

// DefaultGlyphs is the density ramp, densest first
const DefaultGlyphs = "@#8&$%*+;:,. "

var (
	ErrEmptyRamp = errors.New("raster: ramp has no glyphs")
	ErrWideGlyph = errors.New("raster: glyph does not occupy exactly one cell")
)

// Ramp is an immutable ordered glyph sequence, densest first
type Ramp struct {
	glyphs []rune
}

// DefaultRamp is the process-wide ramp built from DefaultGlyphs
var DefaultRamp = MustRamp(DefaultGlyphs)

// NewRamp builds a ramp from glyphs ordered densest to sparsest
// Every glyph must be exactly one terminal column wide so a grid column maps to one cell
func NewRamp(glyphs string) (Ramp, error) {
	rs := []rune(glyphs)
	if len(rs) == 0 {
		return Ramp{}, ErrEmptyRamp
	}
	for i, r := range rs {
		if runewidth.RuneWidth(r) != 1 {
			return Ramp{}, fmt.Errorf("%w: %q at %d", ErrWideGlyph, r, i)
		}
	}
	return Ramp{glyphs: rs}, nil
}

// MustRamp is NewRamp that panics on invalid input
func MustRamp(glyphs string) Ramp {
	r, err := NewRamp(glyphs)
	if err != nil {
		panic(err)
	}
	return r
}

// Len returns the number of glyphs
func (r Ramp) Len() int {
	return len(r.glyphs)
}

// At returns glyph i
func (r Ramp) At(i int) rune {
	return r.glyphs[i]
}

// First returns the densest glyph
func (r Ramp) First() rune {
	return r.glyphs[0]
}

// Last returns the sparsest glyph
func (r Ramp) Last() rune {
	return r.glyphs[len(r.glyphs)-1]
}

// String returns the glyphs in order
func (r Ramp) String() string {
	return string(r.glyphs)
}

// Index quantizes intensity in [0,1] to a glyph index
// Rounds to nearest, then clamps; NaN maps to 0
func (r Ramp) Index(intensity float64) int {
	last := len(r.glyphs) - 1
	idx := math.Round(intensity * float64(last))
	if !(idx > 0) {
		return 0
	}
	if idx > float64(last) {
		return last
	}
	return int(idx)
}

// Glyph returns the glyph for intensity in [0,1]
func (r Ramp) Glyph(intensity float64) rune {
	return r.glyphs[r.Index(intensity)]
}
