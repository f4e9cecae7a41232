package terminal

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

var (
	// RGBBlack is the zero value black color
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
)

// Equal returns true if colors match
func (c RGB) Equal(other RGB) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// FromColor converts any color.Color to RGB, dropping alpha.
// Straight-alpha colors keep their channels as stored, even when fully
// transparent. Premultiplied colors are divided back out; with zero alpha
// nothing remains and the result is black.
func FromColor(c color.Color) RGB {
	switch v := c.(type) {
	case color.NRGBA:
		return RGB{v.R, v.G, v.B}
	case color.NRGBA64:
		return RGB{uint8(v.R >> 8), uint8(v.G >> 8), uint8(v.B >> 8)}
	}

	r, g, b, a := c.RGBA()
	if a == 0 {
		return RGBBlack
	}
	return RGB{
		R: uint8((r * 0xff) / a),
		G: uint8((g * 0xff) / a),
		B: uint8((b * 0xff) / a),
	}
}

// Tcell converts to a tcell true color
func (c RGB) Tcell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// FromTcell converts a tcell color back to RGB
// Palette and default colors resolve through tcell's own RGB table; unknown colors yield black
func FromTcell(c tcell.Color) RGB {
	r, g, b := c.RGB()
	if r < 0 || g < 0 || b < 0 {
		return RGBBlack
	}
	return RGB{uint8(r), uint8(g), uint8(b)}
}
