package terminal

import (
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestFromColor(t *testing.T) {
	tests := []struct {
		name string
		in   color.Color
		want RGB
	}{
		{"opaque rgba", color.RGBA{10, 20, 30, 255}, RGB{10, 20, 30}},
		{"nrgba half alpha", color.NRGBA{200, 100, 50, 128}, RGB{200, 100, 50}},
		{"transparent nrgba keeps rgb", color.NRGBA{200, 100, 50, 0}, RGB{200, 100, 50}},
		{"transparent nrgba64 keeps rgb", color.NRGBA64{0xc8ff, 0x6400, 0x3210, 0}, RGB{200, 100, 50}},
		{"transparent premultiplied", color.RGBA{0, 0, 0, 0}, RGBBlack},
		{"gray", color.Gray{Y: 77}, RGB{77, 77, 77}},
		{"white", color.White, RGBWhite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromColor(tt.in)
			// Un-premultiplying 8-bit alpha can be off by one
			if diff(got.R, tt.want.R) > 1 || diff(got.G, tt.want.G) > 1 || diff(got.B, tt.want.B) > 1 {
				t.Errorf("FromColor(%v) = %v, expected %v", tt.in, got, tt.want)
			}
		})
	}
}

func diff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

func TestTcellRoundTrip(t *testing.T) {
	colors := []RGB{RGBBlack, RGBWhite, {1, 2, 3}, {250, 128, 0}}
	for _, c := range colors {
		tc := c.Tcell()
		if got := FromTcell(tc); !got.Equal(c) {
			t.Errorf("Round trip of %v through tcell gave %v", c, got)
		}
	}
}

func TestFromTcellDefault(t *testing.T) {
	if got := FromTcell(tcell.ColorDefault); got != RGBBlack {
		t.Errorf("Expected default color to map to black, got %v", got)
	}
}
