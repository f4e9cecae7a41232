package emit

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/img2ascii/raster"
	"github.com/lixenwraith/img2ascii/terminal"
)

// Paint draws grid into screen at the origin, each glyph styled with its
// color. Cells outside the screen are clipped. The caller owns Show/Sync.
func Paint(screen tcell.Screen, grid *raster.Grid, colors []terminal.RGB) error {
	if grid == nil || len(colors) != grid.Len() {
		return ErrGridMismatch
	}

	sw, sh := screen.Size()
	w := min(grid.Width(), sw)
	h := min(grid.Height(), sh)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			ch, _ := grid.At(x, y)
			style := tcell.StyleDefault.Foreground(colors[y*grid.Width()+x].Tcell())
			screen.SetContent(x, y, ch, nil, style)
		}
	}
	return nil
}
