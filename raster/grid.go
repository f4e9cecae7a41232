package raster

import "strings"

// Grid is a rectangular glyph matrix in row-major order
type Grid struct {
	width  int
	height int
	cells  []rune
}

// NewGrid creates a grid filled with fill
func NewGrid(width, height int, fill rune) *Grid {
	cells := make([]rune, width*height)
	for i := range cells {
		cells[i] = fill
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// Width returns the column count
func (g *Grid) Width() int {
	return g.width
}

// Height returns the row count
func (g *Grid) Height() int {
	return g.height
}

// Len returns the number of cells
func (g *Grid) Len() int {
	return len(g.cells)
}

// At returns the glyph at the given position
func (g *Grid) At(x, y int) (rune, bool) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return 0, false
	}
	return g.cells[y*g.width+x], true
}

// set writes a glyph without bounds checks; callers iterate within bounds
func (g *Grid) set(x, y int, r rune) {
	g.cells[y*g.width+x] = r
}

// Row returns a copy of row y
func (g *Grid) Row(y int) []rune {
	if y < 0 || y >= g.height {
		return nil
	}
	// Return a copy to prevent external modification
	row := make([]rune, g.width)
	copy(row, g.cells[y*g.width:(y+1)*g.width])
	return row
}

// Lines returns each row as a string
func (g *Grid) Lines() []string {
	lines := make([]string, g.height)
	for y := range lines {
		lines[y] = string(g.cells[y*g.width : (y+1)*g.width])
	}
	return lines
}

// String joins rows with newlines; there is no trailing newline
func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}
