// Package emit paints a glyph grid with 24-bit foreground colors sampled from
// the source image and writes it as one ANSI stream.
//
// The sampling policy is explicit. Nearest, average and lanczos give every
// glyph a color from its own region of the source. Stride reproduces the flat
// index walk over the grid text, which drops characters whose pixel falls
// outside the source when the grid and image sizes differ.
//
// Besides the ANSI stream, Paint draws the same colored cells into a
// tcell.Screen for applications that already own a terminal screen; see
// ExamplePaint.
package emit
