// Package raster turns a decoded image into a grid of density glyphs.
//
// The image is resampled with nearest-neighbor interpolation to the target
// character grid, reduced to luminance, and each intensity is quantized
// against a Ramp ordered from densest to sparsest glyph. Terminal cells are
// roughly twice as tall as they are wide, so the row count is compressed by
// CellAspect.
package raster
