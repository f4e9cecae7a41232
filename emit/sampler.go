package emit

import (
	"image"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"

	"github.com/lixenwraith/img2ascii/terminal"
)

// Sampler computes one color per cell of a cols x rows grid laid over img
// Result is row-major: colors[y*cols + x]
type Sampler interface {
	Sample(img image.Image, cols, rows int) []terminal.RGB
}

// SamplerFor returns the sampler implementing p
// PolicyStride has no cell sampler; it is handled by the emitter directly
func SamplerFor(p Policy) (Sampler, error) {
	switch p {
	case PolicyNearest:
		return NearestSampler{}, nil
	case PolicyAverage:
		return AverageSampler{}, nil
	case PolicyLanczos:
		return LanczosSampler{}, nil
	}
	return nil, ErrUnknownPolicy
}

// NearestSampler picks the pixel at the center of each cell's source region
type NearestSampler struct{}

func (NearestSampler) Sample(img image.Image, cols, rows int) []terminal.RGB {
	bounds := img.Bounds()
	srcW := bounds.Dx()
	srcH := bounds.Dy()
	colors := make([]terminal.RGB, cols*rows)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			// Sample center of the corresponding region
			sx := bounds.Min.X + (x*srcW+srcW/2)/cols
			sy := bounds.Min.Y + (y*srcH+srcH/2)/rows

			// Clamp to bounds
			if sx >= bounds.Max.X {
				sx = bounds.Max.X - 1
			}
			if sy >= bounds.Max.Y {
				sy = bounds.Max.Y - 1
			}

			colors[y*cols+x] = terminal.FromColor(img.At(sx, sy))
		}
	}
	return colors
}

// AverageSampler averages every source pixel covered by a cell
// Averaging happens in linear RGB so mixed regions keep their perceived brightness
type AverageSampler struct{}

func (AverageSampler) Sample(img image.Image, cols, rows int) []terminal.RGB {
	bounds := img.Bounds()
	srcW := bounds.Dx()
	srcH := bounds.Dy()
	colors := make([]terminal.RGB, cols*rows)

	for y := 0; y < rows; y++ {
		y0, y1 := span(y, rows, srcH)
		for x := 0; x < cols; x++ {
			x0, x1 := span(x, cols, srcW)

			var r, g, b float64
			n := 0
			for sy := y0; sy < y1; sy++ {
				for sx := x0; sx < x1; sx++ {
					p := terminal.FromColor(img.At(bounds.Min.X+sx, bounds.Min.Y+sy))
					c := colorful.Color{R: float64(p.R) / 255, G: float64(p.G) / 255, B: float64(p.B) / 255}
					n++
					lr, lg, lb := c.LinearRgb()
					r += lr
					g += lg
					b += lb
				}
			}

			avg := colorful.LinearRgb(r/float64(n), g/float64(n), b/float64(n)).Clamped()
			cr, cg, cb := avg.RGB255()
			colors[y*cols+x] = terminal.RGB{R: cr, G: cg, B: cb}
		}
	}
	return colors
}

// span returns the source range [lo, hi) covered by cell i of n over size pixels
// Always at least one pixel wide so upscaled cells still sample something
func span(i, n, size int) (int, int) {
	lo := i * size / n
	hi := (i + 1) * size / n
	if hi <= lo {
		hi = lo + 1
	}
	if hi > size {
		hi = size
		if lo >= hi {
			lo = hi - 1
		}
	}
	return lo, hi
}

// LanczosSampler downscales the source to the grid size with a Lanczos3 filter
type LanczosSampler struct{}

func (LanczosSampler) Sample(img image.Image, cols, rows int) []terminal.RGB {
	// Resize reads from the origin and weighs by alpha; hand it an opaque
	// origin-based copy so transparent pixels keep their stored color
	if o, ok := img.(interface{ Opaque() bool }); !ok || !o.Opaque() || img.Bounds().Min != (image.Point{}) {
		img = flatten(img)
	}
	small := resize.Resize(uint(cols), uint(rows), img, resize.Lanczos3)
	origin := small.Bounds().Min
	colors := make([]terminal.RGB, cols*rows)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			colors[y*cols+x] = terminal.FromColor(small.At(origin.X+x, origin.Y+y))
		}
	}
	return colors
}

// flatten copies img into an opaque RGBA with its origin at (0,0)
func flatten(img image.Image) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			c := terminal.FromColor(img.At(b.Min.X+x, b.Min.Y+y))
			i := dst.PixOffset(x, y)
			dst.Pix[i+0] = c.R
			dst.Pix[i+1] = c.G
			dst.Pix[i+2] = c.B
			dst.Pix[i+3] = 0xff
		}
	}
	return dst
}
