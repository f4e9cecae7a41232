package convert

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/img2ascii/emit"
	"github.com/lixenwraith/img2ascii/loader"
	"github.com/lixenwraith/img2ascii/raster"
	"github.com/lixenwraith/img2ascii/terminal"
)

func writePNG(t *testing.T, w, h int, c color.Color) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	path := filepath.Join(t.TempDir(), "in.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create fixture: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("Failed to encode fixture: %v", err)
	}
	return path
}

func TestRunSolidBlack(t *testing.T) {
	opts := DefaultOptions()
	opts.Input = writePNG(t, 10, 10, color.Black)
	opts.Width = 4

	var out bytes.Buffer
	res, err := Run(opts, &out)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Format != "png" {
		t.Errorf("Format = %q, want png", res.Format)
	}
	if res.GridW != 4 || res.GridH != 2 {
		t.Errorf("grid = %dx%d, want 4x2", res.GridW, res.GridH)
	}
	if res.Glyphs != 8 || res.Writes != 1 {
		t.Errorf("Glyphs = %d, Writes = %d; want 8, 1", res.Glyphs, res.Writes)
	}

	seq := terminal.FgSequence(terminal.RGBBlack)
	want := strings.Repeat(seq+"@", 4) + "\n" + strings.Repeat(seq+"@", 4) + terminal.ResetSequence()
	if got := out.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRunDefaultWidth(t *testing.T) {
	opts := DefaultOptions()
	opts.Input = writePNG(t, 100, 50, color.White)

	var out bytes.Buffer
	res, err := Run(opts, &out)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.GridW != DefaultWidth || res.GridH != 18 {
		t.Errorf("grid = %dx%d, want %dx18", res.GridW, res.GridH, DefaultWidth)
	}
}

func TestRunErrors(t *testing.T) {
	var out bytes.Buffer

	if _, err := Run(Options{Width: 4}, &out); !errors.Is(err, ErrNoInput) {
		t.Errorf("no input: err = %v, want ErrNoInput", err)
	}

	missing := Options{Input: filepath.Join(t.TempDir(), "nope.png"), Width: 4}
	_, err := Run(missing, &out)
	var de *loader.DecodeError
	if !errors.As(err, &de) {
		t.Errorf("missing file: err = %v, want *loader.DecodeError", err)
	}

	zero := Options{Input: writePNG(t, 4, 4, color.Black), Width: 0}
	if _, err := Run(zero, &out); !errors.Is(err, raster.ErrInvalidWidth) {
		t.Errorf("zero width: err = %v, want ErrInvalidWidth", err)
	}

	if out.Len() != 0 {
		t.Errorf("failed runs wrote %q", out.String())
	}
}

func TestImageStrideDrops(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 1))
	opts := Options{Width: 6, Policy: emit.PolicyStride}

	var out bytes.Buffer
	res, err := Image(img, opts, &out)
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	if res.GridW != 6 || res.GridH != 1 {
		t.Fatalf("grid = %dx%d, want 6x1", res.GridW, res.GridH)
	}
	if res.Glyphs != 3 || res.Dropped != 3 {
		t.Errorf("Glyphs = %d, Dropped = %d; want 3, 3", res.Glyphs, res.Dropped)
	}
}

func TestImageCustomRampAndAspect(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 4))
	opts := Options{
		Width:      4,
		Ramp:       raster.MustRamp("#."),
		CellAspect: 1,
		Coalesce:   true,
	}

	var out bytes.Buffer
	res, err := Image(img, opts, &out)
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	if res.GridH != 4 {
		t.Errorf("GridH = %d, want 4", res.GridH)
	}
	want := terminal.FgSequence(terminal.RGBBlack) + "####\n####\n####\n####" + terminal.ResetSequence()
	if got := out.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}
