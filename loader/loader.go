// Package loader decodes image files into image.Image.
//
// Supported formats: PNG, JPEG, GIF from the standard library and BMP, TIFF,
// WebP from golang.org/x/image. Every failure, whether the file is missing,
// unreadable or undecodable, is reported as a *DecodeError.
package loader

import (
	"bufio"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"os"

	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DecodeError reports a failure to produce an image from a source
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	cause := errors.Cause(e.Err)
	// Path errors already name the file
	if _, ok := cause.(*fs.PathError); ok {
		return cause.Error()
	}
	return fmt.Sprintf("%s: %v", e.Path, cause)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Load opens and decodes the image at path
func Load(path string) (image.Image, error) {
	img, _, err := LoadFormat(path)
	return img, err
}

// LoadFormat is Load that also reports the detected format name
func LoadFormat(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", &DecodeError{Path: path, Err: errors.WithStack(err)}
	}
	defer f.Close()

	return Decode(f, path)
}

// Decode decodes an image from r; name identifies the source in errors
// Returns the registered format name alongside the image
func Decode(r io.Reader, name string) (image.Image, string, error) {
	img, format, err := image.Decode(bufio.NewReader(r))
	if err != nil {
		return nil, "", &DecodeError{Path: name, Err: errors.Wrap(err, "decode")}
	}

	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, "", &DecodeError{Path: name, Err: errors.Errorf("%s image has no pixels", format)}
	}
	return img, format, nil
}
