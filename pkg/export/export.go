// Package export writes rendered images to disk.
package export

import (
	"errors"
	"fmt"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned for output paths whose extension does not
// name a lossless format this package can encode.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Encoder writes an image to w.
type Encoder func(w io.Writer, img image.Image) error

var encoders = map[string]Encoder{
	".png":  png.Encode,
	".bmp":  bmp.Encode,
	".tif":  encodeTIFF,
	".tiff": encodeTIFF,
}

func encodeTIFF(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
}

// EncoderFor returns the encoder matching the extension of path.
func EncoderFor(path string) (Encoder, error) {
	ext := strings.ToLower(filepath.Ext(path))

	enc, ok := encoders[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	return enc, nil
}

// Save encodes img in the format named by the extension of path and writes it
// there. The image is first written to a temporary file next to path, so a
// failed Save leaves no partial image behind.
func Save(path string, img image.Image) error {
	enc, err := EncoderFor(path)
	if err != nil {
		return err
	}

	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("unable to create %s: %w", path, err)
	}
	tmp := f.Name()

	err = write(f, enc, img)
	if err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("unable to write %s: %w", path, err)
	}

	err = os.Rename(tmp, path)
	if err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("unable to write %s: %w", path, err)
	}

	return nil
}

func write(f *os.File, enc Encoder, img image.Image) error {
	err := enc(f, img)
	if err == nil {
		err = f.Chmod(0o644)
	}

	closeErr := f.Close()
	if err == nil {
		err = closeErr
	}

	return err
}
