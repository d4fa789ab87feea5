package render

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrDegenerateViewport is returned when a viewport has no area, or when
	// it is so flat that the image would have no rows.
	ErrDegenerateViewport = errors.New("degenerate viewport")
	// ErrInvertedViewport is returned when Max is not above and to the right
	// of Min.
	ErrInvertedViewport = errors.New("inverted viewport")
	// ErrWidth is returned for a non-positive image width.
	ErrWidth = errors.New("width must be positive")
	// ErrTooLarge is returned when the image would have more than MaxPixels
	// pixels.
	ErrTooLarge = errors.New("image too large")
)

// MaxPixels bounds the size of a single image, about 800MB of RGB.
const MaxPixels = 1 << 28

// Viewport is the rectangle of the complex plane mapped onto an image.
type Viewport struct {
	// Min is the bottom-left corner.
	Min complex128
	// Max is the top-right corner.
	Max complex128
}

func (v Viewport) RealSpan() float64 {
	return real(v.Max) - real(v.Min)
}

func (v Viewport) ImagSpan() float64 {
	return imag(v.Max) - imag(v.Min)
}

func (v Viewport) String() string {
	return fmt.Sprintf("[%v, %v]", v.Min, v.Max)
}

// Verify checks that the viewport encloses a finite, non-empty rectangle.
func (v Viewport) Verify() error {
	rs, is := v.RealSpan(), v.ImagSpan()

	for _, span := range []float64{rs, is} {
		if span == 0 || math.IsNaN(span) || math.IsInf(span, 0) {
			return fmt.Errorf("%w: %v", ErrDegenerateViewport, v)
		}
	}

	if rs < 0 || is < 0 {
		return fmt.Errorf("%w: %v is not below and left of %v", ErrInvertedViewport, v.Min, v.Max)
	}

	return nil
}

// Size returns the image dimensions for an image width pixels wide. The
// height keeps the viewport's aspect ratio.
func (v Viewport) Size(width int) (int, int, error) {
	if width <= 0 {
		return 0, 0, fmt.Errorf("%w: got %d", ErrWidth, width)
	}

	err := v.Verify()
	if err != nil {
		return 0, 0, err
	}

	if width > MaxPixels {
		return 0, 0, fmt.Errorf("%w: width %d exceeds %d pixels", ErrTooLarge, width, MaxPixels)
	}

	h := math.Round(v.ImagSpan() / v.RealSpan() * float64(width))
	if math.IsNaN(h) || math.IsInf(h, 0) || h > float64(MaxPixels/width) {
		return 0, 0, fmt.Errorf("%w: %v at width %d exceeds %d pixels", ErrTooLarge, v, width, MaxPixels)
	}

	height := int(h)
	if height < 1 {
		return 0, 0, fmt.Errorf("%w: %v is less than one pixel tall at width %d", ErrDegenerateViewport, v, width)
	}

	return width, height, nil
}

// Point returns the complex coordinate of pixel (col, row) in a width by
// height image. Row 0 is the top of the image.
func (v Viewport) Point(col, row, width, height int) complex128 {
	dx, dy := v.Steps(width, height)
	return v.at(col, height-1-row, dx, dy)
}

// at returns the point col steps right of and up steps above Min.
func (v Viewport) at(col, up int, dx, dy float64) complex128 {
	return v.Min + complex(float64(col)*dx, float64(up)*dy)
}

// Steps returns the distance in the complex plane between horizontally and
// vertically adjacent pixels.
func (v Viewport) Steps(width, height int) (float64, float64) {
	return v.RealSpan() / float64(width), v.ImagSpan() / float64(height)
}
