package render

import (
	"github.com/willbeason/escape-fractal/pkg/escape"
	"strconv"
)

// A Fractal decides, for a point of the plane, when its orbit escapes.
type Fractal interface {
	Escape(p complex128, maxIter int) escape.Result
}

// Mandelbrot treats each pixel as the constant of the map, starting every
// orbit at the origin.
type Mandelbrot struct{}

func (Mandelbrot) Escape(p complex128, maxIter int) escape.Result {
	return escape.Mandelbrot(p, maxIter)
}

func (Mandelbrot) String() string {
	return "mandelbrot"
}

// Julia treats each pixel as the starting point of an orbit under a map with
// the fixed constant C.
type Julia struct {
	C complex128
}

func (j Julia) Escape(p complex128, maxIter int) escape.Result {
	return escape.Julia(p, j.C, maxIter)
}

func (j Julia) String() string {
	return "julia(" + formatComplex(j.C) + ")"
}

func formatComplex(c complex128) string {
	return strconv.FormatComplex(c, 'g', -1, 128)
}
