package palette

import (
	"github.com/willbeason/escape-fractal/pkg/escape"
	"image/color"
)

// Inside is the color of points which never escaped.
var Inside = color.RGBA{R: 0, G: 0, B: 0, A: 0xff}

// Color returns the color for an escape result: black for bounded orbits,
// otherwise a blue-tinted gray keyed on how quickly the orbit escaped.
func (t Table) Color(r escape.Result) color.RGBA {
	i, escaped := r.Iteration()
	if !escaped {
		return Inside
	}

	if len(t) == 0 {
		return color.RGBA{R: 0, G: 0, B: 0xff, A: 0xff}
	}

	if i >= len(t) {
		i = len(t) - 1
	}

	return color.RGBA{R: t[i], G: t[i], B: 0xff, A: 0xff}
}
