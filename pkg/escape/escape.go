// Package escape implements the escape-time test for the quadratic family
// z -> z^2 + c.
package escape

import "github.com/willbeason/escape-fractal/pkg/transforms"

// Radius is the escape radius. Any orbit reaching a magnitude greater than
// Radius is unbounded.
const Radius = 2.0

const radiusSquared = Radius * Radius

// Time follows the orbit of z0 under z -> z^2 + c for at most maxIter
// iterations.
func Time(z0, c complex128, maxIter int) Result {
	j := transforms.Julia{C: c}

	z := z0
	for i := 0; i < maxIter; i++ {
		z = j.Next(z)
		if real(z)*real(z)+imag(z)*imag(z) > radiusSquared {
			return Escaped(i)
		}
	}

	return Bounded
}

// Mandelbrot tests c against the Mandelbrot set: the orbit always starts at
// the origin.
func Mandelbrot(c complex128, maxIter int) Result {
	m := transforms.Mandelbrot{}

	var z complex128
	for i := 0; i < maxIter; i++ {
		z = m.Next(z, c)
		if real(z)*real(z)+imag(z)*imag(z) > radiusSquared {
			return Escaped(i)
		}
	}

	return Bounded
}

// Julia tests z0 against the Julia set defined by c.
func Julia(z0, c complex128, maxIter int) Result {
	return Time(z0, c, maxIter)
}

// IsInMandelbrot reports whether c is likely to be in the Mandelbrot set.
// A false result is certain; a true result only means the orbit did not
// escape within maxIter iterations.
func IsInMandelbrot(c complex128, maxIter int) bool {
	return Mandelbrot(c, maxIter).IsBounded()
}

// IsInJulia reports whether z0 is likely to be in the Julia set defined by c.
func IsInJulia(z0, c complex128, maxIter int) bool {
	return Julia(z0, c, maxIter).IsBounded()
}
