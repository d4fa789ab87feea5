package transforms

// Mandelbrot is the quadratic map where the constant is the point being
// tested rather than a property of the map.
type Mandelbrot struct{}

func (m Mandelbrot) Next(z complex128, c complex128) complex128 {
	return z*z + c
}

// At fixes the constant, turning the map into an ordinary Recurrence.
func (m Mandelbrot) At(c complex128) Julia {
	return Julia{C: c}
}
