package transforms

// Julia is the quadratic map z -> z^2 + C with C held fixed for the whole
// orbit.
type Julia struct {
	C complex128
}

func (j Julia) Next(z complex128) complex128 {
	return z*z + j.C
}
