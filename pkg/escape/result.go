package escape

import "fmt"

// Result is the outcome of following an orbit: either the index of the
// iteration at which it left the disc of radius 2, or Bounded if it never did
// within the iteration budget.
//
// The zero value is Bounded.
type Result struct {
	iteration int
	escaped   bool
}

// Bounded is the Result of an orbit which stayed within the escape radius for
// every iteration. Such points are presumed to be in the set.
var Bounded = Result{}

// Escaped returns the Result of an orbit which first exceeded the escape
// radius on the 0-based iteration i.
func Escaped(i int) Result {
	return Result{iteration: i, escaped: true}
}

// Iteration returns the escape iteration and true, or 0 and false if the
// orbit is Bounded.
func (r Result) Iteration() (int, bool) {
	return r.iteration, r.escaped
}

func (r Result) IsBounded() bool {
	return !r.escaped
}

func (r Result) String() string {
	if !r.escaped {
		return "bounded"
	}
	return fmt.Sprintf("escaped@%d", r.iteration)
}
