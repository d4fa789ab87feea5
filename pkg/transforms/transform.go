package transforms

// A Recurrence advances a point of an orbit by one step.
type Recurrence interface {
	Next(z complex128) complex128
}

var _ Recurrence = Julia{}
