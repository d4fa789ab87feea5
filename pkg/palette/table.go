// Package palette maps escape results to colors using a logarithmic
// brightness curve.
package palette

import (
	"errors"
	"fmt"
	"math"
)

// ErrIterations is returned when a table is requested for a non-positive
// iteration budget, or one above MaxIterations.
var ErrIterations = errors.New("iteration budget must be positive")

// MaxIterations bounds the iteration budget, and so the size of a Table.
const MaxIterations = 1 << 24

// offset keeps log away from zero for the first entry.
const offset = 0.004

// Table holds one 8-bit brightness per escape iteration. It is built once per
// render and only read afterwards.
type Table []uint8

// NewTable builds the brightness curve for maxIter iterations:
//
//	table[i] = floor(255 + ln(i/maxIter + 0.004) * 255/ln(255))
//
// clamped to [0, 255]. The 255 offset is applied before flooring.
func NewTable(maxIter int) (Table, error) {
	if maxIter <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrIterations, maxIter)
	}
	if maxIter > MaxIterations {
		return nil, fmt.Errorf("%w: %d exceeds %d", ErrIterations, maxIter, MaxIterations)
	}

	scale := 255.0 / math.Log(255.0)
	n := float64(maxIter)

	table := make(Table, maxIter)
	for i := range table {
		v := math.Floor(255.0 + math.Log(float64(i)/n+offset)*scale)
		table[i] = uint8(math.Max(0, math.Min(255, v)))
	}

	return table, nil
}
