// Package cli holds the command-line surface shared by the fractal binaries.
package cli

import (
	"errors"
	"fmt"
	"github.com/spf13/pflag"
	"github.com/willbeason/escape-fractal/pkg/render"
	"math"
	"strconv"
	"strings"
)

// ErrComplex is returned for strings which are not complex literals.
var ErrComplex = errors.New("invalid complex number")

// ParseComplex reads a complex literal. Both 1+2i and 1+2j spellings are
// accepted, optionally in parentheses.
func ParseComplex(s string) (complex128, error) {
	lit := strings.ReplaceAll(strings.TrimSpace(s), "j", "i")
	lit = strings.ReplaceAll(lit, " ", "")

	c, err := strconv.ParseComplex(lit, 128)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrComplex, s)
	}

	for _, f := range []float64{real(c), imag(c)} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, fmt.Errorf("%w: %q is not finite", ErrComplex, s)
		}
	}

	return c, nil
}

func formatComplex(c complex128) string {
	return strings.Trim(strconv.FormatComplex(c, 'g', -1, 128), "()")
}

// Complex is a flag holding a complex number.
type Complex complex128

var _ pflag.Value = (*Complex)(nil)

func (c *Complex) String() string {
	return formatComplex(complex128(*c))
}

func (c *Complex) Set(s string) error {
	v, err := ParseComplex(s)
	if err != nil {
		return err
	}
	*c = Complex(v)
	return nil
}

func (c *Complex) Type() string {
	return "complex"
}

// Box is a flag holding the two corners of a viewport, written
// "bottom-left,top-right", for example "-2-2i,2+2i".
type Box render.Viewport

var _ pflag.Value = (*Box)(nil)

func (b *Box) String() string {
	return formatComplex(b.Min) + "," + formatComplex(b.Max)
}

func (b *Box) Set(s string) error {
	corners := strings.Split(unwrap(strings.TrimSpace(s)), ",")
	if len(corners) != 2 {
		return fmt.Errorf("%w: %q: want two corners separated by a comma", ErrComplex, s)
	}

	lo, err := ParseComplex(corners[0])
	if err != nil {
		return err
	}

	hi, err := ParseComplex(corners[1])
	if err != nil {
		return err
	}

	b.Min, b.Max = lo, hi
	return nil
}

func (b *Box) Type() string {
	return "box"
}

// unwrap removes one pair of brackets enclosing the whole box, as in
// "(-2-2j, 2+2j)".
func unwrap(s string) string {
	if len(s) < 2 {
		return s
	}

	open, closing := s[0], s[len(s)-1]
	if !(open == '(' && closing == ')') && !(open == '[' && closing == ']') {
		return s
	}

	inner := s[1 : len(s)-1]
	if strings.ContainsAny(inner, "()[]") {
		// The brackets belong to the corners.
		return s
	}

	return inner
}
