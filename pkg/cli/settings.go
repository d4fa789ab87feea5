package cli

import (
	"errors"
	"fmt"
	"github.com/willbeason/escape-fractal/pkg/export"
	"github.com/willbeason/escape-fractal/pkg/palette"
	"github.com/willbeason/escape-fractal/pkg/render"
)

// ErrIterations is returned for a non-positive iteration budget, or one too
// large to build a color table for.
var ErrIterations = errors.New("invalid max_iter")

// Kind selects which family of sets a command draws.
type Kind int

const (
	MandelbrotKind Kind = iota
	JuliaKind
)

func (k Kind) String() string {
	return []string{
		"mandelbrot", "julia",
	}[k]
}

// Settings are the parameters of one render, as read from flags.
type Settings struct {
	Kind Kind

	Box     Box
	C       Complex
	Width   int
	MaxIter int
	FigPath string

	Workers int
	Verbose bool
	Quiet   bool
}

// DefaultSettings returns the settings a command starts from before flags
// are applied.
func DefaultSettings(kind Kind) Settings {
	s := Settings{
		Kind:    kind,
		Box:     Box{Min: -2 - 2i, Max: 2 + 2i},
		Width:   2000,
		MaxIter: 500,
		FigPath: "./mandelbrot_graph.png",
	}

	if kind == JuliaKind {
		s.C = Complex(-0.8 + 0.156i)
		s.MaxIter = 50
		s.FigPath = "./julia_graph.png"
	}

	return s
}

// Viewport returns the region of the plane to draw.
func (s *Settings) Viewport() render.Viewport {
	return render.Viewport(s.Box)
}

// Fractal returns the set the settings describe.
func (s *Settings) Fractal() render.Fractal {
	if s.Kind == JuliaKind {
		return render.Julia{C: complex128(s.C)}
	}
	return render.Mandelbrot{}
}

// Verify rejects settings which cannot produce an image, before any
// computation starts.
func (s *Settings) Verify() error {
	if s.MaxIter <= 0 {
		return fmt.Errorf("%w: got %d", ErrIterations, s.MaxIter)
	}
	if s.MaxIter > palette.MaxIterations {
		return fmt.Errorf("%w: %d exceeds %d", ErrIterations, s.MaxIter, palette.MaxIterations)
	}

	_, _, err := s.Viewport().Size(s.Width)
	if err != nil {
		return err
	}

	_, err = export.EncoderFor(s.FigPath)
	if err != nil {
		return err
	}

	if s.Workers < 0 {
		s.Workers = 0
	}

	return nil
}

func (s *Settings) String() string {
	output := fmt.Sprintf("\n%s settings\n", s.Kind)
	output += fmt.Sprintf("Box: %s\n", s.Box.String())
	if s.Kind == JuliaKind {
		output += fmt.Sprintf("C: %s\n", s.C.String())
	}
	output += fmt.Sprintf("Width: %d\n", s.Width)
	output += fmt.Sprintf("Max iterations: %d\n", s.MaxIter)
	output += fmt.Sprintf("Output: %s\n", s.FigPath)
	output += fmt.Sprintf("Workers: %d\n", s.Workers)
	return output
}
