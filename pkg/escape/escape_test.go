package escape

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestMandelbrot(t *testing.T) {
	tcs := []struct {
		name    string
		c       complex128
		maxIter int
		want    Result
	}{
		{name: "origin", c: 0, maxIter: 50, want: Bounded},
		{name: "i", c: 1i, maxIter: 50, want: Bounded},
		{name: "tip of the needle", c: -2, maxIter: 100, want: Bounded},
		{name: "cusp at 50", c: 0.251, maxIter: 50, want: Bounded},
		{name: "cusp at 100", c: 0.251, maxIter: 100, want: Escaped(96)},
		{name: "cusp with a large budget", c: 0.251, maxIter: 1000, want: Escaped(96)},
		{name: "half", c: 0.5, maxIter: 50, want: Escaped(4)},
		{name: "seahorse", c: -0.75 + 0.1i, maxIter: 500, want: Escaped(32)},
		{name: "outside radius", c: 3, maxIter: 50, want: Escaped(0)},
		{name: "zero budget", c: 3, maxIter: 0, want: Bounded},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got := Mandelbrot(tc.c, tc.maxIter)
			if got != tc.want {
				t.Errorf("Mandelbrot(%v, %d) = %v, want %v", tc.c, tc.maxIter, got, tc.want)
			}
		})
	}
}

func TestMandelbrot_OutsideRadiusEscapesImmediately(t *testing.T) {
	for k := 0; k < 64; k++ {
		angle := 2 * math.Pi * float64(k) / 64
		for _, r := range []float64{2.0001, 2.5, 10, 1e6} {
			c := cmplx.Rect(r, angle)
			got := Mandelbrot(c, 10)
			if got != Escaped(0) {
				t.Errorf("Mandelbrot(%v, 10) = %v, want %v", c, got, Escaped(0))
			}
		}
	}
}

func TestJulia(t *testing.T) {
	tcs := []struct {
		name    string
		z0, c   complex128
		maxIter int
		want    Result
	}{
		{name: "origin for i", z0: 0, c: 1i, maxIter: 50, want: Bounded},
		{name: "i for 0.5+0.01i", z0: 1i, c: 0.5 + 0.01i, maxIter: 50, want: Escaped(4)},
		{name: "origin for 0.251", z0: 0, c: 0.251, maxIter: 100, want: Escaped(96)},
		{name: "default set origin", z0: 0, c: -0.8 + 0.156i, maxIter: 50, want: Bounded},
		{name: "outside radius", z0: 5, c: 0, maxIter: 50, want: Escaped(0)},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got := Julia(tc.z0, tc.c, tc.maxIter)
			if got != tc.want {
				t.Errorf("Julia(%v, %v, %d) = %v, want %v", tc.z0, tc.c, tc.maxIter, got, tc.want)
			}
		})
	}
}

func TestJulia_OriginMatchesMandelbrot(t *testing.T) {
	for _, c := range []complex128{0.251, -0.75 + 0.1i, 0.3, 1i, -1.5 + 0.02i, 0.4 + 0.4i} {
		if got, want := Julia(0, c, 200), Mandelbrot(c, 200); got != want {
			t.Errorf("Julia(0, %v) = %v, Mandelbrot(%v) = %v", c, got, c, want)
		}
	}
}

func TestIsIn(t *testing.T) {
	if !IsInMandelbrot(1i, 50) {
		t.Error("IsInMandelbrot(i, 50) = false, want true")
	}
	if !IsInMandelbrot(0.251, 50) {
		t.Error("IsInMandelbrot(0.251, 50) = false, want true")
	}
	if IsInMandelbrot(0.251, 100) {
		t.Error("IsInMandelbrot(0.251, 100) = true, want false")
	}
	if !IsInJulia(0, 1i, 50) {
		t.Error("IsInJulia(0, i, 50) = false, want true")
	}
	if IsInJulia(1i, 0.5+0.01i, 50) {
		t.Error("IsInJulia(i, 0.5+0.01i, 50) = true, want false")
	}
}

func TestResult(t *testing.T) {
	var zero Result
	if !zero.IsBounded() {
		t.Error("zero Result is not Bounded")
	}
	if _, ok := Bounded.Iteration(); ok {
		t.Error("Bounded.Iteration() reported an escape")
	}
	if i, ok := Escaped(7).Iteration(); !ok || i != 7 {
		t.Errorf("Escaped(7).Iteration() = %d, %t, want 7, true", i, ok)
	}
	if got := Escaped(0).String(); got != "escaped@0" {
		t.Errorf("Escaped(0).String() = %q", got)
	}
	if got := Bounded.String(); got != "bounded" {
		t.Errorf("Bounded.String() = %q", got)
	}
}

func BenchmarkMandelbrot(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Mandelbrot(-0.75+0.1i, 500)
	}
}

func BenchmarkMandelbrot_Bounded(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Mandelbrot(-0.1+0.1i, 500)
	}
}
