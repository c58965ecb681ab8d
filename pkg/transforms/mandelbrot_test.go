package transforms

import "testing"

func TestMandelbrot_Escape(t *testing.T) {
	tests := []struct {
		name string
		c    complex128
		max  int
		want int
	}{
		{name: "origin stays bounded", c: 0, max: 100, want: 100},
		{name: "period two bulb", c: complex(-1, 0), max: 50, want: 50},
		{name: "outside radius escapes on first step", c: complex(3, 0), max: 100, want: 1},
		{name: "far imaginary escapes on first step", c: complex(0, -2.5), max: 100, want: 1},
		{name: "tip of the antenna stays on the radius", c: complex(-2, 0), max: 40, want: 40},
		{name: "just past the tip escapes", c: complex(-2.01, 0), max: 100, want: 1},
		{name: "c = 1 escapes on the third check", c: complex(1, 0), max: 100, want: 3},
		{name: "zero iterations", c: complex(3, 0), max: 0, want: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Mandelbrot{MaxIterations: tc.max}.Escape(tc.c)
			if got != tc.want {
				t.Errorf("Escape(%v) with max %d = %d, want %d", tc.c, tc.max, got, tc.want)
			}
		})
	}
}

// TestMandelbrot_EscapeIsFirstExit checks that the returned count is the
// smallest n where |z_n|² > 4, replaying the orbit with complex arithmetic.
func TestMandelbrot_EscapeIsFirstExit(t *testing.T) {
	const maxIter = 64
	m := Mandelbrot{MaxIterations: maxIter}

	for _, c := range []complex128{
		complex(0.3, 0.5), complex(0.4, 0.4), complex(0.26, 0),
		complex(-1.5, 0.5), complex(0.5, 0.5), complex(-0.1, 1.1),
	} {
		got := m.Escape(c)

		z := complex(0, 0)
		want := maxIter
		for n := 0; n < maxIter; n++ {
			if real(z)*real(z)+imag(z)*imag(z) > 4 {
				want = n
				break
			}
			z = z*z + c
		}

		if got != want {
			t.Errorf("Escape(%v) = %d, want %d", c, got, want)
		}
	}
}

func TestMandelbrot_Bounded(t *testing.T) {
	m := Mandelbrot{MaxIterations: 30}
	for re := -2.5; re <= 1.5; re += 0.125 {
		for im := -2.0; im <= 2.0; im += 0.125 {
			n := m.Escape(complex(re, im))
			if n < 0 || n > m.MaxIterations {
				t.Fatalf("Escape(%v, %v) = %d out of [0, %d]", re, im, n, m.MaxIterations)
			}
		}
	}
}
