package transforms

// EscapeRadiusSquared is the squared escape radius. Any orbit with |z| > 2
// diverges, so comparing |z|² against 4 avoids the square root.
const EscapeRadiusSquared = 4.0

// Mandelbrot iterates z ← z² + c from z = 0.
type Mandelbrot struct {
	MaxIterations int
}

// Escape returns the number of steps taken before |z|² exceeded
// EscapeRadiusSquared, or MaxIterations if the orbit stayed bounded.
func (m Mandelbrot) Escape(c complex128) int {
	cr, ci := real(c), imag(c)
	zr, zi := 0.0, 0.0

	n := 0
	// Explicit conversions keep the compiler from fusing multiply-adds, so
	// counts match across architectures.
	for float64(zr*zr)+float64(zi*zi) <= EscapeRadiusSquared && n < m.MaxIterations {
		zr, zi = float64(zr*zr)-float64(zi*zi)+cr, float64(2*zr*zi)+ci
		n++
	}

	return n
}

var _ Escaper = Mandelbrot{}
