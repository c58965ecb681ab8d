package transforms

// An Escaper classifies a point of the complex plane by how many steps its
// orbit takes to leave the escape radius.
type Escaper interface {
	Escape(c complex128) int
}

// An Axis maps an integer cell index onto one real axis of the plane.
type Axis interface {
	At(i int) float64
}
