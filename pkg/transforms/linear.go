package transforms

// Linear is the affine map i ↦ Add + i·Multiply.
type Linear struct {
	Multiply float64
	Add      float64
}

// Span returns the Linear that divides [lo, hi) into n equal steps.
func Span(lo, hi float64, n int) Linear {
	return Linear{
		Multiply: (hi - lo) / float64(n),
		Add:      lo,
	}
}

func (l Linear) At(i int) float64 {
	return l.Add + float64(i)*l.Multiply
}

var _ Axis = Linear{}
