package transforms

// Logistic is the population map x ↦ Rate·x·(1-x).
type Logistic struct {
	Rate float64
}

func (l Logistic) Next(x float64) float64 {
	return l.Rate * x * (1 - x)
}

// Iterate applies the map n times starting from x.
func (l Logistic) Iterate(x float64, n int) float64 {
	for i := 0; i < n; i++ {
		x = l.Next(x)
	}

	return x
}
