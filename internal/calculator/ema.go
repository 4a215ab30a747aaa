package calculator

// EWMA computes the exponentially weighted moving average of values with the
// given smoothing span, using the recursive non-adjusted form:
//
//	out[0] = values[0]
//	out[i] = alpha*values[i] + (1-alpha)*out[i-1], alpha = 2/(span+1)
//
// The seed on the first sample (not a simple-average seed) is load-bearing
// for numerical compatibility with downstream consumers. Returns nil for an
// empty input.
func EWMA(values []float64, span int) []float64 {
	if len(values) == 0 {
		return nil
	}
	alpha := 2.0 / float64(span+1)
	out := make([]float64, len(values))
	out[0] = values[0]
	for i := 1; i < len(values); i++ {
		out[i] = alpha*values[i] + (1-alpha)*out[i-1]
	}
	return out
}

func subtract(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out
}
