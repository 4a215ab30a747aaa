package model

// IndicatorSet holds the derived oscillator series, index-aligned with the
// input price series: same length, same positions. OSMA[i] equals
// MACD[i] - Signal[i] for every i.
type IndicatorSet struct {
	MACD   []float64
	Signal []float64
	OSMA   []float64
}

// Len returns the common length of the three series.
func (s *IndicatorSet) Len() int {
	return len(s.MACD)
}
