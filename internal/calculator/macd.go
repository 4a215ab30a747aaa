package calculator

import (
	"errors"

	"StockTracker/internal/model"
)

// Smoothing spans for the MACD(12,26,9) oscillator.
const (
	FastSpan   = 12
	SlowSpan   = 26
	SignalSpan = 9
)

// ErrInsufficientData is returned when the price series is empty. Callers
// must treat it as "no signal available", not as zero.
var ErrInsufficientData = errors.New("insufficient price data")

// ComputeMACD derives the MACD, Signal, and OSMA series from an intraday
// price series. All three outputs are index-aligned with the input. The
// computation is pure and deterministic: identical input always yields
// bit-identical output.
func ComputeMACD(points []model.PricePoint) (*model.IndicatorSet, error) {
	if len(points) == 0 {
		return nil, ErrInsufficientData
	}
	closes := extractCloses(points)

	ema12 := EWMA(closes, FastSpan)
	ema26 := EWMA(closes, SlowSpan)
	macd := subtract(ema12, ema26)
	signal := EWMA(macd, SignalSpan)
	osma := subtract(macd, signal)

	return &model.IndicatorSet{MACD: macd, Signal: signal, OSMA: osma}, nil
}

func extractCloses(points []model.PricePoint) []float64 {
	closes := make([]float64, len(points))
	for i, p := range points {
		closes[i] = p.Close
	}
	return closes
}
