package detector

import (
	"errors"

	"StockTracker/internal/model"
)

// ErrLengthMismatch indicates the osma and signal series are not
// index-aligned. This is a programming error in the integration, not a
// market condition; it is never masked by truncation.
var ErrLengthMismatch = errors.New("osma and signal series length mismatch")

// Classify evaluates the crossover of OSMA against the signal line on the
// last two aligned samples only.
//
// BUY fires when OSMA crosses from at-or-below to strictly above the signal
// line; SELL fires on the mirror downward cross. The comparison is strict on
// the current sample but inclusive on the prior one, so an exact-equality
// current sample never fires on its own; it can only enable a cross on the
// next tick. Fewer than two samples yields ActionNone: that is the expected
// warm-up state, not an error.
func Classify(osma, signal []float64) (model.Action, error) {
	if len(osma) != len(signal) {
		return model.ActionNone, ErrLengthMismatch
	}
	n := len(osma)
	if n < 2 {
		return model.ActionNone, nil
	}
	switch {
	case osma[n-1] > signal[n-1] && osma[n-2] <= signal[n-2]:
		return model.ActionBuy, nil
	case osma[n-1] < signal[n-1] && osma[n-2] >= signal[n-2]:
		return model.ActionSell, nil
	}
	return model.ActionNone, nil
}
