package model

import "time"

// PricePoint is a single intraday sample: a timestamp and the closing price.
type PricePoint struct {
	Time  time.Time
	Close float64
}

// PriceSeries holds one symbol's intraday history in chronological order.
// Chronological order is the fetcher's responsibility; the indicator engine
// does not re-sort.
type PriceSeries struct {
	Symbol    string
	Points    []PricePoint
	FetchedAt time.Time
}
