package collector

import (
	"errors"

	"StockTracker/internal/model"
)

// Retrieval failure taxonomy. Transport problems are wrapped verbatim;
// these sentinels cover the two cases callers branch on.
var (
	// ErrNoData means the symbol resolved but the result set was empty.
	ErrNoData = errors.New("no price data available")
	// ErrSymbolNotFound means the symbol does not resolve to a priced instrument.
	ErrSymbolNotFound = errors.New("symbol not found")
)

// Fetcher defines the interface for retrieving intraday price history.
type Fetcher interface {
	// FetchIntraday returns the symbol's price series for the given range
	// and sampling interval (e.g. "1d", "1m"), in chronological order.
	FetchIntraday(symbol, rng, interval string) ([]model.PricePoint, error)
	// Validate checks that the symbol resolves to a real, currently-priced
	// instrument before it is admitted to the watch-list.
	Validate(symbol string) error
	Name() string
}
