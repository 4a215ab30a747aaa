package collector

import (
	"fmt"
	"time"

	"StockTracker/internal/calculator"
	"StockTracker/internal/detector"
	"StockTracker/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Points       map[string][]model.PricePoint
	Errs         map[string]error
	ValidateErrs map[string]error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchIntraday(symbol, _, _ string) ([]model.PricePoint, error) {
	if err := m.Errs[symbol]; err != nil {
		return nil, err
	}
	if pts, ok := m.Points[symbol]; ok {
		return pts, nil
	}
	return GenerateMockPoints(100.0, 60), nil
}

func (m *MockFetcher) Validate(symbol string) error {
	return m.ValidateErrs[symbol]
}

// GenerateMockPoints builds a gently trending minute series around basePrice.
func GenerateMockPoints(basePrice float64, count int) []model.PricePoint {
	points := make([]model.PricePoint, count)
	start := time.Now().Add(-time.Duration(count) * time.Minute)
	for i := 0; i < count; i++ {
		points[i] = model.PricePoint{
			Time:  start.Add(time.Duration(i) * time.Minute),
			Close: basePrice * (1 + float64(i-count/2)*0.001),
		}
	}
	return points
}

// Collector ties retrieval to the indicator engine and crossover detector:
// one Evaluate call is one symbol's full poll cycle.
type Collector struct {
	Fetcher  Fetcher
	Range    string
	Interval string
}

// NewCollector creates a new Collector polling the given range/interval.
func NewCollector(fetcher Fetcher, rng, interval string) *Collector {
	return &Collector{Fetcher: fetcher, Range: rng, Interval: interval}
}

// Evaluate fetches the symbol's intraday series, derives MACD/Signal/OSMA,
// and classifies the latest tick. The series is owned transiently here and
// never retained across calls.
func (c *Collector) Evaluate(symbol string) (*model.Evaluation, error) {
	points, err := c.Fetcher.FetchIntraday(symbol, c.Range, c.Interval)
	if err != nil {
		return nil, fmt.Errorf("fetch intraday %s: %w", symbol, err)
	}
	ind, err := calculator.ComputeMACD(points)
	if err != nil {
		return nil, fmt.Errorf("compute indicators %s: %w", symbol, err)
	}
	action, err := detector.Classify(ind.OSMA, ind.Signal)
	if err != nil {
		return nil, fmt.Errorf("classify %s: %w", symbol, err)
	}

	n := len(points)
	return &model.Evaluation{
		Symbol: symbol,
		Price:  points[n-1].Close,
		Signal: ind.Signal[n-1],
		OSMA:   ind.OSMA[n-1],
		Action: action,
		At:     time.Now(),
	}, nil
}
