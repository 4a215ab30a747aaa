package display

import (
	"log"

	"StockTracker/internal/model"
)

// Row is one watch-table line for a symbol. When Err is set the numeric
// fields are meaningless and must be rendered as an explicit error marker,
// never as the last good values.
type Row struct {
	Symbol string
	Price  float64
	Signal float64
	OSMA   float64
	Action model.Action
	Err    string
}

// Sink receives one row per symbol per sweep. Updates for a given symbol
// arrive in the order computed.
type Sink interface {
	Update(row Row)
}

// LogSink renders rows as formatted log lines. It stands in for whatever
// table UI fronts the tracker; any display technology satisfies the same
// contract.
type LogSink struct{}

func NewLogSink() *LogSink { return &LogSink{} }

func (s *LogSink) Update(row Row) {
	if row.Err != "" {
		log.Printf("[INFO] %-6s | %9s | %11s | %11s | (%s)", row.Symbol, "Error", "Error", "Error", row.Err)
		return
	}
	log.Printf("[INFO] %-6s | %9.2f | %11.4f | %11.4f | %s", row.Symbol, row.Price, row.Signal, row.OSMA, row.Action)
}
