package recorder

import "time"

// SweepRow records one symbol's display row from one poll sweep.
type SweepRow struct {
	Symbol string
	Price  float64
	Signal float64
	OSMA   float64
	Action string
	Err    string
}

// SignalEvent records one BUY/SELL emission.
type SignalEvent struct {
	Symbol string
	Action string
	Price  float64
	At     time.Time
}

// Recorder persists poll history for later analysis and the daily digest.
type Recorder interface {
	RecordSweepRow(row *SweepRow) error
	RecordSignal(evt *SignalEvent) error
	SignalsSince(since time.Time) ([]SignalEvent, error)
	Close() error
}
