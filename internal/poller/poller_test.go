package poller

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"StockTracker/internal/collector"
	"StockTracker/internal/display"
	"StockTracker/internal/recorder"
	"StockTracker/internal/watchlist"
)

type captureSink struct {
	mu   sync.Mutex
	rows []display.Row
}

func (c *captureSink) Update(row display.Row) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rows = append(c.rows, row)
}

func (c *captureSink) snapshot() []display.Row {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]display.Row(nil), c.rows...)
}

func newTestManager(t *testing.T, symbols []string) *watchlist.Manager {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stocks.json")
	if err := watchlist.Save(path, symbols); err != nil {
		t.Fatal(err)
	}
	m, err := watchlist.NewManager(path)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestSweep_IsolatesPerSymbolFailure(t *testing.T) {
	mock := &collector.MockFetcher{
		Errs: map[string]error{"BAD": collector.ErrNoData},
	}
	wl := newTestManager(t, []string{"BAD", "GOOD"})
	sink := &captureSink{}
	p := New(collector.NewCollector(mock, "1d", "1m"), wl, sink, recorder.NewNoopRecorder(), time.Minute)

	p.Sweep()

	rows := sink.snapshot()
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Symbol != "BAD" || rows[0].Err == "" {
		t.Errorf("expected error row for BAD, got %+v", rows[0])
	}
	if rows[1].Symbol != "GOOD" || rows[1].Err != "" {
		t.Errorf("expected normal row for GOOD, got %+v", rows[1])
	}
	if rows[1].Price == 0 {
		t.Error("expected a price on the normal row")
	}
}

func TestSweep_ErrorRowCarriesNoStaleValues(t *testing.T) {
	mock := &collector.MockFetcher{}
	wl := newTestManager(t, []string{"FLAKY"})
	sink := &captureSink{}
	p := New(collector.NewCollector(mock, "1d", "1m"), wl, sink, recorder.NewNoopRecorder(), time.Minute)

	p.Sweep()
	mock.Errs = map[string]error{"FLAKY": collector.ErrNoData}
	p.Sweep()

	rows := sink.snapshot()
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[1].Err == "" {
		t.Fatal("expected second row to be an error row")
	}
	if rows[1].Price != 0 || rows[1].Signal != 0 || rows[1].OSMA != 0 {
		t.Errorf("error row must not reuse last good values: %+v", rows[1])
	}
}

func TestStop_BoundedLatency(t *testing.T) {
	mock := &collector.MockFetcher{}
	wl := newTestManager(t, []string{"AAPL"})
	p := New(collector.NewCollector(mock, "1d", "1m"), wl, &captureSink{}, recorder.NewNoopRecorder(), 10*time.Second)

	p.Start()
	if !p.Running() {
		t.Fatal("expected poller to be running")
	}
	// Let the first sweep land and the worker settle into the wait.
	time.Sleep(200 * time.Millisecond)

	start := time.Now()
	p.Stop()
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("stop took %v, want under 1s", elapsed)
	}
	if p.Running() {
		t.Fatal("expected poller to be stopped")
	}
}

func TestStartStop_Idempotent(t *testing.T) {
	mock := &collector.MockFetcher{}
	wl := newTestManager(t, []string{"AAPL"})
	p := New(collector.NewCollector(mock, "1d", "1m"), wl, &captureSink{}, recorder.NewNoopRecorder(), 10*time.Second)

	p.Stop() // stopping an idle poller is a no-op
	p.Start()
	p.Start() // double start must not spawn a second worker
	p.Stop()
	p.Stop()

	// Restartable after a stop.
	p.Start()
	if !p.Running() {
		t.Fatal("expected poller to restart")
	}
	p.Stop()
}

func TestSweep_UsesWatchlistSnapshot(t *testing.T) {
	mock := &collector.MockFetcher{}
	wl := newTestManager(t, []string{"AAPL", "MSFT"})
	sink := &captureSink{}
	p := New(collector.NewCollector(mock, "1d", "1m"), wl, sink, recorder.NewNoopRecorder(), time.Minute)

	p.Sweep()
	if err := wl.Remove("MSFT"); err != nil {
		t.Fatal(err)
	}
	p.Sweep()

	rows := sink.snapshot()
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows across both sweeps, got %d", len(rows))
	}
	if rows[2].Symbol != "AAPL" {
		t.Errorf("expected only AAPL in second sweep, got %s", rows[2].Symbol)
	}
}
