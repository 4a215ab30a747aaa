package poller

import (
	"fmt"
	"log"
	"sync"
	"time"

	"StockTracker/internal/collector"
	"StockTracker/internal/detector"
	"StockTracker/internal/display"
	"StockTracker/internal/model"
	"StockTracker/internal/recorder"
	"StockTracker/internal/watchlist"
)

// AlertSink receives deduplicated BUY/SELL transition alerts.
type AlertSink interface {
	Alert(text string)
}

// Poller runs the fetch/compute/classify/display cycle for every watched
// symbol on a background worker at a fixed interval. The worker stops within
// one second of Stop being called; a sweep in flight finishes its current
// symbol and discards the rest.
type Poller struct {
	Collector *collector.Collector
	Watchlist *watchlist.Manager
	Display   display.Sink
	Recorder  recorder.Recorder
	Alerter   *detector.Alerter
	Alerts    AlertSink // optional
	Interval  time.Duration

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// New creates a Poller with the given collaborators.
func New(col *collector.Collector, wl *watchlist.Manager, sink display.Sink, rec recorder.Recorder, interval time.Duration) *Poller {
	return &Poller{
		Collector: col,
		Watchlist: wl,
		Display:   sink,
		Recorder:  rec,
		Alerter:   detector.NewAlerter(),
		Interval:  interval,
	}
}

// Running reports whether the background worker is active.
func (p *Poller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}

// Start launches the background worker. Starting an already-running poller
// is a no-op.
func (p *Poller) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.running {
		return
	}
	p.running = true
	p.stopCh = make(chan struct{})
	p.doneCh = make(chan struct{})
	log.Println("[INFO] polling started")
	go p.run(p.stopCh, p.doneCh)
}

// Stop signals the worker and waits for it to exit. Stopping an idle poller
// is a no-op.
func (p *Poller) Stop() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.running = false
	close(p.stopCh)
	done := p.doneCh
	p.mu.Unlock()

	<-done
	log.Println("[INFO] polling stopped")
}

func (p *Poller) run(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	for {
		select {
		case <-stop:
			return
		default:
		}

		p.sweep(stop)

		// Wait out the interval in one-second steps; the stop signal
		// interrupts immediately.
		deadline := time.Now().Add(p.Interval)
		for time.Now().Before(deadline) {
			select {
			case <-stop:
				return
			case <-time.After(time.Second):
			}
		}
	}
}

// Sweep evaluates every watched symbol once, synchronously. Exposed for
// manual triggering and tests.
func (p *Poller) Sweep() {
	p.sweep(nil)
}

func (p *Poller) sweep(stop <-chan struct{}) {
	// Snapshot so foreground add/remove can't invalidate the iteration.
	symbols := p.Watchlist.Symbols()
	for _, symbol := range symbols {
		select {
		case <-stop:
			return
		default:
		}

		ev, err := p.Collector.Evaluate(symbol)
		if err != nil {
			log.Printf("[WARN] update %s: %v", symbol, err)
			p.Display.Update(display.Row{Symbol: symbol, Err: err.Error()})
			if recErr := p.Recorder.RecordSweepRow(&recorder.SweepRow{Symbol: symbol, Err: err.Error()}); recErr != nil {
				log.Printf("[ERROR] record sweep row: %v", recErr)
			}
			continue
		}

		p.Display.Update(display.Row{
			Symbol: ev.Symbol,
			Price:  ev.Price,
			Signal: ev.Signal,
			OSMA:   ev.OSMA,
			Action: ev.Action,
		})
		if recErr := p.Recorder.RecordSweepRow(&recorder.SweepRow{
			Symbol: ev.Symbol,
			Price:  ev.Price,
			Signal: ev.Signal,
			OSMA:   ev.OSMA,
			Action: string(ev.Action),
		}); recErr != nil {
			log.Printf("[ERROR] record sweep row: %v", recErr)
		}

		p.emit(ev)
	}
}

// emit logs the classification on every sweep where the cross holds (the
// classification window shifts each poll, so repeats are intended) and
// forwards only transitions to the alert sink.
func (p *Poller) emit(ev *model.Evaluation) {
	transition := p.Alerter.Observe(ev.Symbol, ev.Action)
	if ev.Action == model.ActionNone {
		return
	}

	line := fmt.Sprintf("%s signal for %s at $%.2f", ev.Action, ev.Symbol, ev.Price)
	log.Printf("[INFO] %s", line)

	if err := p.Recorder.RecordSignal(&recorder.SignalEvent{
		Symbol: ev.Symbol,
		Action: string(ev.Action),
		Price:  ev.Price,
		At:     ev.At,
	}); err != nil {
		log.Printf("[ERROR] record signal: %v", err)
	}

	if transition && p.Alerts != nil {
		p.Alerts.Alert(line)
	}
}
