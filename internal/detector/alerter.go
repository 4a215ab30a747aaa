package detector

import (
	"sync"

	"StockTracker/internal/model"
)

// Alerter turns the per-sweep classification stream into edge-triggered
// transitions. Classification itself is windowed and re-fires on every sweep
// where the cross holds; the Alerter sits after it so a deduplicated alert
// stream can be built without changing the classification semantics.
type Alerter struct {
	mu   sync.Mutex
	last map[string]model.Action
}

// NewAlerter creates an Alerter with no remembered state.
func NewAlerter() *Alerter {
	return &Alerter{last: make(map[string]model.Action)}
}

// Observe records the latest classification for symbol and reports whether
// it is a transition worth alerting on. ActionNone is remembered (it re-arms
// the symbol) but never alerts.
func (a *Alerter) Observe(symbol string, action model.Action) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	prev := a.last[symbol]
	a.last[symbol] = action
	return action != model.ActionNone && action != prev
}

// Forget drops the remembered state for symbol, e.g. when it is removed
// from the watch-list.
func (a *Alerter) Forget(symbol string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.last, symbol)
}
