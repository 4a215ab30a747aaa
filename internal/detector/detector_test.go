package detector

import (
	"errors"
	"testing"

	"StockTracker/internal/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		osma   []float64
		signal []float64
		want   model.Action
	}{
		{"downward cross", []float64{1.0, -1.0}, []float64{0.0, 0.0}, model.ActionSell},
		{"upward cross", []float64{-1.0, 1.0}, []float64{0.0, 0.0}, model.ActionBuy},
		{"no cross above", []float64{2.0, 2.0}, []float64{1.0, 1.0}, model.ActionNone},
		{"no cross below", []float64{-2.0, -2.0}, []float64{-1.0, -1.0}, model.ActionNone},
		{"tie on current never fires", []float64{-1.0, 0.0}, []float64{0.0, 0.0}, model.ActionNone},
		{"tie on prior enables buy", []float64{0.0, 1.0}, []float64{0.0, 0.0}, model.ActionBuy},
		{"tie on prior enables sell", []float64{0.0, -1.0}, []float64{0.0, 0.0}, model.ActionSell},
		{"single sample", []float64{1.0}, []float64{0.0}, model.ActionNone},
		{"empty", nil, nil, model.ActionNone},
		{"only last two matter", []float64{5, -5, -1.0, 1.0}, []float64{0, 0, 0.0, 0.0}, model.ActionBuy},
	}
	for _, tt := range tests {
		got, err := Classify(tt.osma, tt.signal)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.want, got)
		}
	}
}

func TestClassify_LengthMismatch(t *testing.T) {
	_, err := Classify([]float64{1, 2, 3}, []float64{1, 2})
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestAlerter_DeduplicatesRepeats(t *testing.T) {
	a := NewAlerter()
	if !a.Observe("AAPL", model.ActionBuy) {
		t.Fatal("first BUY should alert")
	}
	if a.Observe("AAPL", model.ActionBuy) {
		t.Fatal("repeated BUY should not alert")
	}
	if !a.Observe("AAPL", model.ActionSell) {
		t.Fatal("transition to SELL should alert")
	}
}

func TestAlerter_NoneRearms(t *testing.T) {
	a := NewAlerter()
	a.Observe("MSFT", model.ActionBuy)
	if a.Observe("MSFT", model.ActionNone) {
		t.Fatal("NONE should never alert")
	}
	if !a.Observe("MSFT", model.ActionBuy) {
		t.Fatal("BUY after NONE should alert again")
	}
}

func TestAlerter_PerSymbolState(t *testing.T) {
	a := NewAlerter()
	a.Observe("AAPL", model.ActionBuy)
	if !a.Observe("NVDA", model.ActionBuy) {
		t.Fatal("symbols must not share state")
	}
}

func TestAlerter_Forget(t *testing.T) {
	a := NewAlerter()
	a.Observe("TSLA", model.ActionSell)
	a.Forget("TSLA")
	if !a.Observe("TSLA", model.ActionSell) {
		t.Fatal("forgotten symbol should alert on re-observation")
	}
}
