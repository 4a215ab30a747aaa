package model

import "time"

// Action is the classification of a symbol's most recent tick.
type Action string

const (
	ActionNone Action = ""
	ActionBuy  Action = "BUY"
	ActionSell Action = "SELL"
)

// Evaluation is the per-symbol result of one poll cycle: the latest price,
// the latest signal-line and OSMA values, and the crossover classification.
type Evaluation struct {
	Symbol string
	Price  float64
	Signal float64
	OSMA   float64
	Action Action
	At     time.Time
}
