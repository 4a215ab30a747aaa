package notifier

import (
	"fmt"
	"strings"
	"time"

	"StockTracker/internal/recorder"
)

// FormatDigest formats the day's recorded BUY/SELL events into a summary
// message.
func FormatDigest(events []recorder.SignalEvent) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("StockTracker digest | %s\n\n", time.Now().Format("2006-01-02")))

	if len(events) == 0 {
		b.WriteString("No BUY/SELL signals recorded.")
		return b.String()
	}

	b.WriteString(fmt.Sprintf("%d signals recorded:\n", len(events)))
	for _, evt := range events {
		b.WriteString(fmt.Sprintf("  %s  %-4s %-6s $%.2f\n",
			evt.At.Format("15:04"), evt.Action, evt.Symbol, evt.Price))
	}
	return b.String()
}

// FormatStatus formats the tracker's current state for the /status command.
func FormatStatus(running bool, symbols []string) string {
	var b strings.Builder
	state := "stopped"
	if running {
		state = "running"
	}
	b.WriteString(fmt.Sprintf("Polling: %s\n", state))
	b.WriteString(fmt.Sprintf("Watching %d symbols: %s", len(symbols), strings.Join(symbols, ", ")))
	return b.String()
}
