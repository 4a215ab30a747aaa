package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"StockTracker/internal/collector"
	"StockTracker/internal/notifier"
	"StockTracker/internal/poller"
	"StockTracker/internal/recorder"
	"StockTracker/internal/watchlist"

	"github.com/robfig/cron/v3"
)

// Scheduler owns the cron-driven digest task and the operator command
// surface (add/remove/start/stop/status/digest).
type Scheduler struct {
	Cron      *cron.Cron
	Poller    *poller.Poller
	Watchlist *watchlist.Manager
	Fetcher   collector.Fetcher
	Recorder  recorder.Recorder
	Notifier  *notifier.TelegramNotifier
	Ctx       context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, p *poller.Poller, wl *watchlist.Manager, f collector.Fetcher, rec recorder.Recorder, tn *notifier.TelegramNotifier) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Poller:    p,
		Watchlist: wl,
		Fetcher:   f,
		Recorder:  rec,
		Notifier:  tn,
		Ctx:       ctx,
	}
}

// RegisterDigest registers the daily digest task.
func (s *Scheduler) RegisterDigest(digestCron string) error {
	if _, err := s.Cron.AddFunc(digestCron, s.digestTask); err != nil {
		return fmt.Errorf("register digest task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

func (s *Scheduler) digestTask() {
	log.Println("[INFO] running daily digest")
	s.trySend(s.digest())
}

func (s *Scheduler) digest() string {
	events, err := s.Recorder.SignalsSince(time.Now().Add(-24 * time.Hour))
	if err != nil {
		log.Printf("[ERROR] load signal events: %v", err)
		return fmt.Sprintf("digest unavailable: %v", err)
	}
	return notifier.FormatDigest(events)
}

// HandleCommand processes an operator command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return s.help()
	}

	switch fields[0] {
	case "/add":
		if len(fields) < 2 {
			return "usage: /add SYMBOL"
		}
		return s.addSymbol(fields[1])
	case "/remove":
		if len(fields) < 2 {
			return "usage: /remove SYMBOL"
		}
		return s.removeSymbol(fields[1])
	case "/start":
		s.Poller.Start()
		return "polling started"
	case "/stop":
		s.Poller.Stop()
		return "polling stopped"
	case "/status":
		return notifier.FormatStatus(s.Poller.Running(), s.Watchlist.Symbols())
	case "/digest":
		return s.digest()
	default:
		return s.help()
	}
}

func (s *Scheduler) addSymbol(raw string) string {
	symbol := watchlist.Normalize(raw)
	if s.Watchlist.Has(symbol) {
		return fmt.Sprintf("%s is already being tracked", symbol)
	}
	if err := s.Fetcher.Validate(symbol); err != nil {
		log.Printf("[WARN] validate %s: %v", symbol, err)
		if errors.Is(err, collector.ErrSymbolNotFound) || errors.Is(err, collector.ErrNoData) {
			return fmt.Sprintf("%s is not a valid symbol", symbol)
		}
		return fmt.Sprintf("failed to validate %s: %v", symbol, err)
	}
	if err := s.Watchlist.Add(symbol); err != nil {
		log.Printf("[ERROR] add %s: %v", symbol, err)
		return fmt.Sprintf("failed to add %s: %v", symbol, err)
	}
	log.Printf("[INFO] added stock %s", symbol)
	return fmt.Sprintf("added %s", symbol)
}

func (s *Scheduler) removeSymbol(raw string) string {
	symbol := watchlist.Normalize(raw)
	if err := s.Watchlist.Remove(symbol); err != nil {
		if errors.Is(err, watchlist.ErrNotTracked) {
			return fmt.Sprintf("%s is not being tracked", symbol)
		}
		log.Printf("[ERROR] remove %s: %v", symbol, err)
		return fmt.Sprintf("failed to remove %s: %v", symbol, err)
	}
	s.Poller.Alerter.Forget(symbol)
	log.Printf("[INFO] removed stock %s", symbol)
	return fmt.Sprintf("removed %s", symbol)
}

func (s *Scheduler) help() string {
	return "commands:\n" +
		"  /add SYMBOL\n" +
		"  /remove SYMBOL\n" +
		"  /start\n" +
		"  /stop\n" +
		"  /status\n" +
		"  /digest"
}

func (s *Scheduler) trySend(text string) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
