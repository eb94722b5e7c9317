// Package scheduler drives the pipeline on a cron cadence: collect bars,
// generate signals, persist them, and fan out notifications. Runs are
// synchronous end to end; the cron library already serializes jobs on one
// goroutine, and overlapping external writers remain unsupported.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"SignalForge/internal/history"
	"SignalForge/internal/metrics"
	"SignalForge/internal/model"
	"SignalForge/internal/notifier"
	"SignalForge/internal/provider"
	"SignalForge/internal/recorder"
	"SignalForge/internal/strategy"
)

// Scheduler manages the cron tasks and the run loop.
type Scheduler struct {
	Cron          *cron.Cron
	Collector     *provider.Collector
	Engine        *strategy.Engine
	History       *history.Store
	Notifier      notifier.Notifier
	Recorder      recorder.Recorder
	Ctx           context.Context
	RetentionDays int
}

// NewScheduler creates a Scheduler.
func NewScheduler(ctx context.Context, col *provider.Collector, eng *strategy.Engine, hist *history.Store, n notifier.Notifier, rec recorder.Recorder, retentionDays int) *Scheduler {
	return &Scheduler{
		Cron:          cron.New(cron.WithSeconds()),
		Collector:     col,
		Engine:        eng,
		History:       hist,
		Notifier:      n,
		Recorder:      rec,
		Ctx:           ctx,
		RetentionDays: retentionDays,
	}
}

// RegisterAll registers the signal-check and retention tasks.
func (s *Scheduler) RegisterAll(signalCron, pruneCron string) error {
	if _, err := s.Cron.AddFunc(signalCron, s.runSignalCheck); err != nil {
		return fmt.Errorf("register signal task: %w", err)
	}
	if _, err := s.Cron.AddFunc(pruneCron, s.pruneTask); err != nil {
		return fmt.Errorf("register prune task: %w", err)
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

// RunNow executes the signal check immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunNow() {
	s.runSignalCheck()
}

func (s *Scheduler) runSignalCheck() {
	log.Println("[INFO] running signal check")
	started := time.Now()

	batch := s.Collector.Collect()
	if len(batch) == 0 {
		log.Println("[WARN] no market data collected")
		metrics.RunErrorsTotal.Inc()
		return
	}

	signals := s.Engine.Generate(batch)
	if len(signals) == 0 {
		log.Println("[INFO] no signals generated")
	}

	saved := 0
	for _, sig := range signals {
		log.Printf("[INFO] signal: %s %s at $%.2f (confidence %.1f%%)",
			sig.Symbol, strings.ToUpper(string(sig.Action)), sig.Price, sig.Confidence)

		if err := s.History.Save(sig); err != nil {
			// In-memory history still holds the signal; only durability
			// is degraded for this entry.
			log.Printf("[ERROR] save signal %s: %v", sig.Symbol, err)
		} else {
			saved++
			metrics.SignalsSaved.Inc()
		}

		if err := s.Recorder.RecordSignal(sig); err != nil {
			log.Printf("[ERROR] record signal %s: %v", sig.Symbol, err)
		}

		metrics.SignalsGenerated.WithLabelValues(sig.Symbol, string(sig.Action)).Inc()
		s.trySend(notifier.FormatSignal(sig))
	}

	if err := s.Recorder.RecordRun(&recorder.RunSummary{
		StartedAt: started,
		Symbols:   len(batch),
		Emitted:   len(signals),
		Saved:     saved,
		Duration:  time.Since(started),
	}); err != nil {
		log.Printf("[ERROR] record run: %v", err)
	}
	metrics.RunsTotal.Inc()
}

func (s *Scheduler) pruneTask() {
	removed, err := s.History.Prune(s.RetentionDays)
	if err != nil {
		log.Printf("[ERROR] prune history: %v", err)
		return
	}
	if removed > 0 {
		log.Printf("[INFO] retention prune removed %d signals", removed)
	}
}

// HandleCommand processes a user chat command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	switch command {
	case "/run":
		s.runSignalCheck()
		return "Signal check finished."
	case "/recent":
		return notifier.FormatRecent(s.History.Recent(10))
	case "/stats":
		return notifier.FormatStats(s.History.SignalStats(30))
	case "/export":
		path, err := s.History.Export("", 0)
		if err != nil {
			return fmt.Sprintf("Export failed: %v", err)
		}
		return fmt.Sprintf("Exported history to %s", path)
	case "/buys":
		return notifier.FormatRecent(s.History.Query(history.Filter{Action: model.ActionBuy, Limit: 10}))
	case "/sells":
		return notifier.FormatRecent(s.History.Query(history.Filter{Action: model.ActionSell, Limit: 10}))
	default:
		return "Available commands:\n• /run\n• /recent\n• /stats\n• /buys\n• /sells\n• /export"
	}
}

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.Send(s.Ctx, text); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
