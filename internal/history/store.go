// Package history is the durable, queryable log of emitted signals. The log
// lives in memory behind a single-writer lock and is flushed to a JSON file
// by full replace on every mutation; concurrent processes writing the same
// file are not supported.
package history

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"SignalForge/internal/model"
)

// maxRetained caps the log at the most recent signals; the oldest entries
// are evicted on overflow.
const maxRetained = 1000

// tsFallback substitutes for a missing timestamp in comparisons. It is a
// date-only prefix of the full layout, so lexical ordering still holds, but
// it makes "missing" indistinguishable from "very old". Kept deliberately.
const tsFallback = "1970-01-01"

// Store manages signal history persistence and retrieval.
type Store struct {
	mu      sync.Mutex
	path    string
	signals []*model.Signal
	seq     uint64

	now func() time.Time
}

// Open loads the history from path. A missing file starts an empty log; a
// corrupt one starts empty with a warning. Neither is fatal.
func Open(path string) *Store {
	s := &Store{path: path, now: time.Now}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("[INFO] history file %s not found, starting empty", path)
		} else {
			log.Printf("[WARN] read history %s: %v, starting empty", path, err)
		}
		return s
	}
	if err := json.Unmarshal(data, &s.signals); err != nil {
		log.Printf("[WARN] parse history %s: %v, starting empty", path, err)
		s.signals = nil
		return s
	}
	log.Printf("[INFO] loaded %d signals from history", len(s.signals))
	return s
}

// Len returns the current log length.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.signals)
}

// Save assigns an ID and saved_at stamp, appends the signal, evicts to the
// retention cap, and flushes the whole log. A flush failure is returned to
// the caller; the in-memory log keeps the entry either way.
func (s *Store) Save(sig *model.Signal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.seq++
	sig.ID = fmt.Sprintf("signal_%s_%d_%s", now.Format("20060102_150405"), s.seq, uuid.NewString()[:8])
	sig.SavedAt = now.Format(model.TimeLayout)

	s.signals = append(s.signals, sig)
	if len(s.signals) > maxRetained {
		s.signals = s.signals[len(s.signals)-maxRetained:]
	}

	if err := s.flush(); err != nil {
		return fmt.Errorf("flush history: %w", err)
	}
	return nil
}

// Filter restricts a Query. Zero fields mean "no restriction".
type Filter struct {
	Symbol string
	Action model.Action
	Days   int
	Limit  int
}

// Query returns matching signals sorted by timestamp descending. The cutoff
// for Days uses lexical comparison of the ISO-8601 strings, which is
// order-correct at a fixed precision. The log itself is never mutated.
func (s *Store) Query(f Filter) []*model.Signal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queryLocked(f)
}

func (s *Store) queryLocked(f Filter) []*model.Signal {
	out := make([]*model.Signal, 0, len(s.signals))

	cutoff := ""
	if f.Days > 0 {
		cutoff = s.now().AddDate(0, 0, -f.Days).Format(model.TimeLayout)
	}

	for _, sig := range s.signals {
		if f.Symbol != "" && sig.Symbol != f.Symbol {
			continue
		}
		if f.Action != "" && sig.Action != f.Action {
			continue
		}
		if cutoff != "" && timestampOf(sig) < cutoff {
			continue
		}
		out = append(out, sig)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return timestampOf(out[i]) > timestampOf(out[j])
	})

	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out
}

// Recent returns the most recent signals across all symbols.
func (s *Store) Recent(limit int) []*model.Signal {
	return s.Query(Filter{Limit: limit})
}

// Stats aggregates signal activity over the given trailing period.
type Stats struct {
	TotalSignals  int      `json:"total_signals"`
	BuySignals    int      `json:"buy_signals"`
	SellSignals   int      `json:"sell_signals"`
	Symbols       []string `json:"symbols"`
	AvgConfidence float64  `json:"avg_confidence"`
	DateRange     string   `json:"date_range"`
}

// SignalStats computes counts, the distinct symbol set (unordered), and the
// mean confidence rounded to one decimal (0 when there are no signals).
func (s *Store) SignalStats(days int) Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	signals := s.queryLocked(Filter{Days: days})
	st := Stats{
		Symbols:   []string{},
		DateRange: fmt.Sprintf("Last %d days", days),
	}
	if len(signals) == 0 {
		return st
	}

	seen := make(map[string]bool)
	sum := 0.0
	for _, sig := range signals {
		st.TotalSignals++
		switch sig.Action {
		case model.ActionBuy:
			st.BuySignals++
		case model.ActionSell:
			st.SellSignals++
		}
		if !seen[sig.Symbol] {
			seen[sig.Symbol] = true
			st.Symbols = append(st.Symbols, sig.Symbol)
		}
		sum += sig.Confidence
	}
	st.AvgConfidence = math.Round(sum/float64(len(signals))*10) / 10
	return st
}

// Prune removes signals older than the given number of days and flushes if
// anything was removed. Returns the removed count. Calling it again without
// intervening saves removes nothing.
func (s *Store) Prune(olderThanDays int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().AddDate(0, 0, -olderThanDays).Format(model.TimeLayout)

	kept := s.signals[:0]
	for _, sig := range s.signals {
		if timestampOf(sig) >= cutoff {
			kept = append(kept, sig)
		}
	}
	removed := len(s.signals) - len(kept)
	s.signals = kept

	if removed == 0 {
		return 0, nil
	}
	if err := s.flush(); err != nil {
		return removed, fmt.Errorf("flush after prune: %w", err)
	}
	log.Printf("[INFO] pruned %d signals older than %d days", removed, olderThanDays)
	return removed, nil
}

// exportSnapshot is the on-disk shape written by Export.
type exportSnapshot struct {
	ExportedAt   string          `json:"exported_at"`
	TotalSignals int             `json:"total_signals"`
	DateRange    string          `json:"date_range"`
	Signals      []*model.Signal `json:"signals"`
}

// Export writes a snapshot of the log (optionally restricted to the last
// `days` days) to path, auto-naming the file when path is empty. The log is
// not mutated. Returns the written filename.
func (s *Store) Export(path string, days int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if path == "" {
		path = fmt.Sprintf("signals_export_%s.json", now.Format("20060102_150405"))
	}

	var signals []*model.Signal
	dateRange := "All time"
	if days > 0 {
		signals = s.queryLocked(Filter{Days: days})
		dateRange = fmt.Sprintf("Last %d days", days)
	} else {
		signals = append(signals, s.signals...)
	}

	snap := exportSnapshot{
		ExportedAt:   now.Format(model.TimeLayout),
		TotalSignals: len(signals),
		DateRange:    dateRange,
		Signals:      signals,
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal export: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	log.Printf("[INFO] exported %d signals to %s", len(signals), path)
	return path, nil
}

func (s *Store) flush() error {
	data, err := json.MarshalIndent(s.signals, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}

func timestampOf(sig *model.Signal) string {
	if sig.Timestamp == "" {
		return tsFallback
	}
	return sig.Timestamp
}
