// Package recorder keeps a secondary analytical record of emitted signals
// and pipeline runs. The JSON history store remains the system of record;
// the recorder exists so dashboards can query SQL.
package recorder

import (
	"time"

	"SignalForge/internal/model"
)

// RunSummary describes one completed signal-check run.
type RunSummary struct {
	StartedAt time.Time
	Symbols   int
	Emitted   int
	Saved     int
	Duration  time.Duration
}

// Recorder persists signals and run summaries.
type Recorder interface {
	RecordSignal(sig *model.Signal) error
	RecordRun(run *RunSummary) error
	Close() error
}
