// Package strategy turns indicator-augmented price data into trading signals:
// independent detection rules per symbol, a minimum-confidence filter, and a
// per-run emission cap.
package strategy

import (
	"log"
	"time"

	"SignalForge/internal/calculator"
	"SignalForge/internal/model"
)

// minBars is the minimum history required before a symbol is analyzed.
// Fewer bars produce no signals, not an error.
const minBars = 50

// crossoverWindow is how many trailing points the MA-cross rule receives.
const crossoverWindow = 10

// Options configures the engine. Zero fields fall back to the defaults.
type Options struct {
	SMAFastPeriod    int     // default 20
	SMASlowPeriod    int     // default 50
	RSIPeriod        int     // default 14
	RSIOversold      float64 // default 30
	RSIOverbought    float64 // default 70
	MinConfidence    float64 // default 65
	MaxSignalsPerRun int     // default 5

	// Now overrides the clock, for tests.
	Now func() time.Time
}

func (o *Options) setDefaults() {
	if o.SMAFastPeriod == 0 {
		o.SMAFastPeriod = 20
	}
	if o.SMASlowPeriod == 0 {
		o.SMASlowPeriod = 50
	}
	if o.RSIPeriod == 0 {
		o.RSIPeriod = calculator.DefaultRSIPeriod
	}
	if o.RSIOversold == 0 {
		o.RSIOversold = 30
	}
	if o.RSIOverbought == 0 {
		o.RSIOverbought = 70
	}
	if o.MinConfidence == 0 {
		o.MinConfidence = 65
	}
	if o.MaxSignalsPerRun == 0 {
		o.MaxSignalsPerRun = 5
	}
	if o.Now == nil {
		o.Now = time.Now
	}
}

// Engine generates signals for batches of symbols.
type Engine struct {
	opts Options
}

// NewEngine creates an engine with the given options.
func NewEngine(opts Options) *Engine {
	opts.setDefaults()
	return &Engine{opts: opts}
}

// Generate analyzes each symbol in order, concatenates the candidates in
// symbol-then-rule order, drops those below the confidence floor, and
// truncates to the per-run cap. A symbol whose analysis fails is logged and
// skipped without aborting the batch.
func (e *Engine) Generate(batch []model.SymbolBars) []*model.Signal {
	var candidates []*model.Signal
	for _, sb := range batch {
		sigs, err := e.analyzeSymbol(sb.Symbol, sb.Bars)
		if err != nil {
			log.Printf("[ERROR] analyze %s: %v", sb.Symbol, err)
			continue
		}
		candidates = append(candidates, sigs...)
	}

	kept := make([]*model.Signal, 0, len(candidates))
	for _, s := range candidates {
		if s.Confidence >= e.opts.MinConfidence {
			kept = append(kept, s)
		}
	}

	// Deterministic truncation: later symbols/rules are dropped once the
	// cap is reached, regardless of confidence.
	if len(kept) > e.opts.MaxSignalsPerRun {
		kept = kept[:e.opts.MaxSignalsPerRun]
	}
	return kept
}

func (e *Engine) analyzeSymbol(symbol string, bars []model.OHLCV) ([]*model.Signal, error) {
	if len(bars) < minBars {
		return nil, nil
	}

	points, err := calculator.Compute(bars, calculator.Params{
		SMAFastPeriod: e.opts.SMAFastPeriod,
		SMASlowPeriod: e.opts.SMASlowPeriod,
		RSIPeriod:     e.opts.RSIPeriod,
	})
	if err != nil {
		return nil, err
	}

	latest := points[len(points)-1]
	previous := points[len(points)-2]

	start := len(points) - crossoverWindow
	if start < 0 {
		start = 0
	}
	recent := points[start:]

	now := e.opts.Now()

	var out []*model.Signal
	if s := e.checkRSI(symbol, previous, latest, now); s != nil {
		out = append(out, s)
	}
	if s := e.checkMACrossover(symbol, recent, now); s != nil {
		out = append(out, s)
	}
	if s := e.checkMACD(symbol, previous, latest, now); s != nil {
		out = append(out, s)
	}
	if s := e.checkBollinger(symbol, previous, latest, now); s != nil {
		out = append(out, s)
	}
	return out, nil
}
