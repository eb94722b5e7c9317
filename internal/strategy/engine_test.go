package strategy

import (
	"fmt"
	"testing"
	"time"

	"SignalForge/internal/model"
)

func barsFromCloses(closes []float64) []model.OHLCV {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	bars := make([]model.OHLCV, len(closes))
	for i, c := range closes {
		bars[i] = model.OHLCV{
			Time:   start.Add(time.Duration(i) * time.Hour),
			Open:   c,
			High:   c + 0.5,
			Low:    c - 0.5,
			Close:  c,
			Volume: 1000,
		}
	}
	return bars
}

// oversoldReboundCloses builds 60 bars: flat, then a steady decline that
// drives RSI to 0, then a one-bar rebound sharp enough to lift RSI back
// above the oversold threshold without triggering any other rule.
func oversoldReboundCloses() []float64 {
	closes := make([]float64, 60)
	for i := 0; i < 45; i++ {
		closes[i] = 100
	}
	for i := 45; i < 59; i++ {
		closes[i] = 100 - 0.2*float64(i-44)
	}
	closes[59] = closes[58] + 1.5
	return closes
}

func TestGenerate_RSIOversoldRecoveryEndToEnd(t *testing.T) {
	closes := oversoldReboundCloses()
	e := testEngine()

	signals := e.Generate([]model.SymbolBars{{Symbol: "BTCUSD", Bars: barsFromCloses(closes)}})
	if len(signals) != 1 {
		t.Fatalf("expected exactly one signal, got %d: %+v", len(signals), signals)
	}
	sig := signals[0]
	if sig.Action != model.ActionBuy {
		t.Errorf("expected buy, got %s", sig.Action)
	}
	if len(sig.Indicators) != 1 || sig.Indicators[0] != "RSI Oversold Recovery" {
		t.Errorf("unexpected rationale: %v", sig.Indicators)
	}
	// Previous RSI was exactly 0 (all-loss window): min(95, 70+30) = 95.
	if sig.Confidence != 95 {
		t.Errorf("expected confidence 95, got %v", sig.Confidence)
	}
	if sig.Price != closes[59] {
		t.Errorf("price should be the final close %v, got %v", closes[59], sig.Price)
	}
	if sig.Timestamp != testNow.Format(model.TimeLayout) {
		t.Errorf("timestamp should be detection time, got %s", sig.Timestamp)
	}
}

func TestGenerate_InsufficientDataYieldsNothing(t *testing.T) {
	closes := oversoldReboundCloses()[:49]
	e := testEngine()
	signals := e.Generate([]model.SymbolBars{{Symbol: "BTCUSD", Bars: barsFromCloses(closes)}})
	if len(signals) != 0 {
		t.Errorf("fewer than 50 bars should produce no signals, got %d", len(signals))
	}
}

func TestGenerate_ShortSymbolDoesNotAbortBatch(t *testing.T) {
	good := oversoldReboundCloses()
	e := testEngine()
	signals := e.Generate([]model.SymbolBars{
		{Symbol: "SHORT", Bars: barsFromCloses(good[:10])},
		{Symbol: "BTCUSD", Bars: barsFromCloses(good)},
	})
	if len(signals) != 1 {
		t.Fatalf("expected the healthy symbol's signal, got %d", len(signals))
	}
	if signals[0].Symbol != "BTCUSD" {
		t.Errorf("unexpected symbol %s", signals[0].Symbol)
	}
}

func TestGenerate_ConfidenceFilter(t *testing.T) {
	closes := oversoldReboundCloses()
	e := NewEngine(Options{MinConfidence: 96, Now: func() time.Time { return testNow }})
	signals := e.Generate([]model.SymbolBars{{Symbol: "BTCUSD", Bars: barsFromCloses(closes)}})
	if len(signals) != 0 {
		t.Errorf("confidence 95 should be dropped below a 96 floor, got %d signals", len(signals))
	}
}

func TestGenerate_PerRunCapTruncatesInOrder(t *testing.T) {
	closes := oversoldReboundCloses()
	var batch []model.SymbolBars
	for i := 0; i < 7; i++ {
		batch = append(batch, model.SymbolBars{
			Symbol: fmt.Sprintf("SYM%d", i),
			Bars:   barsFromCloses(closes),
		})
	}
	e := testEngine()
	signals := e.Generate(batch)
	if len(signals) != 5 {
		t.Fatalf("expected the default cap of 5, got %d", len(signals))
	}
	// Truncation is deterministic: the first five symbols survive.
	for i, sig := range signals {
		want := fmt.Sprintf("SYM%d", i)
		if sig.Symbol != want {
			t.Errorf("position %d: expected %s, got %s", i, want, sig.Symbol)
		}
	}
}

func TestGenerate_EmptyBatch(t *testing.T) {
	e := testEngine()
	if signals := e.Generate(nil); len(signals) != 0 {
		t.Errorf("empty batch should produce no signals, got %d", len(signals))
	}
}
