package notifier

import (
	"strings"
	"testing"
	"time"

	"SignalForge/internal/history"
	"SignalForge/internal/model"
)

func sampleSignal(t *testing.T) *model.Signal {
	t.Helper()
	at := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	sig, err := model.NewSignal("BTCUSD", model.ActionBuy, 45123.456, 82.34, at,
		[]string{"RSI Oversold Recovery", "Golden Cross (SMA20/SMA50)"}, "RSI: 35.0 (was 25.0)")
	if err != nil {
		t.Fatalf("NewSignal: %v", err)
	}
	return sig
}

func TestFormatSignal(t *testing.T) {
	msg := FormatSignal(sampleSignal(t))

	for _, want := range []string{
		"BTCUSD",
		"Action: BUY",
		"Price: $45123.46",
		"Confidence: 82.3%",
		"RSI Oversold Recovery, Golden Cross (SMA20/SMA50)",
		"Details: RSI: 35.0 (was 25.0)",
		"2026-03-10T12:00:00",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestFormatSignalOmitsEmptyDetails(t *testing.T) {
	sig := sampleSignal(t)
	sig.Details = ""
	if strings.Contains(FormatSignal(sig), "Details:") {
		t.Error("empty details should be omitted")
	}
}

func TestFormatRecent(t *testing.T) {
	if got := FormatRecent(nil); got != "No signals recorded yet." {
		t.Errorf("empty list: %q", got)
	}

	msg := FormatRecent([]*model.Signal{sampleSignal(t)})
	if !strings.Contains(msg, "(1)") {
		t.Errorf("missing count:\n%s", msg)
	}
	if !strings.Contains(msg, "BTCUSD BUY @ $45123.46 (82.3%)") {
		t.Errorf("missing line:\n%s", msg)
	}
}

func TestFormatStats(t *testing.T) {
	msg := FormatStats(history.Stats{
		TotalSignals:  3,
		BuySignals:    2,
		SellSignals:   1,
		Symbols:       []string{"BTCUSD", "ETHUSD"},
		AvgConfidence: 80.3,
		DateRange:     "Last 7 days",
	})
	for _, want := range []string{"Last 7 days", "Total: 3", "Buy: 2 | Sell: 1", "80.3%", "BTCUSD, ETHUSD"} {
		if !strings.Contains(msg, want) {
			t.Errorf("stats missing %q:\n%s", want, msg)
		}
	}
}
