package model

import (
	"testing"
	"time"
)

var at = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func TestNewSignal(t *testing.T) {
	sig, err := NewSignal("BTCUSD", ActionBuy, 45000, 82, at, []string{"Golden Cross (SMA20/SMA50)"}, "")
	if err != nil {
		t.Fatalf("NewSignal: %v", err)
	}
	if sig.Timestamp != "2026-03-10T12:00:00" {
		t.Errorf("timestamp = %q", sig.Timestamp)
	}
	if sig.ID != "" || sig.SavedAt != "" {
		t.Errorf("identity fields must stay empty until persisted: %+v", sig)
	}
}

func TestNewSignalValidation(t *testing.T) {
	cases := []struct {
		name   string
		symbol string
		action Action
		price  float64
	}{
		{"empty symbol", "", ActionBuy, 100},
		{"bad action", "BTCUSD", Action("hold"), 100},
		{"zero price", "BTCUSD", ActionSell, 0},
		{"negative price", "BTCUSD", ActionSell, -5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewSignal(tc.symbol, tc.action, tc.price, 50, at, nil, ""); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestNewSignalClampsConfidence(t *testing.T) {
	high, err := NewSignal("BTCUSD", ActionBuy, 100, 150, at, nil, "")
	if err != nil {
		t.Fatal(err)
	}
	if high.Confidence != 100 {
		t.Errorf("confidence = %v, want clamped to 100", high.Confidence)
	}
	low, err := NewSignal("BTCUSD", ActionBuy, 100, -20, at, nil, "")
	if err != nil {
		t.Fatal(err)
	}
	if low.Confidence != 0 {
		t.Errorf("confidence = %v, want clamped to 0", low.Confidence)
	}
}

func TestActionValid(t *testing.T) {
	if !ActionBuy.Valid() || !ActionSell.Valid() {
		t.Error("buy and sell are valid actions")
	}
	if Action("hold").Valid() || Action("").Valid() {
		t.Error("unknown actions must be invalid")
	}
}
