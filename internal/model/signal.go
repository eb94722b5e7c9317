package model

import (
	"errors"
	"fmt"
	"time"
)

// TimeLayout is the timestamp format used on signals. Seconds precision keeps
// ISO-8601 strings lexically monotonic, which the history store relies on for
// filtering and sorting.
const TimeLayout = "2006-01-02T15:04:05"

// Action is the direction of a trading signal.
type Action string

const (
	ActionBuy  Action = "buy"
	ActionSell Action = "sell"
)

// Valid reports whether the action is one of the two known values.
func (a Action) Valid() bool {
	return a == ActionBuy || a == ActionSell
}

// Signal is a confidence-scored trading recommendation produced by the
// detector. ID and SavedAt are empty until the history store persists it;
// a persisted signal is never modified.
type Signal struct {
	ID         string   `json:"id,omitempty"`
	Symbol     string   `json:"symbol"`
	Action     Action   `json:"action"`
	Price      float64  `json:"price"`
	Confidence float64  `json:"confidence"`
	Indicators []string `json:"indicators"`
	Timestamp  string   `json:"timestamp"`
	Details    string   `json:"details"`
	SavedAt    string   `json:"saved_at,omitempty"`
}

// NewSignal builds a signal, enforcing the record invariants: the action must
// be buy or sell, the price positive, and confidence is clamped to [0,100].
func NewSignal(symbol string, action Action, price, confidence float64, at time.Time, indicators []string, details string) (*Signal, error) {
	if symbol == "" {
		return nil, errors.New("symbol is required")
	}
	if !action.Valid() {
		return nil, fmt.Errorf("invalid action %q", action)
	}
	if price <= 0 {
		return nil, fmt.Errorf("price must be positive, got %v", price)
	}
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 100 {
		confidence = 100
	}
	return &Signal{
		Symbol:     symbol,
		Action:     action,
		Price:      price,
		Confidence: confidence,
		Indicators: indicators,
		Timestamp:  at.Format(TimeLayout),
		Details:    details,
	}, nil
}
