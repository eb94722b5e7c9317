// Package provider supplies market data to the analysis pipeline. The only
// shipped implementation fabricates bars; a real feed satisfies the same
// interface.
package provider

import (
	"SignalForge/internal/model"
)

// DefaultBarCount is how many bars a collection requests per symbol.
const DefaultBarCount = 100

// DefaultSymbols is used when the configuration names none.
var DefaultSymbols = []string{"BTCUSD"}

// Provider fetches an ordered bar sequence for one symbol, oldest first with
// strictly increasing timestamps.
type Provider interface {
	FetchBars(symbol string, count int) ([]model.OHLCV, error)
	Name() string
}
