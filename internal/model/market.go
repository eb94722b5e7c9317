package model

import "time"

// OHLCV represents a single candlestick bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// SymbolBars pairs a symbol with its ordered bar sequence (oldest first,
// strictly increasing timestamps). Batches are slices of SymbolBars so that
// analysis order stays deterministic.
type SymbolBars struct {
	Symbol string
	Bars   []OHLCV
}
