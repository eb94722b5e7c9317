package provider

import (
	"log"

	"SignalForge/internal/model"
)

// Collector gathers bars for a fixed symbol list in order. A symbol whose
// fetch fails is logged and skipped; the rest of the batch proceeds.
type Collector struct {
	Provider Provider
	Symbols  []string
	BarCount int
}

// NewCollector creates a Collector. Empty symbols fall back to the provider
// defaults, a zero bar count to DefaultBarCount.
func NewCollector(p Provider, symbols []string, barCount int) *Collector {
	if len(symbols) == 0 {
		symbols = DefaultSymbols
	}
	if barCount <= 0 {
		barCount = DefaultBarCount
	}
	return &Collector{Provider: p, Symbols: symbols, BarCount: barCount}
}

// Collect fetches bars for every configured symbol, preserving symbol order.
func (c *Collector) Collect() []model.SymbolBars {
	batch := make([]model.SymbolBars, 0, len(c.Symbols))
	for _, symbol := range c.Symbols {
		bars, err := c.Provider.FetchBars(symbol, c.BarCount)
		if err != nil {
			log.Printf("[ERROR] fetch bars for %s: %v", symbol, err)
			continue
		}
		batch = append(batch, model.SymbolBars{Symbol: symbol, Bars: bars})
	}
	return batch
}
