package model

import "time"

// IndicatorPoint holds one bar's close together with every computed
// indicator, aligned 1:1 with the source bar sequence. Values inside the
// warm-up window are NaN, never zero.
type IndicatorPoint struct {
	Time  time.Time
	Close float64

	SMAFast float64
	SMASlow float64

	RSI float64

	MACD       float64
	MACDSignal float64
	MACDHist   float64

	BBUpper  float64
	BBMiddle float64
	BBLower  float64

	StochK float64
	StochD float64
}
