package calculator

import (
	"fmt"

	"SignalForge/internal/model"
)

// Params configures the tunable indicator periods. MACD, Bollinger, and
// stochastic parameters use the package defaults.
type Params struct {
	SMAFastPeriod int
	SMASlowPeriod int
	RSIPeriod     int
}

// Compute calculates every indicator over the bar sequence and returns one
// point per bar, aligned by position with the input.
func Compute(bars []model.OHLCV, p Params) ([]model.IndicatorPoint, error) {
	if p.SMAFastPeriod == p.SMASlowPeriod {
		return nil, fmt.Errorf("sma fast and slow periods must differ, both %d", p.SMAFastPeriod)
	}

	closes := make([]float64, len(bars))
	highs := make([]float64, len(bars))
	lows := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
		highs[i] = b.High
		lows[i] = b.Low
	}

	smaFast, err := CalculateSMA(closes, p.SMAFastPeriod)
	if err != nil {
		return nil, fmt.Errorf("sma(%d): %w", p.SMAFastPeriod, err)
	}
	smaSlow, err := CalculateSMA(closes, p.SMASlowPeriod)
	if err != nil {
		return nil, fmt.Errorf("sma(%d): %w", p.SMASlowPeriod, err)
	}
	rsi, err := CalculateRSI(closes, p.RSIPeriod)
	if err != nil {
		return nil, fmt.Errorf("rsi(%d): %w", p.RSIPeriod, err)
	}
	macd, err := CalculateMACD(closes, DefaultMACDFast, DefaultMACDSlow, DefaultMACDSignal)
	if err != nil {
		return nil, fmt.Errorf("macd: %w", err)
	}
	bb, err := CalculateBollingerBands(closes, DefaultBollingerPeriod, DefaultBollingerStdDev)
	if err != nil {
		return nil, fmt.Errorf("bollinger: %w", err)
	}
	stoch, err := CalculateStochastic(highs, lows, closes, DefaultStochasticPeriod)
	if err != nil {
		return nil, fmt.Errorf("stochastic: %w", err)
	}

	points := make([]model.IndicatorPoint, len(bars))
	for i := range bars {
		points[i] = model.IndicatorPoint{
			Time:       bars[i].Time,
			Close:      closes[i],
			SMAFast:    smaFast[i],
			SMASlow:    smaSlow[i],
			RSI:        rsi[i],
			MACD:       macd.MACD[i],
			MACDSignal: macd.Signal[i],
			MACDHist:   macd.Histogram[i],
			BBUpper:    bb.Upper[i],
			BBMiddle:   bb.Middle[i],
			BBLower:    bb.Lower[i],
			StochK:     stoch.K[i],
			StochD:     stoch.D[i],
		}
	}
	return points, nil
}
