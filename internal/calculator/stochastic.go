package calculator

import "errors"

// Standard stochastic oscillator parameters.
const (
	DefaultStochasticPeriod  = 14
	DefaultStochasticDPeriod = 3
)

// StochasticSeries holds the %K and %D series.
type StochasticSeries struct {
	K []float64
	D []float64
}

// CalculateStochastic computes %K = 100*(close-lowestLow)/(highestHigh-lowestLow)
// over the trailing period, and %D as the 3-period SMA of %K.
func CalculateStochastic(high, low, close []float64, period int) (*StochasticSeries, error) {
	if period <= 0 {
		return nil, errors.New("period must be positive")
	}
	if len(high) != len(close) || len(low) != len(close) {
		return nil, errors.New("high/low/close series lengths differ")
	}

	highest := rollingMax(high, period)
	lowest := rollingMin(low, period)

	k := make([]float64, len(close))
	for i := range close {
		k[i] = 100.0 * (close[i] - lowest[i]) / (highest[i] - lowest[i])
	}

	d, err := CalculateSMA(k, DefaultStochasticDPeriod)
	if err != nil {
		return nil, err
	}

	return &StochasticSeries{K: k, D: d}, nil
}
