package calculator

import (
	"errors"
	"math"
)

// DefaultRSIPeriod is the conventional RSI lookback.
const DefaultRSIPeriod = 14

// CalculateRSI computes the cutler-style RSI series: per-step gains and
// losses averaged with trailing simple means (not Wilder smoothing) over
// `period` steps. The first `period` positions are undefined (one extra for
// the differencing). Division follows IEEE semantics: a zero loss average
// gives rs=+Inf and RSI exactly 100, an all-loss window gives exactly 0, and
// a fully flat window is undefined.
func CalculateRSI(values []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, errors.New("period must be positive")
	}

	gains := nanSlice(len(values))
	losses := nanSlice(len(values))
	for i := 1; i < len(values); i++ {
		delta := values[i] - values[i-1]
		if math.IsNaN(delta) {
			continue
		}
		gains[i] = math.Max(delta, 0)
		losses[i] = math.Max(-delta, 0)
	}

	avgGain := rollingApply(gains, period, mean)
	avgLoss := rollingApply(losses, period, mean)

	out := nanSlice(len(values))
	for i := range out {
		if math.IsNaN(avgGain[i]) || math.IsNaN(avgLoss[i]) {
			continue
		}
		rs := avgGain[i] / avgLoss[i]
		out[i] = 100.0 - 100.0/(1.0+rs)
	}
	return out, nil
}
