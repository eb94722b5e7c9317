// Package calculator computes technical indicator series over price data.
// All functions are pure: one aligned output value per input position, with
// NaN marking positions inside the warm-up window. NaN propagates through
// every derived series and is never coerced to zero.
package calculator

import (
	"errors"
	"math"
)

// Undefined reports whether an indicator value is inside its warm-up window.
func Undefined(v float64) bool {
	return math.IsNaN(v)
}

func nanSlice(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}

// rollingApply computes fn over each trailing window of `period` positions
// (inclusive of the current one). Positions without a full window, or whose
// window contains a NaN, yield NaN.
func rollingApply(values []float64, period int, fn func(window []float64) float64) []float64 {
	out := nanSlice(len(values))
	for i := period - 1; i < len(values); i++ {
		window := values[i-period+1 : i+1]
		defined := true
		for _, v := range window {
			if math.IsNaN(v) {
				defined = false
				break
			}
		}
		if defined {
			out[i] = fn(window)
		}
	}
	return out
}

func mean(window []float64) float64 {
	sum := 0.0
	for _, v := range window {
		sum += v
	}
	return sum / float64(len(window))
}

// sampleStdDev uses the period-1 divisor, matching the Bollinger contract.
func sampleStdDev(window []float64) float64 {
	if len(window) < 2 {
		return math.NaN()
	}
	m := mean(window)
	sum := 0.0
	for _, v := range window {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(window)-1))
}

// CalculateSMA computes the simple moving average series over the given
// period. The first period-1 positions are undefined.
func CalculateSMA(values []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, errors.New("period must be positive")
	}
	return rollingApply(values, period, mean), nil
}

// CalculateEMA computes an exponentially weighted mean with smoothing
// span=period and weights growing from the series start: at position t the
// value is sum((1-a)^(t-i) * x_i) / sum((1-a)^(t-i)) over all defined inputs
// i <= t, with a = 2/(period+1). A NaN input decays the accumulators without
// contributing, so the output stays defined once any input has been seen.
// MACD relies on this exact adjusted weighting.
func CalculateEMA(values []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, errors.New("period must be positive")
	}
	alpha := 2.0 / (float64(period) + 1.0)
	decay := 1.0 - alpha

	out := make([]float64, len(values))
	num, den := 0.0, 0.0
	for i, v := range values {
		num *= decay
		den *= decay
		if !math.IsNaN(v) {
			num += v
			den++
		}
		if den > 0 {
			out[i] = num / den
		} else {
			out[i] = math.NaN()
		}
	}
	return out, nil
}

// rollingMax returns the trailing-window maximum series.
func rollingMax(values []float64, period int) []float64 {
	return rollingApply(values, period, func(window []float64) float64 {
		max := window[0]
		for _, v := range window[1:] {
			if v > max {
				max = v
			}
		}
		return max
	})
}

// rollingMin returns the trailing-window minimum series.
func rollingMin(values []float64, period int) []float64 {
	return rollingApply(values, period, func(window []float64) float64 {
		min := window[0]
		for _, v := range window[1:] {
			if v < min {
				min = v
			}
		}
		return min
	})
}
