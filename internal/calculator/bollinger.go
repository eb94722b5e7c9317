package calculator

// Standard Bollinger Band parameters.
const (
	DefaultBollingerPeriod = 20
	DefaultBollingerStdDev = 2.0
)

// BollingerSeries holds the three band series.
type BollingerSeries struct {
	Upper  []float64
	Middle []float64
	Lower  []float64
}

// CalculateBollingerBands computes the middle band (SMA), and upper/lower
// bands at multiplier times the trailing sample standard deviation
// (period-1 divisor) of the same window.
func CalculateBollingerBands(values []float64, period int, multiplier float64) (*BollingerSeries, error) {
	middle, err := CalculateSMA(values, period)
	if err != nil {
		return nil, err
	}
	stdev := rollingApply(values, period, sampleStdDev)

	upper := make([]float64, len(values))
	lower := make([]float64, len(values))
	for i := range values {
		upper[i] = middle[i] + multiplier*stdev[i]
		lower[i] = middle[i] - multiplier*stdev[i]
	}

	return &BollingerSeries{Upper: upper, Middle: middle, Lower: lower}, nil
}
