package calculator

// Standard MACD parameters.
const (
	DefaultMACDFast   = 12
	DefaultMACDSlow   = 26
	DefaultMACDSignal = 9
)

// MACDSeries holds the three MACD output series.
type MACDSeries struct {
	MACD      []float64
	Signal    []float64
	Histogram []float64
}

// CalculateMACD computes the MACD line (fast EMA minus slow EMA), its signal
// line (EMA of the MACD line), and the histogram (their difference).
func CalculateMACD(values []float64, fast, slow, signalPeriod int) (*MACDSeries, error) {
	emaFast, err := CalculateEMA(values, fast)
	if err != nil {
		return nil, err
	}
	emaSlow, err := CalculateEMA(values, slow)
	if err != nil {
		return nil, err
	}

	macd := make([]float64, len(values))
	for i := range macd {
		macd[i] = emaFast[i] - emaSlow[i]
	}

	signal, err := CalculateEMA(macd, signalPeriod)
	if err != nil {
		return nil, err
	}

	hist := make([]float64, len(values))
	for i := range hist {
		hist[i] = macd[i] - signal[i]
	}

	return &MACDSeries{MACD: macd, Signal: signal, Histogram: hist}, nil
}
