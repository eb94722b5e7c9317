package provider

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"SignalForge/internal/model"
)

// basePrices anchors the random walk per symbol.
var basePrices = map[string]float64{
	"BTCUSD": 45000.0,
	"ETHUSD": 3000.0,
	"AAPL":   150.0,
	"GOOGL":  2500.0,
	"TSLA":   200.0,
}

const defaultBasePrice = 100.0

// Simulated fabricates hourly OHLCV bars with a small random trend and
// volatility around a per-symbol base price.
type Simulated struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// NewSimulated creates a simulated provider. Seed 0 derives one from the
// clock.
func NewSimulated(seed int64) *Simulated {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Simulated{rng: rand.New(rand.NewSource(seed)), now: time.Now}
}

func (p *Simulated) Name() string { return "simulated" }

// FetchBars generates `count` hourly bars ending at the current hour.
func (p *Simulated) FetchBars(symbol string, count int) ([]model.OHLCV, error) {
	if count <= 0 {
		return nil, errors.New("bar count must be positive")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	base, ok := basePrices[symbol]
	if !ok {
		base = defaultBasePrice
	}

	end := p.now().Truncate(time.Hour)
	bars := make([]model.OHLCV, count)
	price := base
	prevClose := base
	for i := 0; i < count; i++ {
		trend := p.rng.Float64()*0.004 - 0.002
		volatility := p.rng.Float64()*0.04 - 0.02
		price *= 1 + trend + volatility

		spread := price * 0.01
		bars[i] = model.OHLCV{
			Time:   end.Add(-time.Duration(count-1-i) * time.Hour),
			Open:   prevClose,
			High:   price + p.rng.Float64()*spread,
			Low:    price - p.rng.Float64()*spread,
			Close:  price,
			Volume: float64(1000 + p.rng.Intn(9001)),
		}
		prevClose = price
	}
	return bars, nil
}
