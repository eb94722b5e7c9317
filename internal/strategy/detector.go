package strategy

import (
	"fmt"
	"log"
	"time"

	"SignalForge/internal/calculator"
	"SignalForge/internal/model"
)

// Each check inspects the previous and latest indicator-augmented points and
// fires at most once per call. A rule whose required values are still inside
// the warm-up window stays silent.

func (e *Engine) checkRSI(symbol string, previous, latest model.IndicatorPoint, now time.Time) *model.Signal {
	if calculator.Undefined(latest.RSI) || calculator.Undefined(previous.RSI) {
		return nil
	}

	// Oversold recovery: RSI climbs back above the oversold threshold.
	if previous.RSI <= e.opts.RSIOversold && latest.RSI > e.opts.RSIOversold {
		confidence := min95(70 + (e.opts.RSIOversold - previous.RSI))
		return e.newSignal(symbol, model.ActionBuy, latest.Close, confidence, now,
			[]string{"RSI Oversold Recovery"},
			fmt.Sprintf("RSI: %.1f (was %.1f)", latest.RSI, previous.RSI))
	}

	// Overbought decline: RSI drops back below the overbought threshold.
	if previous.RSI >= e.opts.RSIOverbought && latest.RSI < e.opts.RSIOverbought {
		confidence := min95(70 + (previous.RSI - e.opts.RSIOverbought))
		return e.newSignal(symbol, model.ActionSell, latest.Close, confidence, now,
			[]string{"RSI Overbought Decline"},
			fmt.Sprintf("RSI: %.1f (was %.1f)", latest.RSI, previous.RSI))
	}

	return nil
}

// checkMACrossover receives the trailing window of recent points; the last
// two decide whether the fast SMA crossed the slow one.
func (e *Engine) checkMACrossover(symbol string, recent []model.IndicatorPoint, now time.Time) *model.Signal {
	if len(recent) < 2 {
		return nil
	}
	latest := recent[len(recent)-1]
	previous := recent[len(recent)-2]

	if calculator.Undefined(latest.SMAFast) || calculator.Undefined(latest.SMASlow) ||
		calculator.Undefined(previous.SMAFast) || calculator.Undefined(previous.SMASlow) {
		return nil
	}

	if previous.SMAFast <= previous.SMASlow && latest.SMAFast > latest.SMASlow {
		return e.newSignal(symbol, model.ActionBuy, latest.Close, 75, now,
			[]string{fmt.Sprintf("Golden Cross (SMA%d/SMA%d)", e.opts.SMAFastPeriod, e.opts.SMASlowPeriod)},
			fmt.Sprintf("Fast MA: %.2f, Slow MA: %.2f", latest.SMAFast, latest.SMASlow))
	}

	if previous.SMAFast >= previous.SMASlow && latest.SMAFast < latest.SMASlow {
		return e.newSignal(symbol, model.ActionSell, latest.Close, 75, now,
			[]string{fmt.Sprintf("Death Cross (SMA%d/SMA%d)", e.opts.SMAFastPeriod, e.opts.SMASlowPeriod)},
			fmt.Sprintf("Fast MA: %.2f, Slow MA: %.2f", latest.SMAFast, latest.SMASlow))
	}

	return nil
}

func (e *Engine) checkMACD(symbol string, previous, latest model.IndicatorPoint, now time.Time) *model.Signal {
	if calculator.Undefined(latest.MACD) || calculator.Undefined(latest.MACDSignal) ||
		calculator.Undefined(previous.MACD) || calculator.Undefined(previous.MACDSignal) {
		return nil
	}

	// Bullish crossover below the zero line carries more conviction.
	if previous.MACD <= previous.MACDSignal && latest.MACD > latest.MACDSignal && latest.MACD < 0 {
		return e.newSignal(symbol, model.ActionBuy, latest.Close, 80, now,
			[]string{"MACD Bullish Crossover"},
			fmt.Sprintf("MACD: %.4f, Signal: %.4f", latest.MACD, latest.MACDSignal))
	}

	if previous.MACD >= previous.MACDSignal && latest.MACD < latest.MACDSignal && latest.MACD > 0 {
		return e.newSignal(symbol, model.ActionSell, latest.Close, 80, now,
			[]string{"MACD Bearish Crossover"},
			fmt.Sprintf("MACD: %.4f, Signal: %.4f", latest.MACD, latest.MACDSignal))
	}

	return nil
}

func (e *Engine) checkBollinger(symbol string, previous, latest model.IndicatorPoint, now time.Time) *model.Signal {
	if calculator.Undefined(latest.BBUpper) || calculator.Undefined(latest.BBLower) ||
		calculator.Undefined(previous.BBUpper) || calculator.Undefined(previous.BBLower) {
		return nil
	}

	// Price bouncing back above the lower band.
	if previous.Close <= previous.BBLower && latest.Close > latest.BBLower {
		return e.newSignal(symbol, model.ActionBuy, latest.Close, 70, now,
			[]string{"Bollinger Band Bounce (Lower)"},
			fmt.Sprintf("Price: %.2f, Lower Band: %.2f", latest.Close, latest.BBLower))
	}

	// Price falling back below the upper band.
	if previous.Close >= previous.BBUpper && latest.Close < latest.BBUpper {
		return e.newSignal(symbol, model.ActionSell, latest.Close, 70, now,
			[]string{"Bollinger Band Bounce (Upper)"},
			fmt.Sprintf("Price: %.2f, Upper Band: %.2f", latest.Close, latest.BBUpper))
	}

	return nil
}

func (e *Engine) newSignal(symbol string, action model.Action, price, confidence float64, now time.Time, indicators []string, details string) *model.Signal {
	sig, err := model.NewSignal(symbol, action, price, confidence, now, indicators, details)
	if err != nil {
		log.Printf("[WARN] discard malformed candidate for %s: %v", symbol, err)
		return nil
	}
	return sig
}

func min95(v float64) float64 {
	if v > 95 {
		return 95
	}
	return v
}
