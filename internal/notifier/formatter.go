package notifier

import (
	"fmt"
	"strings"

	"SignalForge/internal/history"
	"SignalForge/internal/model"
)

// FormatSignal renders one signal as an alert message: action uppercased,
// price to two decimals, confidence to one.
func FormatSignal(sig *model.Signal) string {
	var b strings.Builder
	b.WriteString("🚨 <b>Trading Signal Alert</b> 🚨\n\n")
	b.WriteString(fmt.Sprintf("Symbol: %s\n", sig.Symbol))
	b.WriteString(fmt.Sprintf("Action: %s\n", strings.ToUpper(string(sig.Action))))
	b.WriteString(fmt.Sprintf("Price: $%.2f\n", sig.Price))
	b.WriteString(fmt.Sprintf("Confidence: %.1f%%\n", sig.Confidence))
	b.WriteString(fmt.Sprintf("Indicators: %s\n", strings.Join(sig.Indicators, ", ")))
	if sig.Details != "" {
		b.WriteString(fmt.Sprintf("Details: %s\n", sig.Details))
	}
	b.WriteString(fmt.Sprintf("\nTimestamp: %s", sig.Timestamp))
	return b.String()
}

// FormatRecent renders a compact list of the most recent signals.
func FormatRecent(signals []*model.Signal) string {
	if len(signals) == 0 {
		return "No signals recorded yet."
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📜 <b>Recent Signals</b> (%d)\n\n", len(signals)))
	for _, sig := range signals {
		b.WriteString(fmt.Sprintf("%s %s %s @ $%.2f (%.1f%%)\n",
			sig.Timestamp, sig.Symbol, strings.ToUpper(string(sig.Action)), sig.Price, sig.Confidence))
	}
	return b.String()
}

// FormatStats renders aggregate statistics for a trailing period.
func FormatStats(st history.Stats) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📊 <b>Signal Statistics</b> | %s\n\n", st.DateRange))
	b.WriteString(fmt.Sprintf("Total: %d\n", st.TotalSignals))
	b.WriteString(fmt.Sprintf("Buy: %d | Sell: %d\n", st.BuySignals, st.SellSignals))
	b.WriteString(fmt.Sprintf("Avg confidence: %.1f%%\n", st.AvgConfidence))
	if len(st.Symbols) > 0 {
		b.WriteString(fmt.Sprintf("Symbols: %s\n", strings.Join(st.Symbols, ", ")))
	}
	return b.String()
}
