package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := cfg.Indicators.SMAPeriods; len(got) != 2 || got[0] != 20 || got[1] != 50 {
		t.Errorf("sma_periods = %v, want [20 50]", got)
	}
	if cfg.Indicators.RSIPeriod != 14 {
		t.Errorf("rsi_period = %d, want 14", cfg.Indicators.RSIPeriod)
	}
	if cfg.Indicators.RSIOversold != 30 || cfg.Indicators.RSIOverbought != 70 {
		t.Errorf("rsi thresholds = %v/%v", cfg.Indicators.RSIOversold, cfg.Indicators.RSIOverbought)
	}
	if cfg.Notifications.MinConfidence != 65.0 {
		t.Errorf("min_confidence = %v, want 65", cfg.Notifications.MinConfidence)
	}
	if cfg.Trading.MaxSignalsPerHour != 5 {
		t.Errorf("max_signals_per_hour = %d, want 5", cfg.Trading.MaxSignalsPerHour)
	}
	if cfg.History.File != "data/signal_history.json" || cfg.History.RetentionDays != 90 {
		t.Errorf("history defaults = %q/%d", cfg.History.File, cfg.History.RetentionDays)
	}
	if cfg.Schedule.SignalCron != "0 */15 * * * *" {
		t.Errorf("signal_cron = %q", cfg.Schedule.SignalCron)
	}
	if cfg.Schedule.PruneCron != "0 0 3 * * *" {
		t.Errorf("prune_cron = %q", cfg.Schedule.PruneCron)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
telegram:
  bot_token: "tok123"
  chat_id: "42"
indicators:
  sma_periods: [10, 30]
  rsi_period: 7
trading:
  symbols: ["BTCUSD", "ETHUSD"]
history:
  retention_days: 30
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Telegram.BotToken != "tok123" || cfg.Telegram.ChatID != "42" {
		t.Errorf("telegram = %+v", cfg.Telegram)
	}
	if got := cfg.Indicators.SMAPeriods; got[0] != 10 || got[1] != 30 {
		t.Errorf("sma_periods = %v", got)
	}
	if cfg.Indicators.RSIPeriod != 7 {
		t.Errorf("rsi_period = %d", cfg.Indicators.RSIPeriod)
	}
	if len(cfg.Trading.Symbols) != 2 {
		t.Errorf("symbols = %v", cfg.Trading.Symbols)
	}
	if cfg.History.RetentionDays != 30 {
		t.Errorf("retention_days = %d", cfg.History.RetentionDays)
	}
	// Fields absent from the file still pick up defaults.
	if cfg.Notifications.MinConfidence != 65.0 {
		t.Errorf("min_confidence default not applied: %v", cfg.Notifications.MinConfidence)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
telegram:
  bot_token: "from-file"
trading:
  symbols: ["AAPL"]
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("TELEGRAM_BOT_TOKEN", "from-env")
	t.Setenv("TRADING_SYMBOLS", "BTCUSD, ETHUSD , ")
	t.Setenv("MIN_CONFIDENCE", "72.5")
	t.Setenv("SIGNAL_CRON", "0 0 * * * *")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Telegram.BotToken != "from-env" {
		t.Errorf("env should win over file, got %q", cfg.Telegram.BotToken)
	}
	if len(cfg.Trading.Symbols) != 2 || cfg.Trading.Symbols[0] != "BTCUSD" || cfg.Trading.Symbols[1] != "ETHUSD" {
		t.Errorf("symbols = %v, want trimmed 2-element list", cfg.Trading.Symbols)
	}
	if cfg.Notifications.MinConfidence != 72.5 {
		t.Errorf("min_confidence = %v", cfg.Notifications.MinConfidence)
	}
	if cfg.Schedule.SignalCron != "0 0 * * * *" {
		t.Errorf("signal_cron = %q", cfg.Schedule.SignalCron)
	}
}

func TestLoadExplicitZeroWinsOverDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
indicators:
  rsi_oversold: 0
notifications:
  min_confidence: 0
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Notifications.MinConfidence != 0 {
		t.Errorf("min_confidence = %v, explicit 0 should not be replaced by the default", cfg.Notifications.MinConfidence)
	}
	if cfg.Indicators.RSIOversold != 0 {
		t.Errorf("rsi_oversold = %v, explicit 0 should not be replaced by the default", cfg.Indicators.RSIOversold)
	}
	// Untouched keys still default.
	if cfg.Indicators.RSIOverbought != 70 {
		t.Errorf("rsi_overbought = %v, want default 70", cfg.Indicators.RSIOverbought)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("zero thresholds are in range and should validate: %v", err)
	}
}

func TestValidateRejectsBadRanges(t *testing.T) {
	base := func(t *testing.T) *Config {
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		if err != nil {
			t.Fatal(err)
		}
		return cfg
	}

	cases := []struct {
		name  string
		mutate func(*Config)
	}{
		{"sma period count", func(c *Config) { c.Indicators.SMAPeriods = []int{20} }},
		{"sma fast not below slow", func(c *Config) { c.Indicators.SMAPeriods = []int{50, 20} }},
		{"sma non-positive", func(c *Config) { c.Indicators.SMAPeriods = []int{0, 50} }},
		{"rsi period", func(c *Config) { c.Indicators.RSIPeriod = -1 }},
		{"rsi thresholds inverted", func(c *Config) { c.Indicators.RSIOversold = 80 }},
		{"min confidence range", func(c *Config) { c.Notifications.MinConfidence = 150 }},
		{"signals per hour", func(c *Config) { c.Trading.MaxSignalsPerHour = -3 }},
		{"retention days", func(c *Config) { c.History.RetentionDays = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base(t)
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
