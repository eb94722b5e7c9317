package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration. It is loaded once at startup
// and injected by value into each component; nothing reads it globally.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	WhatsApp struct {
		AccountSID string `yaml:"account_sid"`
		AuthToken  string `yaml:"auth_token"`
		From       string `yaml:"from"`
		To         string `yaml:"to"`
	} `yaml:"whatsapp"`
	Indicators struct {
		SMAPeriods    []int   `yaml:"sma_periods"`
		RSIPeriod     int     `yaml:"rsi_period"`
		RSIOversold   float64 `yaml:"rsi_oversold"`
		RSIOverbought float64 `yaml:"rsi_overbought"`
	} `yaml:"indicators"`
	Notifications struct {
		MinConfidence float64 `yaml:"min_confidence"`
	} `yaml:"notifications"`
	Trading struct {
		Symbols           []string `yaml:"symbols"`
		MaxSignalsPerHour int      `yaml:"max_signals_per_hour"`
	} `yaml:"trading"`
	History struct {
		File          string `yaml:"file"`
		RetentionDays int    `yaml:"retention_days"`
	} `yaml:"history"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Schedule struct {
		SignalCron string `yaml:"signal_cron"`
		PruneCron  string `yaml:"prune_cron"`
	} `yaml:"schedule"`
	Metrics struct {
		Addr string `yaml:"addr"`
	} `yaml:"metrics"`
	Proxy string `yaml:"proxy"`
}

// Load seeds defaults, overlays the YAML file, then applies environment
// variable overrides. A missing file is fine: everything has a default.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	// Defaults go in before the file is parsed so that a key present in the
	// file always wins, including an explicit zero.
	cfg.Indicators.SMAPeriods = []int{20, 50}
	cfg.Indicators.RSIPeriod = 14
	cfg.Indicators.RSIOversold = 30
	cfg.Indicators.RSIOverbought = 70
	cfg.Notifications.MinConfidence = 65.0
	cfg.Trading.MaxSignalsPerHour = 5
	cfg.History.File = "data/signal_history.json"
	cfg.History.RetentionDays = 90
	cfg.Schedule.SignalCron = "0 */15 * * * *"
	cfg.Schedule.PruneCron = "0 0 3 * * *"

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("TWILIO_ACCOUNT_SID"); v != "" {
		cfg.WhatsApp.AccountSID = v
	}
	if v := os.Getenv("TWILIO_AUTH_TOKEN"); v != "" {
		cfg.WhatsApp.AuthToken = v
	}
	if v := os.Getenv("TWILIO_WHATSAPP_FROM"); v != "" {
		cfg.WhatsApp.From = v
	}
	if v := os.Getenv("TWILIO_WHATSAPP_TO"); v != "" {
		cfg.WhatsApp.To = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("HISTORY_FILE"); v != "" {
		cfg.History.File = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("SIGNAL_CRON"); v != "" {
		cfg.Schedule.SignalCron = v
	}
	if v := os.Getenv("METRICS_ADDR"); v != "" {
		cfg.Metrics.Addr = v
	}
	if v := os.Getenv("TRADING_SYMBOLS"); v != "" {
		var symbols []string
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				symbols = append(symbols, s)
			}
		}
		cfg.Trading.Symbols = symbols
	}
	if v := os.Getenv("MIN_CONFIDENCE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Notifications.MinConfidence = f
		}
	}

	return cfg, nil
}

// Validate checks option ranges. Notification channels are optional; the
// caller falls back to a noop notifier when none is configured.
func (c *Config) Validate() error {
	if len(c.Indicators.SMAPeriods) != 2 {
		return fmt.Errorf("indicators.sma_periods must name exactly [fast, slow], got %v", c.Indicators.SMAPeriods)
	}
	fast, slow := c.Indicators.SMAPeriods[0], c.Indicators.SMAPeriods[1]
	if fast <= 0 || slow <= 0 {
		return fmt.Errorf("indicators.sma_periods must be positive, got %v", c.Indicators.SMAPeriods)
	}
	if fast >= slow {
		return fmt.Errorf("indicators.sma_periods fast (%d) must be below slow (%d)", fast, slow)
	}
	if c.Indicators.RSIPeriod <= 0 {
		return fmt.Errorf("indicators.rsi_period must be positive")
	}
	if c.Indicators.RSIOversold >= c.Indicators.RSIOverbought {
		return fmt.Errorf("indicators.rsi_oversold (%v) must be below rsi_overbought (%v)",
			c.Indicators.RSIOversold, c.Indicators.RSIOverbought)
	}
	if c.Notifications.MinConfidence < 0 || c.Notifications.MinConfidence > 100 {
		return fmt.Errorf("notifications.min_confidence must be in [0,100]")
	}
	if c.Trading.MaxSignalsPerHour <= 0 {
		return fmt.Errorf("trading.max_signals_per_hour must be positive")
	}
	if c.History.RetentionDays <= 0 {
		return fmt.Errorf("history.retention_days must be positive")
	}
	return nil
}
