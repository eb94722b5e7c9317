package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"SignalForge/internal/config"
	"SignalForge/internal/history"
	"SignalForge/internal/metrics"
	"SignalForge/internal/notifier"
	"SignalForge/internal/provider"
	"SignalForge/internal/recorder"
	"SignalForge/internal/scheduler"
	"SignalForge/internal/strategy"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] SignalForge starting...")

	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init data provider and collector
	prov := provider.NewSimulated(0)
	log.Printf("[INFO] data source: %s", prov.Name())
	col := provider.NewCollector(prov, cfg.Trading.Symbols, provider.DefaultBarCount)

	// Init signal engine
	eng := strategy.NewEngine(strategy.Options{
		SMAFastPeriod:    cfg.Indicators.SMAPeriods[0],
		SMASlowPeriod:    cfg.Indicators.SMAPeriods[1],
		RSIPeriod:        cfg.Indicators.RSIPeriod,
		RSIOversold:      cfg.Indicators.RSIOversold,
		RSIOverbought:    cfg.Indicators.RSIOverbought,
		MinConfidence:    cfg.Notifications.MinConfidence,
		MaxSignalsPerRun: cfg.Trading.MaxSignalsPerHour,
	})

	// Init history store
	hist := history.Open(cfg.History.File)

	// Init notifiers
	var targets []notifier.Notifier
	var tg *notifier.Telegram
	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != "" {
		tg = notifier.NewTelegram(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
		targets = append(targets, tg)
	}
	if cfg.WhatsApp.AccountSID != "" && cfg.WhatsApp.AuthToken != "" {
		targets = append(targets, notifier.NewWhatsApp(
			cfg.WhatsApp.AccountSID, cfg.WhatsApp.AuthToken,
			cfg.WhatsApp.From, cfg.WhatsApp.To, cfg.Proxy))
	}
	var notify notifier.Notifier
	switch len(targets) {
	case 0:
		log.Println("[WARN] no notification channel configured, using noop")
		notify = notifier.NewNoop()
	case 1:
		notify = targets[0]
	default:
		notify = notifier.NewMulti(targets...)
	}

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Metrics endpoint
	if cfg.Metrics.Addr != "" {
		metrics.Serve(cfg.Metrics.Addr)
		log.Printf("[INFO] metrics listening on %s", cfg.Metrics.Addr)
	}

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, col, eng, hist, notify, rec, cfg.History.RetentionDays)
	if err := sched.RegisterAll(cfg.Schedule.SignalCron, cfg.Schedule.PruneCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Start Telegram command polling
	if tg != nil {
		go tg.StartPolling(ctx, sched.HandleCommand)
		log.Println("[INFO] Telegram polling started")
	}

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing signal check now")
		go sched.RunNow()
	}

	log.Println("[INFO] SignalForge is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] SignalForge stopped")
}
