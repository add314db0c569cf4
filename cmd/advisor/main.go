package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/jungbyungkil/aistockcomment/internal/advisor"
	"github.com/jungbyungkil/aistockcomment/internal/batch"
	"github.com/jungbyungkil/aistockcomment/internal/collector"
	"github.com/jungbyungkil/aistockcomment/internal/config"
	"github.com/jungbyungkil/aistockcomment/internal/news"
	"github.com/jungbyungkil/aistockcomment/internal/notifier"
	"github.com/jungbyungkil/aistockcomment/internal/recorder"
	"github.com/jungbyungkil/aistockcomment/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] stock advisor starting...")

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

	// Init market data collector
	fetcher := collector.NewKRXFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	log.Printf("[INFO] data source: %s", fetcher.Name())
	col := collector.NewCollector(fetcher)

	// Init news scraper
	scraper := news.NewScraper(cfg.News.BaseURL, cfg.Proxy)

	// Init advice requester
	llm := advisor.NewOpenAIClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model)
	adv := advisor.New(llm)

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

	// Init notifier
	var notif notifier.Notifier
	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != "" {
		notif = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
		log.Println("[INFO] telegram notifications enabled")
	} else {
		notif = notifier.NewNoopNotifier()
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runner := &batch.Runner{
		Collector:  col,
		News:       scraper,
		Advisor:    adv,
		Recorder:   rec,
		Notifier:   notif,
		Watchlist:  cfg.Watchlist,
		WindowDays: cfg.Analysis.WindowDays,
		NewsCount:  cfg.News.Count,
	}

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, runner.Run)
	if err := sched.Register(cfg.Schedule.Times); err != nil {
		log.Fatalf("[FATAL] register triggers: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// One pass immediately on start
	log.Println("[INFO] running initial analysis pass")
	go sched.RunNow()

	log.Println("[INFO] stock advisor is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] stock advisor stopped")
}
