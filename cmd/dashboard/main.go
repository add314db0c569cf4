package main

import (
	"log"
	"os"

	"github.com/jungbyungkil/aistockcomment/internal/config"
	"github.com/jungbyungkil/aistockcomment/internal/dashboard"
	"github.com/jungbyungkil/aistockcomment/internal/recorder"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] dashboard starting...")

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}

	rec, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
	if err != nil {
		log.Fatalf("[FATAL] open sqlite: %v", err)
	}
	defer rec.Close()

	srv, err := dashboard.NewServer(rec)
	if err != nil {
		log.Fatalf("[FATAL] init dashboard: %v", err)
	}
	if err := srv.ListenAndServe(cfg.Dashboard.Addr); err != nil {
		log.Fatalf("[FATAL] dashboard server: %v", err)
	}
}
