package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jungbyungkil/aistockcomment/internal/model"
)

// Config holds all application configuration.
type Config struct {
	OpenAI struct {
		APIKey string `yaml:"api_key"`
		Model  string `yaml:"model"`
	} `yaml:"openai"`
	DataSource struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
	} `yaml:"data_source"`
	News struct {
		BaseURL string `yaml:"base_url"`
		Count   int    `yaml:"count"`
	} `yaml:"news"`
	Schedule struct {
		Times []string `yaml:"times"` // daily trigger times, "HH:MM"
	} `yaml:"schedule"`
	Analysis struct {
		WindowDays int `yaml:"window_days"`
	} `yaml:"analysis"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Dashboard struct {
		Addr string `yaml:"addr"`
	} `yaml:"dashboard"`
	Watchlist []model.WatchlistEntry `yaml:"watchlist"`
	Proxy     string                 `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

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
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.OpenAI.APIKey = v
	}
	if v := os.Getenv("OPENAI_MODEL"); v != "" {
		cfg.OpenAI.Model = v
	}
	if v := os.Getenv("KRX_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("KRX_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("DASHBOARD_ADDR"); v != "" {
		cfg.Dashboard.Addr = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.OpenAI.Model == "" {
		cfg.OpenAI.Model = "gpt-4o"
	}
	if cfg.News.Count == 0 {
		cfg.News.Count = 5
	}
	if len(cfg.Schedule.Times) == 0 {
		cfg.Schedule.Times = []string{"08:50", "15:00"}
	}
	if cfg.Analysis.WindowDays == 0 {
		cfg.Analysis.WindowDays = 180
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/stock_advisor.db"
	}
	if cfg.Dashboard.Addr == "" {
		cfg.Dashboard.Addr = ":8501"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.OpenAI.APIKey == "" {
		return fmt.Errorf("openai.api_key is required")
	}
	if c.DataSource.BaseURL == "" {
		return fmt.Errorf("data_source.base_url is required")
	}
	if len(c.Watchlist) == 0 {
		return fmt.Errorf("watchlist must contain at least one entry")
	}
	for i, e := range c.Watchlist {
		if e.Name == "" {
			return fmt.Errorf("watchlist[%d].name is required", i)
		}
		if e.Ticker == "" {
			return fmt.Errorf("watchlist[%d].ticker is required", i)
		}
		if e.AvgBuyPrice < 0 {
			return fmt.Errorf("watchlist[%d].avg_buy_price must be >= 0", i)
		}
		if e.Goal == "" {
			return fmt.Errorf("watchlist[%d].goal is required", i)
		}
	}
	return nil
}
