package model

// WatchlistEntry is one tracked holding, loaded from configuration and
// immutable for the lifetime of the process.
type WatchlistEntry struct {
	Name        string  `yaml:"name"`
	Ticker      string  `yaml:"ticker"`
	AvgBuyPrice float64 `yaml:"avg_buy_price"`
	Goal        string  `yaml:"goal"`
}
