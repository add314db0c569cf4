package collector

import (
	"fmt"
	"time"

	"github.com/jungbyungkil/aistockcomment/internal/calculator"
	"github.com/jungbyungkil/aistockcomment/internal/model"
)

// Collector fetches a symbol's trailing price window and attaches
// technical indicators to every bar.
type Collector struct {
	Fetcher Fetcher
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher) *Collector {
	return &Collector{Fetcher: fetcher}
}

// Collect fetches the trailing `days` window for ticker and computes all
// indicators. Returns (nil, nil) when the upstream source has no bars for
// the window; an error indicates a fetch or computation failure.
func (c *Collector) Collect(ticker string, days int) (*model.PriceSeries, error) {
	bars, err := c.Fetcher.FetchDailyBars(ticker, days)
	if err != nil {
		return nil, fmt.Errorf("fetch daily bars: %w", err)
	}
	if len(bars) == 0 {
		return nil, nil
	}

	enriched, err := calculator.Enrich(bars)
	if err != nil {
		return nil, fmt.Errorf("compute indicators: %w", err)
	}

	return &model.PriceSeries{
		Ticker:    ticker,
		Bars:      enriched,
		FetchedAt: time.Now(),
	}, nil
}

// Fundamentals looks up the ticker's valuation ratios for the most recent
// market date with data, taken from the series' latest bar.
func (c *Collector) Fundamentals(ticker string, latestDate time.Time) (*model.FundamentalSnapshot, error) {
	all, err := c.Fetcher.FetchFundamentals(latestDate)
	if err != nil {
		return nil, fmt.Errorf("fetch fundamentals: %w", err)
	}
	snap, ok := all[ticker]
	if !ok {
		return nil, fmt.Errorf("no fundamental data for %s on %s", ticker, latestDate.Format("2006-01-02"))
	}
	return &snap, nil
}
