// Package batch drives one full evaluation pass over the watchlist.
package batch

import (
	"context"
	"log"
	"time"

	"github.com/jungbyungkil/aistockcomment/internal/model"
	"github.com/jungbyungkil/aistockcomment/internal/notifier"
	"github.com/jungbyungkil/aistockcomment/internal/recorder"
)

// MarketCollector provides price history with indicators and fundamentals.
type MarketCollector interface {
	Collect(ticker string, days int) (*model.PriceSeries, error)
	Fundamentals(ticker string, latestDate time.Time) (*model.FundamentalSnapshot, error)
}

// HeadlineFetcher provides recent news headlines for a ticker.
type HeadlineFetcher interface {
	Headlines(ticker string, count int) ([]string, error)
}

// AdviceRequester produces a sell/hold decision from the collected data.
type AdviceRequester interface {
	Advise(ctx context.Context, entry model.WatchlistEntry, series *model.PriceSeries, headlines []string, fund *model.FundamentalSnapshot) (*model.Decision, error)
}

// Runner executes the per-symbol pipeline for every watchlist entry.
// Failures are symbol-local: one entry's failure never affects another's.
type Runner struct {
	Collector  MarketCollector
	News       HeadlineFetcher
	Advisor    AdviceRequester
	Recorder   recorder.Recorder
	Notifier   notifier.Notifier
	Watchlist  []model.WatchlistEntry
	WindowDays int
	NewsCount  int
}

// Run performs one synchronous pass over the watchlist. It always runs to
// completion; no per-symbol error escapes.
func (r *Runner) Run(ctx context.Context) {
	log.Printf("[INFO] starting analysis pass for %d stocks", len(r.Watchlist))
	start := time.Now()

	for _, entry := range r.Watchlist {
		r.runEntry(ctx, entry)
	}

	log.Printf("[INFO] analysis pass completed in %v", time.Since(start).Round(time.Millisecond))
}

func (r *Runner) runEntry(ctx context.Context, entry model.WatchlistEntry) {
	log.Printf("[INFO] [%s] collecting technical data", entry.Name)
	series, err := r.Collector.Collect(entry.Ticker, r.WindowDays)
	if err != nil {
		log.Printf("[ERROR] [%s] collect: %v, skipping", entry.Name, err)
		return
	}
	if series == nil || len(series.Bars) == 0 {
		log.Printf("[WARN] [%s] no market data for window, skipping", entry.Name)
		return
	}
	currentPrice := series.CurrentPrice()
	log.Printf("[INFO] [%s] collected %d bars (last close: %.2f)", entry.Name, len(series.Bars), currentPrice)

	// News and fundamentals are independently optional.
	headlines, err := r.News.Headlines(entry.Ticker, r.NewsCount)
	if err != nil {
		log.Printf("[WARN] [%s] news fetch: %v, continuing without headlines", entry.Name, err)
		headlines = nil
	} else {
		log.Printf("[INFO] [%s] collected %d news headlines", entry.Name, len(headlines))
	}

	fund, err := r.Collector.Fundamentals(entry.Ticker, series.LatestDate())
	if err != nil {
		log.Printf("[WARN] [%s] fundamentals fetch: %v, continuing without fundamentals", entry.Name, err)
		fund = nil
	}

	log.Printf("[INFO] [%s] requesting sell strategy from AI", entry.Name)
	decision, err := r.Advisor.Advise(ctx, entry, series, headlines, fund)
	if err != nil {
		log.Printf("[ERROR] [%s] advice request: %v, skipping persistence", entry.Name, err)
		return
	}

	rec := &model.AdviceRecord{
		Timestamp:       time.Now().Format("2006-01-02 15:04:05"),
		StockName:       entry.Name,
		Ticker:          entry.Ticker,
		Decision:        decision.Decision,
		Confidence:      decision.Confidence,
		AnalysisSummary: decision.AnalysisSummary,
		ActionPlan:      decision.ActionPlan,
		CurrentPrice:    currentPrice,
	}

	if err := r.Recorder.RecordAdvice(rec); err != nil {
		log.Printf("[ERROR] [%s] record advice: %v", entry.Name, err)
	} else {
		log.Printf("[INFO] [%s] advice recorded", entry.Name)
	}

	report := notifier.FormatAdviceReport(rec)
	log.Printf("[INFO] advice report:\n%s", report)
	if err := r.Notifier.Notify(ctx, report); err != nil {
		log.Printf("[ERROR] [%s] send notification: %v", entry.Name, err)
	}
}
