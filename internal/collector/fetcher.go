package collector

import (
	"time"

	"github.com/jungbyungkil/aistockcomment/internal/model"
)

// Fetcher defines the interface for fetching market data.
type Fetcher interface {
	// FetchDailyBars returns up to `days` daily bars for the ticker,
	// ordered ascending by date.
	FetchDailyBars(ticker string, days int) ([]model.PriceBar, error)
	// FetchFundamentals returns valuation ratios for the whole market on
	// the given trading date, keyed by ticker.
	FetchFundamentals(date time.Time) (map[string]model.FundamentalSnapshot, error)
	Name() string
}

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price        float64
	DailyData    []model.PriceBar
	Fundamentals map[string]model.FundamentalSnapshot
	BarsErr      error
	FundErr      error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(_ string, days int) ([]model.PriceBar, error) {
	if m.BarsErr != nil {
		return nil, m.BarsErr
	}
	if m.DailyData != nil {
		return m.DailyData, nil
	}
	return GenerateMockBars(m.Price, days), nil
}

func (m *MockFetcher) FetchFundamentals(_ time.Time) (map[string]model.FundamentalSnapshot, error) {
	if m.FundErr != nil {
		return nil, m.FundErr
	}
	return m.Fundamentals, nil
}

// GenerateMockBars builds a mildly trending synthetic daily series around basePrice.
func GenerateMockBars(basePrice float64, count int) []model.PriceBar {
	bars := make([]model.PriceBar, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.PriceBar{
			Date:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
