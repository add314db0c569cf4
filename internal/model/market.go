package model

import "time"

// PriceBar represents one trading day's OHLCV record.
type PriceBar struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// PriceSeries holds the indicator-augmented price history for one symbol.
type PriceSeries struct {
	Ticker    string
	Bars      []IndicatorBar
	FetchedAt time.Time
}

// CurrentPrice returns the most recent closing price, or 0 for an empty series.
func (s *PriceSeries) CurrentPrice() float64 {
	if len(s.Bars) == 0 {
		return 0
	}
	return s.Bars[len(s.Bars)-1].Close
}

// LatestDate returns the date of the most recent bar, or the zero time for an empty series.
func (s *PriceSeries) LatestDate() time.Time {
	if len(s.Bars) == 0 {
		return time.Time{}
	}
	return s.Bars[len(s.Bars)-1].Date
}
