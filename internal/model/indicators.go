package model

// IndicatorBar is a price bar augmented with computed technical indicators.
// Indicator fields are nil while the indicator is still inside its warm-up
// window; all present values are rounded to 2 decimal places.
type IndicatorBar struct {
	PriceBar
	RSI        *float64
	MACD       *float64
	MACDSignal *float64
	BBUpper    *float64
	BBMid      *float64
	BBLower    *float64
}

// FundamentalSnapshot holds the latest valuation ratios for a symbol.
// Any field may be nil when the upstream source has no data for that date.
type FundamentalSnapshot struct {
	BPS *float64 `json:"BPS"`
	PER *float64 `json:"PER"`
	PBR *float64 `json:"PBR"`
	EPS *float64 `json:"EPS"`
	DIV *float64 `json:"DIV"` // dividend yield
	DPS *float64 `json:"DPS"` // dividend per share
}
