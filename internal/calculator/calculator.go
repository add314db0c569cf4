package calculator

import (
	"errors"
	"math"

	"github.com/jungbyungkil/aistockcomment/internal/model"
)

// ErrEmptySeries is returned when indicator computation is attempted on a
// series with no bars. The caller treats this as fatal for that symbol's pass.
var ErrEmptySeries = errors.New("price series is empty")

// Enrich attaches RSI(14), MACD(12,26,9) and Bollinger(20, 2σ) values to
// every bar of the input series. Bars inside an indicator's warm-up window
// carry nil for that indicator. All values are rounded to 2 decimal places.
func Enrich(bars []model.PriceBar) ([]model.IndicatorBar, error) {
	if len(bars) == 0 {
		return nil, ErrEmptySeries
	}

	closes := extractCloses(bars)
	rsi := RSISeries(closes, 14)
	macd, signal := MACDSeries(closes, 12, 26, 9)
	upper, mid, lower := BollingerSeries(closes, 20, 2.0)

	out := make([]model.IndicatorBar, len(bars))
	for i, b := range bars {
		out[i] = model.IndicatorBar{
			PriceBar:   round2Bar(b),
			RSI:        round2Ptr(rsi[i]),
			MACD:       round2Ptr(macd[i]),
			MACDSignal: round2Ptr(signal[i]),
			BBUpper:    round2Ptr(upper[i]),
			BBMid:      round2Ptr(mid[i]),
			BBLower:    round2Ptr(lower[i]),
		}
	}
	return out, nil
}

func extractCloses(bars []model.PriceBar) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes
}

// Round2 rounds v to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round2Ptr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	r := Round2(*v)
	return &r
}

func round2Bar(b model.PriceBar) model.PriceBar {
	b.Open = Round2(b.Open)
	b.High = Round2(b.High)
	b.Low = Round2(b.Low)
	b.Close = Round2(b.Close)
	b.Volume = Round2(b.Volume)
	return b
}
