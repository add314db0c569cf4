package calculator

import "math"

// BollingerSeries computes the Bollinger Bands per bar: a rolling simple
// moving average envelope of ±k standard deviations over `period` bars.
// Indices before the window fills are nil.
func BollingerSeries(closes []float64, period int, k float64) (upper, mid, lower []*float64) {
	upper = make([]*float64, len(closes))
	mid = make([]*float64, len(closes))
	lower = make([]*float64, len(closes))
	if period <= 0 || len(closes) < period {
		return upper, mid, lower
	}

	for i := period - 1; i < len(closes); i++ {
		window := closes[i-period+1 : i+1]

		sum := 0.0
		for _, v := range window {
			sum += v
		}
		mean := sum / float64(period)

		variance := 0.0
		for _, v := range window {
			d := v - mean
			variance += d * d
		}
		sd := math.Sqrt(variance / float64(period))

		mid[i] = ptr(mean)
		upper[i] = ptr(mean + k*sd)
		lower[i] = ptr(mean - k*sd)
	}
	return upper, mid, lower
}
