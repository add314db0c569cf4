package calculator

// MACDSeries computes the MACD line (fast EMA − slow EMA) and its signal
// line (EMA of the MACD line) per bar. The line appears once the slow EMA
// has warmed up, the signal once `signalPeriod` MACD values exist.
func MACDSeries(closes []float64, fast, slow, signalPeriod int) (line, signal []*float64) {
	line = make([]*float64, len(closes))
	signal = make([]*float64, len(closes))
	if fast <= 0 || slow <= fast || signalPeriod <= 0 || len(closes) < slow {
		return line, signal
	}

	fastEMA := emaSeries(closes, fast)
	slowEMA := emaSeries(closes, slow)

	macdVals := make([]float64, 0, len(closes))
	macdStart := -1
	for i := range closes {
		if fastEMA[i] == nil || slowEMA[i] == nil {
			continue
		}
		if macdStart < 0 {
			macdStart = i
		}
		v := *fastEMA[i] - *slowEMA[i]
		macdVals = append(macdVals, v)
		line[i] = &v
	}

	sig := emaSeries(macdVals, signalPeriod)
	for j, s := range sig {
		if s != nil {
			signal[macdStart+j] = s
		}
	}
	return line, signal
}

// emaSeries computes the exponential moving average with smoothing
// 2/(period+1), seeded with the simple average of the first `period`
// values. Indices before the seed are nil.
func emaSeries(values []float64, period int) []*float64 {
	out := make([]*float64, len(values))
	if period <= 0 || len(values) < period {
		return out
	}

	sum := 0.0
	for i := 0; i < period; i++ {
		sum += values[i]
	}
	ema := sum / float64(period)
	out[period-1] = ptr(ema)

	k := 2.0 / float64(period+1)
	for i := period; i < len(values); i++ {
		ema = values[i]*k + ema*(1-k)
		out[i] = ptr(ema)
	}
	return out
}

func ptr(v float64) *float64 { return &v }
