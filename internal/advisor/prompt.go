package advisor

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jungbyungkil/aistockcomment/internal/model"
)

// promptBar is the wire shape of one serialized history row. Indicator
// fields render as JSON null while inside their warm-up window.
type promptBar struct {
	Date       string   `json:"date"`
	Open       float64  `json:"open"`
	High       float64  `json:"high"`
	Low        float64  `json:"low"`
	Close      float64  `json:"close"`
	Volume     float64  `json:"volume"`
	RSI        *float64 `json:"rsi"`
	MACD       *float64 `json:"macd"`
	MACDSignal *float64 `json:"macd_signal"`
	BBHigh     *float64 `json:"bb_high"`
	BBMid      *float64 `json:"bb_mid"`
	BBLow      *float64 `json:"bb_low"`
}

// serializeSeries renders the indicator-augmented price history as an
// indented JSON records array with YYYY-MM-DD dates.
func serializeSeries(bars []model.IndicatorBar) (string, error) {
	rows := make([]promptBar, len(bars))
	for i, b := range bars {
		rows[i] = promptBar{
			Date:       b.Date.Format("2006-01-02"),
			Open:       b.Open,
			High:       b.High,
			Low:        b.Low,
			Close:      b.Close,
			Volume:     b.Volume,
			RSI:        b.RSI,
			MACD:       b.MACD,
			MACDSignal: b.MACDSignal,
			BBHigh:     b.BBUpper,
			BBMid:      b.BBMid,
			BBLow:      b.BBLower,
		}
	}
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal price history: %w", err)
	}
	return string(data), nil
}

// buildSystemPrompt assembles the analyst instruction, including the
// mandatory rule protecting the client's principal.
func buildSystemPrompt(entry model.WatchlistEntry) string {
	var b strings.Builder

	b.WriteString("You are a top-tier stock market analyst. A client holding shares is asking when to sell.\n\n")
	b.WriteString(fmt.Sprintf("Stock: %s (%s)\n", entry.Name, entry.Ticker))
	b.WriteString(fmt.Sprintf("Client's average buy price: %.0f\n", entry.AvgBuyPrice))
	b.WriteString(fmt.Sprintf("Client's goal: %s\n\n", entry.Goal))

	b.WriteString("Analyze all provided data:\n")
	b.WriteString("1. Recent news headlines: gauge current market sentiment and potential events.\n")
	b.WriteString("2. Fundamental data (PBR, PER, ...): understand the stock's valuation.\n")
	b.WriteString("3. Technical data (OHLCV + indicators): analyze price trend and momentum.\n\n")
	b.WriteString("Combine all three aspects (news sentiment, fundamental valuation, technical analysis) into one holistic, reasoned recommendation.\n\n")

	b.WriteString("[MANDATORY RULE]\n")
	b.WriteString("If the client's goal is to sell at or above their average buy price, and the current price is below that average buy price, you must NEVER recommend 'SELL NOW'.\n")
	b.WriteString("In that case recommend 'HOLD' even if the technicals point down, and describe a loss-minimizing strategy (for example a stop-loss line on further decline) or the conditions to wait for a rebound.\n")
	b.WriteString("The client's peace of mind and principal recovery take priority over technical signals.\n\n")

	b.WriteString("Respond with a JSON object of exactly this structure:\n")
	b.WriteString(`{
  "decision": "SELL NOW" | "HOLD",
  "confidence": "High" | "Medium" | "Low",
  "analysis_summary": "Holistic summary combining news, fundamentals and technicals.",
  "action_plan": "Concrete plan for the client. For 'SELL NOW' name a price; for 'HOLD' name the conditions to watch."
}`)

	return b.String()
}

// buildUserPrompt assembles the auxiliary data block plus the serialized
// price history.
func buildUserPrompt(entry model.WatchlistEntry, history string, headlines []string, fund *model.FundamentalSnapshot) (string, error) {
	aux := map[string]any{
		"recent_news_headlines":    headlines,
		"fundamental_data":         fund,
		"client_average_buy_price": entry.AvgBuyPrice,
	}
	auxJSON, err := json.MarshalIndent(aux, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal additional info: %w", err)
	}

	var b strings.Builder
	b.WriteString("Here is the data for analysis.\n\n")
	b.WriteString("### Additional Information\n")
	b.Write(auxJSON)
	b.WriteString("\n\n### Technical Data\n")
	b.WriteString(history)
	return b.String(), nil
}
