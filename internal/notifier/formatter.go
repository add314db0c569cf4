package notifier

import (
	"fmt"
	"strings"

	"github.com/jungbyungkil/aistockcomment/internal/model"
)

// FormatAdviceReport formats one advice record into a human-readable report.
func FormatAdviceReport(rec *model.AdviceRecord) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📈 <b>AI Sell Advice: %s (%s)</b>\n\n", rec.StockName, rec.Ticker))

	icon := "⏳"
	if rec.Decision == model.DecisionSell {
		icon = "💰"
	}
	b.WriteString(fmt.Sprintf("Decision: %s %s\n", icon, rec.Decision))
	b.WriteString(fmt.Sprintf("Confidence: %s\n", rec.Confidence))
	b.WriteString(fmt.Sprintf("Price at analysis: %.2f\n\n", rec.CurrentPrice))

	b.WriteString("<b>Analysis</b>\n")
	b.WriteString(rec.AnalysisSummary)
	b.WriteString("\n\n<b>Action plan</b>\n")
	b.WriteString(rec.ActionPlan)
	b.WriteString("\n")

	return b.String()
}
