package model

// Decision values returned by the completion API.
const (
	DecisionSell = "SELL NOW"
	DecisionHold = "HOLD"
)

// Confidence levels returned by the completion API.
const (
	ConfidenceHigh   = "High"
	ConfidenceMedium = "Medium"
	ConfidenceLow    = "Low"
)

// Decision is the structured sell/hold recommendation parsed from the
// completion API's JSON response.
type Decision struct {
	Decision        string `json:"decision"`
	Confidence      string `json:"confidence"`
	AnalysisSummary string `json:"analysis_summary"`
	ActionPlan      string `json:"action_plan"`
}

// ValidDecision reports whether d is one of the closed decision set.
func ValidDecision(d string) bool {
	return d == DecisionSell || d == DecisionHold
}

// ValidConfidence reports whether c is one of the closed confidence set.
func ValidConfidence(c string) bool {
	return c == ConfidenceHigh || c == ConfidenceMedium || c == ConfidenceLow
}

// AdviceRecord is one persisted row of the stock_advice table.
// Rows are append-only; they are never updated or deleted.
type AdviceRecord struct {
	ID              int64
	Timestamp       string
	StockName       string
	Ticker          string
	Decision        string
	Confidence      string
	AnalysisSummary string
	ActionPlan      string
	CurrentPrice    float64
	CreatedAt       string
}
