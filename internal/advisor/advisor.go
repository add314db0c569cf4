// Package advisor assembles the collected market data into a completion
// prompt and parses the model's sell/hold decision.
package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/jungbyungkil/aistockcomment/internal/model"
)

// Temperature balances determinism and variety in the model's output.
const Temperature = 0.5

// Advisor requests sell/hold decisions from a completion client.
type Advisor struct {
	Client CompletionClient
}

// New creates an Advisor backed by the given completion client.
func New(client CompletionClient) *Advisor {
	return &Advisor{Client: client}
}

// Advise builds the prompt from the entry's goal plus all collected data
// and returns the parsed decision. Headlines and fund may be empty/nil.
// Returns an error on any call or parse failure; the caller logs it and
// skips persistence for that symbol.
func (a *Advisor) Advise(ctx context.Context, entry model.WatchlistEntry, series *model.PriceSeries, headlines []string, fund *model.FundamentalSnapshot) (*model.Decision, error) {
	history, err := serializeSeries(series.Bars)
	if err != nil {
		return nil, err
	}

	system := buildSystemPrompt(entry)
	user, err := buildUserPrompt(entry, history, headlines, fund)
	if err != nil {
		return nil, err
	}

	raw, err := a.Client.CompleteJSON(ctx, system, user, Temperature)
	if err != nil {
		return nil, err
	}

	var decision model.Decision
	if err := json.Unmarshal([]byte(raw), &decision); err != nil {
		return nil, fmt.Errorf("parse decision: %w", err)
	}
	if !model.ValidDecision(decision.Decision) {
		return nil, fmt.Errorf("parse decision: unknown decision %q", decision.Decision)
	}
	if !model.ValidConfidence(decision.Confidence) {
		return nil, fmt.Errorf("parse decision: unknown confidence %q", decision.Confidence)
	}

	applySellGuard(entry, series.CurrentPrice(), &decision)
	return &decision, nil
}

// applySellGuard enforces the prompt's mandatory rule deterministically:
// when the goal protects the client's cost basis and the current price is
// below the average buy price, a SELL NOW from the model becomes HOLD.
func applySellGuard(entry model.WatchlistEntry, currentPrice float64, d *model.Decision) {
	if d.Decision != model.DecisionSell {
		return
	}
	if entry.AvgBuyPrice <= 0 || currentPrice >= entry.AvgBuyPrice {
		return
	}
	if !GoalProtectsPrincipal(entry.Goal) {
		return
	}

	log.Printf("[WARN] [%s] SELL NOW below avg buy price (%.2f < %.2f) with cost-protection goal, overriding to HOLD",
		entry.Name, currentPrice, entry.AvgBuyPrice)
	d.Decision = model.DecisionHold
	d.ActionPlan = fmt.Sprintf(
		"Overridden to HOLD: current price %.2f is below the average buy price %.2f and the goal rules out selling at a loss. Set a stop-loss line for further decline or wait for a rebound toward the buy price. Original plan: %s",
		currentPrice, entry.AvgBuyPrice, d.ActionPlan)
}

// principalKeywords are goal-text fragments that signal a
// do-not-sell-below-cost constraint, in English and Korean.
var principalKeywords = []string{
	"below cost",
	"no loss",
	"without a loss",
	"break even",
	"above my average",
	"above the average buy",
	"매수 단가",
	"손해",
	"손실",
	"원금",
}

// GoalProtectsPrincipal reports whether the goal text expresses a
// do-not-sell-below-cost constraint.
func GoalProtectsPrincipal(goal string) bool {
	g := strings.ToLower(goal)
	for _, kw := range principalKeywords {
		if strings.Contains(g, kw) {
			return true
		}
	}
	return false
}
