package advisor

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jungbyungkil/aistockcomment/internal/model"
)

// fakeClient returns a canned response and captures the prompts it was given.
type fakeClient struct {
	response string
	err      error
	system   string
	user     string
}

func (f *fakeClient) CompleteJSON(_ context.Context, system, user string, _ float32) (string, error) {
	f.system = system
	f.user = user
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func seriesWithClose(closePrice float64) *model.PriceSeries {
	bars := make([]model.IndicatorBar, 30)
	base := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	for i := range bars {
		bars[i] = model.IndicatorBar{
			PriceBar: model.PriceBar{
				Date:   base.AddDate(0, 0, i),
				Open:   closePrice,
				High:   closePrice,
				Low:    closePrice,
				Close:  closePrice,
				Volume: 1000,
			},
		}
	}
	rsi := 55.0
	bars[len(bars)-1].RSI = &rsi
	return &model.PriceSeries{Ticker: "042660", Bars: bars, FetchedAt: time.Now()}
}

const sellResponse = `{"decision":"SELL NOW","confidence":"High","analysis_summary":"Strong downtrend ahead.","action_plan":"Sell at market open."}`
const holdResponse = `{"decision":"HOLD","confidence":"Medium","analysis_summary":"Wait for rebound.","action_plan":"Watch the 20-day band."}`

func protectiveEntry() model.WatchlistEntry {
	return model.WatchlistEntry{
		Name:        "X",
		Ticker:      "042660",
		AvgBuyPrice: 100,
		Goal:        "never sell below cost",
	}
}

func TestAdvise_PromptEncodesPolicyRule(t *testing.T) {
	client := &fakeClient{response: holdResponse}
	adv := New(client)

	entry := protectiveEntry()
	if _, err := adv.Advise(context.Background(), entry, seriesWithClose(90), []string{"headline one"}, nil); err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"MANDATORY RULE",
		"NEVER recommend 'SELL NOW'",
		entry.Name,
		entry.Ticker,
		entry.Goal,
	} {
		if !strings.Contains(client.system, want) {
			t.Errorf("system prompt missing %q", want)
		}
	}
	if !strings.Contains(client.user, "headline one") {
		t.Error("user prompt missing headlines")
	}
	if !strings.Contains(client.user, "2024-03-04") {
		t.Error("user prompt missing normalized YYYY-MM-DD dates")
	}
	// Warm-up indicators serialize as JSON null.
	if !strings.Contains(client.user, `"macd": null`) {
		t.Error("user prompt missing null warm-up indicator values")
	}
}

func TestAdvise_GuardForcesHoldBelowCost(t *testing.T) {
	adv := New(&fakeClient{response: sellResponse})

	// target=100, goal protects cost basis, current price=90
	decision, err := adv.Advise(context.Background(), protectiveEntry(), seriesWithClose(90), nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if decision.Decision != model.DecisionHold {
		t.Fatalf("expected HOLD override, got %q", decision.Decision)
	}
	if !strings.Contains(decision.ActionPlan, "Overridden to HOLD") {
		t.Errorf("expected override note in action plan, got %q", decision.ActionPlan)
	}
}

func TestAdvise_SellAllowedWithoutProtectiveGoal(t *testing.T) {
	adv := New(&fakeClient{response: sellResponse})

	entry := model.WatchlistEntry{
		Name:        "Y",
		Ticker:      "360750",
		AvgBuyPrice: 0,
		Goal:        "maximize cash now",
	}
	decision, err := adv.Advise(context.Background(), entry, seriesWithClose(500), nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if decision.Decision != model.DecisionSell {
		t.Fatalf("expected SELL NOW to pass through, got %q", decision.Decision)
	}
}

func TestAdvise_SellAllowedAtOrAboveCost(t *testing.T) {
	adv := New(&fakeClient{response: sellResponse})

	decision, err := adv.Advise(context.Background(), protectiveEntry(), seriesWithClose(110), nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if decision.Decision != model.DecisionSell {
		t.Fatalf("expected SELL NOW at price above cost, got %q", decision.Decision)
	}
}

func TestAdvise_Failures(t *testing.T) {
	tests := []struct {
		name   string
		client *fakeClient
	}{
		{"client error", &fakeClient{err: errors.New("api down")}},
		{"not json", &fakeClient{response: "the market looks bad"}},
		{"unknown decision", &fakeClient{response: `{"decision":"BUY","confidence":"High","analysis_summary":"s","action_plan":"p"}`}},
		{"unknown confidence", &fakeClient{response: `{"decision":"HOLD","confidence":"Certain","analysis_summary":"s","action_plan":"p"}`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adv := New(tt.client)
			if _, err := adv.Advise(context.Background(), protectiveEntry(), seriesWithClose(90), nil, nil); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestGoalProtectsPrincipal(t *testing.T) {
	tests := []struct {
		goal string
		want bool
	}{
		{"never sell below cost", true},
		{"I want out with no loss", true},
		{"sell at break even or better", true},
		{"평균 매수 단가 이상에서 매도하고 싶습니다", true},
		{"maximize cash now", false},
		{"take profit near the market high", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := GoalProtectsPrincipal(tt.goal); got != tt.want {
			t.Errorf("GoalProtectsPrincipal(%q) = %v, want %v", tt.goal, got, tt.want)
		}
	}
}
