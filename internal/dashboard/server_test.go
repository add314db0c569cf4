package dashboard

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jungbyungkil/aistockcomment/internal/model"
)

type fakeRecorder struct {
	records []model.AdviceRecord
}

func (f *fakeRecorder) RecordAdvice(_ *model.AdviceRecord) error { return nil }

func (f *fakeRecorder) ListAdvice(stockName string, limit int) ([]model.AdviceRecord, error) {
	var out []model.AdviceRecord
	for _, r := range f.records {
		if stockName == "" || r.StockName == stockName {
			out = append(out, r)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeRecorder) StockNames() ([]string, error) {
	seen := map[string]bool{}
	var names []string
	for _, r := range f.records {
		if !seen[r.StockName] {
			seen[r.StockName] = true
			names = append(names, r.StockName)
		}
	}
	return names, nil
}

func (f *fakeRecorder) Close() error { return nil }

func testServer(t *testing.T) *Server {
	t.Helper()
	rec := &fakeRecorder{records: []model.AdviceRecord{
		{ID: 2, Timestamp: "2024-05-02 08:50:00", StockName: "A", Ticker: "1", Decision: model.DecisionSell, Confidence: "High", CurrentPrice: 110},
		{ID: 1, Timestamp: "2024-05-01 08:50:00", StockName: "A", Ticker: "1", Decision: model.DecisionHold, Confidence: "Low", CurrentPrice: 100},
		{ID: 3, Timestamp: "2024-05-02 15:00:00", StockName: "B", Ticker: "2", Decision: model.DecisionHold, Confidence: "Medium", CurrentPrice: 50},
	}}
	srv, err := NewServer(rec)
	if err != nil {
		t.Fatal(err)
	}
	return srv
}

func TestHandleSummary_CountsAndLatest(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest("GET", "/api/summary?stock=A", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	if w.Code != 200 {
		t.Fatalf("status %d", w.Code)
	}
	var sum summary
	if err := json.Unmarshal(w.Body.Bytes(), &sum); err != nil {
		t.Fatal(err)
	}
	if sum.Total != 2 {
		t.Errorf("expected 2 records for A, got %d", sum.Total)
	}
	if sum.DecisionCounts[model.DecisionSell] != 1 || sum.DecisionCounts[model.DecisionHold] != 1 {
		t.Errorf("unexpected decision counts: %v", sum.DecisionCounts)
	}
	if sum.Latest == nil || sum.Latest.ID != 2 {
		t.Errorf("expected latest record id 2, got %+v", sum.Latest)
	}
	if len(sum.PricePoints) != 2 {
		t.Errorf("expected 2 price points, got %d", len(sum.PricePoints))
	}
}

func TestHandleStocks(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest("GET", "/api/stocks", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	var names []string
	if err := json.Unmarshal(w.Body.Bytes(), &names); err != nil {
		t.Fatal(err)
	}
	if len(names) != 2 {
		t.Errorf("expected 2 stock names, got %v", names)
	}
}

func TestHandleIndex_RendersLatestAdvice(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest("GET", "/?stock=A", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	if w.Code != 200 {
		t.Fatalf("status %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, model.DecisionSell) {
		t.Error("expected latest decision in page")
	}
	if !strings.Contains(body, "2024-05-02 08:50:00") {
		t.Error("expected latest timestamp in page")
	}
}

func TestHandleAdvice_FilterPassthrough(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest("GET", "/api/advice?stock=B", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	var records []model.AdviceRecord
	if err := json.Unmarshal(w.Body.Bytes(), &records); err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || records[0].StockName != "B" {
		t.Errorf("expected only B's records, got %+v", records)
	}
}
