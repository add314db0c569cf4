// Package dashboard serves the read-only advice dashboard over the same
// SQLite store the advisor writes to.
package dashboard

import (
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"net/http"

	"github.com/jungbyungkil/aistockcomment/internal/model"
	"github.com/jungbyungkil/aistockcomment/internal/recorder"
)

// Server serves the advice history read path. It never writes.
type Server struct {
	rec  recorder.Recorder
	tmpl *template.Template
}

// NewServer creates a dashboard server over the given recorder.
func NewServer(rec recorder.Recorder) (*Server, error) {
	tmpl, err := template.New("dashboard").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}
	return &Server{rec: rec, tmpl: tmpl}, nil
}

// Handler returns the HTTP handler with all routes registered.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /", s.handleIndex)
	mux.HandleFunc("GET /api/advice", s.handleAdvice)
	mux.HandleFunc("GET /api/stocks", s.handleStocks)
	mux.HandleFunc("GET /api/summary", s.handleSummary)
	return mux
}

// ListenAndServe blocks serving the dashboard on addr.
func (s *Server) ListenAndServe(addr string) error {
	log.Printf("[INFO] dashboard listening on %s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// summary is the aggregate view over one stock's (or all stocks') history.
type summary struct {
	Stock          string               `json:"stock"`
	Total          int                  `json:"total"`
	DecisionCounts map[string]int       `json:"decision_counts"`
	Latest         *model.AdviceRecord  `json:"latest"`
	PricePoints    []pricePoint         `json:"price_points"`
	History        []model.AdviceRecord `json:"-"`
}

// pricePoint is one (timestamp, price, decision) sample for the trend chart.
type pricePoint struct {
	Timestamp string  `json:"timestamp"`
	Price     float64 `json:"price"`
	Decision  string  `json:"decision"`
}

func (s *Server) buildSummary(stock string) (*summary, error) {
	records, err := s.rec.ListAdvice(stock, 0)
	if err != nil {
		return nil, err
	}

	sum := &summary{
		Stock:          stock,
		Total:          len(records),
		DecisionCounts: make(map[string]int),
		History:        records,
	}
	for _, r := range records {
		sum.DecisionCounts[r.Decision]++
		sum.PricePoints = append(sum.PricePoints, pricePoint{
			Timestamp: r.Timestamp,
			Price:     r.CurrentPrice,
			Decision:  r.Decision,
		})
	}
	if len(records) > 0 {
		sum.Latest = &records[0]
	}
	return sum, nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	stock := r.URL.Query().Get("stock")

	sum, err := s.buildSummary(stock)
	if err != nil {
		log.Printf("[ERROR] dashboard summary: %v", err)
		http.Error(w, "failed to load advice history", http.StatusInternalServerError)
		return
	}
	stocks, err := s.rec.StockNames()
	if err != nil {
		log.Printf("[ERROR] dashboard stock names: %v", err)
		http.Error(w, "failed to load stock names", http.StatusInternalServerError)
		return
	}

	data := struct {
		Selected string
		Stocks   []string
		Summary  *summary
	}{Selected: stock, Stocks: stocks, Summary: sum}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.Execute(w, data); err != nil {
		log.Printf("[ERROR] dashboard render: %v", err)
	}
}

func (s *Server) handleAdvice(w http.ResponseWriter, r *http.Request) {
	records, err := s.rec.ListAdvice(r.URL.Query().Get("stock"), 0)
	if err != nil {
		log.Printf("[ERROR] dashboard advice: %v", err)
		http.Error(w, "query failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, records)
}

func (s *Server) handleStocks(w http.ResponseWriter, _ *http.Request) {
	names, err := s.rec.StockNames()
	if err != nil {
		log.Printf("[ERROR] dashboard stocks: %v", err)
		http.Error(w, "query failed", http.StatusInternalServerError)
		return
	}
	if names == nil {
		names = []string{}
	}
	writeJSON(w, names)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	sum, err := s.buildSummary(r.URL.Query().Get("stock"))
	if err != nil {
		log.Printf("[ERROR] dashboard summary: %v", err)
		http.Error(w, "query failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, sum)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[ERROR] dashboard encode: %v", err)
	}
}
