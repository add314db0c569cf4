package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/jungbyungkil/aistockcomment/internal/model"
)

// KRXFetcher implements Fetcher against a KRX market-data REST gateway.
type KRXFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewKRXFetcher creates a new fetcher with optional proxy support.
func NewKRXFetcher(baseURL, apiKey, proxyURL string) *KRXFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &KRXFetcher{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *KRXFetcher) Name() string { return "krx" }

// krxBar is the expected JSON shape of one daily OHLCV row.
type krxBar struct {
	Date   string  `json:"date"` // YYYYMMDD
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

// krxFundamental is the expected JSON shape of one market-wide ratio row.
type krxFundamental struct {
	Ticker string   `json:"ticker"`
	BPS    *float64 `json:"bps"`
	PER    *float64 `json:"per"`
	PBR    *float64 `json:"pbr"`
	EPS    *float64 `json:"eps"`
	DIV    *float64 `json:"div"`
	DPS    *float64 `json:"dps"`
}

func (f *KRXFetcher) FetchDailyBars(ticker string, days int) ([]model.PriceBar, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -days)
	endpoint := fmt.Sprintf("%s/api/v1/ohlcv/daily?ticker=%s&start=%s&end=%s",
		f.BaseURL, url.QueryEscape(ticker), start.Format("20060102"), end.Format("20060102"))

	body, err := f.get(endpoint)
	if err != nil {
		return nil, err
	}

	var rows []krxBar
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("krx decode bars: %w", err)
	}

	bars := make([]model.PriceBar, 0, len(rows))
	for _, r := range rows {
		d, err := time.Parse("20060102", r.Date)
		if err != nil {
			continue // skip malformed rows
		}
		bars = append(bars, model.PriceBar{
			Date:   d,
			Open:   r.Open,
			High:   r.High,
			Low:    r.Low,
			Close:  r.Close,
			Volume: r.Volume,
		})
	}
	sort.Slice(bars, func(i, j int) bool { return bars[i].Date.Before(bars[j].Date) })
	return bars, nil
}

func (f *KRXFetcher) FetchFundamentals(date time.Time) (map[string]model.FundamentalSnapshot, error) {
	endpoint := fmt.Sprintf("%s/api/v1/fundamental?date=%s&market=ALL",
		f.BaseURL, date.Format("20060102"))

	body, err := f.get(endpoint)
	if err != nil {
		return nil, err
	}

	var rows []krxFundamental
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("krx decode fundamentals: %w", err)
	}

	out := make(map[string]model.FundamentalSnapshot, len(rows))
	for _, r := range rows {
		out[r.Ticker] = model.FundamentalSnapshot{
			BPS: r.BPS, PER: r.PER, PBR: r.PBR,
			EPS: r.EPS, DIV: r.DIV, DPS: r.DPS,
		}
	}
	return out, nil
}

func (f *KRXFetcher) get(endpoint string) ([]byte, error) {
	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return nil, err
	}
	if f.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+f.APIKey)
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("krx fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("krx read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("krx: status %d, body: %s", resp.StatusCode, string(body))
	}
	return body, nil
}
