// Package news scrapes recent headline text for a symbol from the Naver
// finance news listing page.
package news

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Scraper fetches news headlines for a ticker.
type Scraper struct {
	BaseURL string
	Client  *http.Client
}

// NewScraper creates a scraper with optional proxy support. An empty
// baseURL falls back to the public Naver finance endpoint.
func NewScraper(baseURL, proxyURL string) *Scraper {
	if baseURL == "" {
		baseURL = "https://finance.naver.com"
	}
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &Scraper{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

// Headlines returns up to `count` recent headline strings for the ticker,
// fewer if the page lists fewer. Network or parse failures return an error;
// callers treat any failure as an empty, non-fatal result.
func (s *Scraper) Headlines(ticker string, count int) ([]string, error) {
	if count <= 0 {
		return nil, nil
	}
	pageURL := fmt.Sprintf("%s/item/news_news.naver?code=%s&page=1", s.BaseURL, url.QueryEscape(ticker))

	req, err := http.NewRequest("GET", pageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("news fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("news: status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("news parse: %w", err)
	}

	headlines := make([]string, 0, count)
	doc.Find(".title a").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.TrimSpace(sel.Text())
		if text != "" {
			headlines = append(headlines, text)
		}
		return len(headlines) < count
	})
	return headlines, nil
}
