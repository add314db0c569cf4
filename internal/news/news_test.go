package news

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

const listingPage = `<html><body><table>
<tr><td class="title"><a href="/1">  First headline  </a></td></tr>
<tr><td class="title"><a href="/2">Second headline</a></td></tr>
<tr><td class="title"><a href="/3"></a></td></tr>
<tr><td class="title"><a href="/4">Fourth headline</a></td></tr>
<tr><td class="title"><a href="/5">Fifth headline</a></td></tr>
<tr><td class="title"><a href="/6">Sixth headline</a></td></tr>
</table></body></html>`

func newsTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("code") == "" {
			http.Error(w, "missing code", http.StatusBadRequest)
			return
		}
		fmt.Fprint(w, listingPage)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestHeadlines_CapsAtCount(t *testing.T) {
	srv := newsTestServer(t)
	s := NewScraper(srv.URL, "")

	got, err := s.Headlines("042660", 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 headlines, got %d: %v", len(got), got)
	}
	if got[0] != "First headline" {
		t.Errorf("expected trimmed headline text, got %q", got[0])
	}
	// The empty anchor is skipped, so the third result is the fourth row.
	if got[2] != "Fourth headline" {
		t.Errorf("expected empty titles skipped, got %q", got[2])
	}
}

func TestHeadlines_FewerThanCount(t *testing.T) {
	srv := newsTestServer(t)
	s := NewScraper(srv.URL, "")

	got, err := s.Headlines("042660", 20)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 5 {
		t.Fatalf("expected all 5 non-empty headlines, got %d", len(got))
	}
}

func TestHeadlines_NonPositiveCount(t *testing.T) {
	s := NewScraper("http://127.0.0.1:0", "") // never dialed
	for _, count := range []int{0, -5} {
		got, err := s.Headlines("042660", count)
		if err != nil {
			t.Errorf("count %d: unexpected error %v", count, err)
		}
		if len(got) != 0 {
			t.Errorf("count %d: expected no headlines, got %v", count, got)
		}
	}
}

func TestHeadlines_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "blocked", http.StatusForbidden)
	}))
	defer srv.Close()
	s := NewScraper(srv.URL, "")

	if _, err := s.Headlines("042660", 5); err == nil {
		t.Fatal("expected error on non-200 response")
	}
}
