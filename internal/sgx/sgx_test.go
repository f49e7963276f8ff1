package sgx

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/soban-al1/fetchkybdata/internal/config"
	"github.com/soban-al1/fetchkybdata/internal/types"
)

const listingHTML = `<!DOCTYPE html>
<html>
<body>
  <div class="views-row">
    <a href="/announcement/acme-results">Acme Corp posts results</a>
    <span class="views-date">05 Aug 2026</span>
  </div>
  <div class="views-row">
    <a href="https://cdn.sgx.example/report.pdf">Beta Ltd annual report</a>
    <time>04 Aug 2026</time>
  </div>
  <div class="views-row">
    <span>Row without a link</span>
  </div>
  <div class="views-row">
    <a>Anchor without href</a>
  </div>
  <div class="views-row">
    <a href="/announcement/no-date">Gamma disclosure</a>
  </div>
</body>
</html>`

func newTestFetcher(srv *httptest.Server) *Fetcher {
	return &Fetcher{
		ListingURL: srv.URL,
		BaseURL:    "https://www.sgx.com",
		UserAgent:  config.DownloadUserAgent,
		Client:     srv.Client(),
	}
}

func TestFetch_ParsesListingRows(t *testing.T) {
	var gotUserAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		fmt.Fprint(w, listingHTML)
	}))
	defer srv.Close()

	announcements, err := newTestFetcher(srv).Fetch()
	if err != nil {
		t.Fatal(err)
	}

	if gotUserAgent != config.DownloadUserAgent {
		t.Errorf("Expected User-Agent %q, got %q", config.DownloadUserAgent, gotUserAgent)
	}

	if len(announcements) != 3 {
		t.Fatalf("Expected 3 announcements, got %d", len(announcements))
	}

	first := announcements[0]
	if first.Source != types.SourceSGX {
		t.Errorf("Expected source SGX, got %s", first.Source)
	}
	if first.Title != "Acme Corp posts results" {
		t.Errorf("Unexpected title: %q", first.Title)
	}
	if first.Link != "https://www.sgx.com/announcement/acme-results" {
		t.Errorf("Relative href not resolved: %q", first.Link)
	}
	if first.Date != "05 Aug 2026" {
		t.Errorf("Expected date from .views-date, got %q", first.Date)
	}

	second := announcements[1]
	if second.Link != "https://cdn.sgx.example/report.pdf" {
		t.Errorf("Absolute href should be kept as-is, got %q", second.Link)
	}
	if second.Date != "04 Aug 2026" {
		t.Errorf("Expected date fallback from time element, got %q", second.Date)
	}

	third := announcements[2]
	if third.Date != "" {
		t.Errorf("Expected empty date when no date element, got %q", third.Date)
	}
}

func TestFetch_NonOKStatusIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	if _, err := newTestFetcher(srv).Fetch(); err == nil {
		t.Fatal("Expected error for non-OK status")
	}
}

func TestFetch_EmptyListing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html><body></body></html>")
	}))
	defer srv.Close()

	announcements, err := newTestFetcher(srv).Fetch()
	if err != nil {
		t.Fatal(err)
	}
	if len(announcements) != 0 {
		t.Errorf("Expected 0 announcements, got %d", len(announcements))
	}
}
