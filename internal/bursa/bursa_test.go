package bursa

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/soban-al1/fetchkybdata/internal/config"
	"github.com/soban-al1/fetchkybdata/internal/types"
)

const tableHTML = `<!DOCTYPE html>
<html>
<body>
  <table class="data-table">
    <tbody>
      <tr>
        <td>05 Aug 2026</td>
        <td><a href="/announcements/doc-1">Acme Bhd quarterly report</a></td>
      </tr>
      <tr>
        <td>Only one column</td>
      </tr>
      <tr>
        <td>04 Aug 2026</td>
        <td><span>No anchor here</span></td>
      </tr>
      <tr>
        <td>03 Aug 2026</td>
        <td><a href="https://docs.bursa.example/doc-2.pdf">Acme Bhd AGM notice</a></td>
      </tr>
    </tbody>
  </table>
</body>
</html>`

func newTestFetcher(srv *httptest.Server) *Fetcher {
	return &Fetcher{
		BaseURL:   srv.URL,
		UserAgent: config.BrowserUserAgent,
		Timeout:   10 * time.Second,
	}
}

func TestFetch_NoCodeSkipsSource(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	announcements, err := newTestFetcher(srv).Fetch("")
	if err != nil {
		t.Fatalf("Expected no error without a code, got %v", err)
	}
	if len(announcements) != 0 {
		t.Errorf("Expected 0 announcements, got %d", len(announcements))
	}
	if requests != 0 {
		t.Errorf("Expected no requests without a code, got %d", requests)
	}
}

func TestFetch_WarmUpSessionAndTableParsing(t *testing.T) {
	var listingCookie string
	var listingQuery string

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		if r.Header.Get("Referer") == "" || r.Header.Get("Accept") == "" {
			t.Errorf("Warm-up request missing browser headers")
		}
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "warmed-up"})
		fmt.Fprint(w, "<html></html>")
	})
	mux.HandleFunc(bursaListingPath, func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie("session"); err == nil {
			listingCookie = c.Value
		}
		listingQuery = r.URL.Query().Get("company")
		fmt.Fprint(w, tableHTML)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	announcements, err := newTestFetcher(srv).Fetch("5183")
	if err != nil {
		t.Fatal(err)
	}

	if listingCookie != "warmed-up" {
		t.Errorf("Expected listing request to carry the warm-up session cookie, got %q", listingCookie)
	}
	if listingQuery != "5183" {
		t.Errorf("Expected company code in listing query, got %q", listingQuery)
	}

	if len(announcements) != 2 {
		t.Fatalf("Expected 2 announcements, got %d", len(announcements))
	}

	first := announcements[0]
	if first.Source != types.SourceBursa {
		t.Errorf("Expected source Bursa, got %s", first.Source)
	}
	if first.Date != "05 Aug 2026" {
		t.Errorf("Unexpected date: %q", first.Date)
	}
	if first.Title != "Acme Bhd quarterly report" {
		t.Errorf("Unexpected title: %q", first.Title)
	}
	if !strings.HasPrefix(first.Link, srv.URL) || !strings.HasSuffix(first.Link, "/announcements/doc-1") {
		t.Errorf("Relative href not resolved against origin: %q", first.Link)
	}

	second := announcements[1]
	if second.Link != "https://docs.bursa.example/doc-2.pdf" {
		t.Errorf("Absolute href should be kept as-is, got %q", second.Link)
	}
}

func TestFetch_WarmUpFailureAborts(t *testing.T) {
	listingHit := false

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	mux.HandleFunc(bursaListingPath, func(w http.ResponseWriter, r *http.Request) {
		listingHit = true
		fmt.Fprint(w, tableHTML)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	if _, err := newTestFetcher(srv).Fetch("5183"); err == nil {
		t.Fatal("Expected error when warm-up request is rejected")
	}
	if listingHit {
		t.Error("Listing endpoint should not be hit after warm-up failure")
	}
}

func TestFetch_ListingFailureIsError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html></html>")
	})
	mux.HandleFunc(bursaListingPath, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	if _, err := newTestFetcher(srv).Fetch("5183"); err == nil {
		t.Fatal("Expected error for non-OK listing status")
	}
}
