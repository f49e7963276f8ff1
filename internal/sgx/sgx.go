/*
Package sgx scrapes the SGX public announcements listing.
*/
package sgx

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/soban-al1/fetchkybdata/internal/config"
	"github.com/soban-al1/fetchkybdata/internal/types"
)

const (
	sgxAnnouncementsURL = "https://www.sgx.com/announcements?t=latest"
	sgxBaseURL          = "https://www.sgx.com"
)

// Fetcher retrieves and parses the SGX announcements listing page.
type Fetcher struct {
	ListingURL string
	BaseURL    string
	UserAgent  string
	Client     *http.Client
}

// NewFetcher returns a Fetcher targeting the live SGX listing.
func NewFetcher() *Fetcher {
	return &Fetcher{
		ListingURL: sgxAnnouncementsURL,
		BaseURL:    sgxBaseURL,
		UserAgent:  config.DownloadUserAgent,
		Client:     &http.Client{Timeout: 60 * time.Second},
	}
}

// Fetch performs a single GET of the listing page and returns every
// announcement row that carries a usable link. Rows without one are skipped;
// the skipped count is logged so markup drift stays visible.
func (f *Fetcher) Fetch() ([]types.Announcement, error) {
	req, err := http.NewRequest(http.MethodGet, f.ListingURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", f.ListingURL, err)
	}
	req.Header.Set("User-Agent", f.UserAgent)

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch SGX listing %s: %w", f.ListingURL, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Printf("Warning: Failed to close response body for %s: %v", f.ListingURL, err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("received non-OK status code %d from %s", resp.StatusCode, f.ListingURL)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML from %s: %w", f.ListingURL, err)
	}

	var announcements []types.Announcement
	skipped := 0

	doc.Find(".views-row").Each(func(_ int, row *goquery.Selection) {
		a := row.Find("a").First()
		href, ok := a.Attr("href")
		href = strings.TrimSpace(href)
		if !ok || href == "" {
			skipped++
			return
		}

		link := href
		if !strings.HasPrefix(link, "http") {
			link = f.BaseURL + link
		}

		date := strings.TrimSpace(row.Find(".views-date").First().Text())
		if date == "" {
			date = strings.TrimSpace(row.Find("time").First().Text())
		}

		announcements = append(announcements, types.Announcement{
			Source: types.SourceSGX,
			Title:  strings.TrimSpace(a.Text()),
			Link:   link,
			Date:   date,
		})
	})

	if skipped > 0 {
		log.Printf("Warning: SGX: skipped %d listing rows without a usable link", skipped)
	}

	return announcements, nil
}
