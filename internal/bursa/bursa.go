/*
Package bursa scrapes company announcements from Bursa Malaysia. The site
rejects bare requests with 403, so every fetch first warms up a
cookie-carrying session against the home page with a realistic browser
header set, then reuses that session for the listing request.
*/
package bursa

import (
	"fmt"
	"log"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/soban-al1/fetchkybdata/internal/config"
	"github.com/soban-al1/fetchkybdata/internal/types"
)

const (
	bursaBaseURL     = "https://www.bursamalaysia.com"
	bursaListingPath = "/market_information/announcements/company_announcement"
)

// Fetcher retrieves and parses the Bursa company announcement listing.
type Fetcher struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// NewFetcher returns a Fetcher targeting the live Bursa site.
func NewFetcher() *Fetcher {
	return &Fetcher{
		BaseURL:   bursaBaseURL,
		UserAgent: config.BrowserUserAgent,
		Timeout:   60 * time.Second,
	}
}

// Fetch returns the announcements listed for the given company code. An
// empty code means this source was not requested: it returns immediately
// with no announcements and no error, and no requests are made.
func (f *Fetcher) Fetch(code string) ([]types.Announcement, error) {
	if code == "" {
		return nil, nil
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}
	client := &http.Client{
		Jar:     jar,
		Timeout: f.Timeout,
	}
	// The session client lives for this fetch only.
	defer client.CloseIdleConnections()

	// Warm-up request to acquire session cookies.
	if err := f.warmUp(client); err != nil {
		return nil, err
	}

	listingURL := f.BaseURL + bursaListingPath + "?company=" + url.QueryEscape(code)

	req, err := f.newRequest(listingURL)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch Bursa listing %s: %w", listingURL, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Printf("Warning: Failed to close response body for %s: %v", listingURL, err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("received non-OK status code %d from %s", resp.StatusCode, listingURL)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML from %s: %w", listingURL, err)
	}

	var announcements []types.Announcement
	skipped := 0

	doc.Find("table.data-table tbody tr").Each(func(_ int, row *goquery.Selection) {
		cols := row.Find("td")
		if cols.Length() < 2 {
			skipped++
			return
		}

		date := strings.TrimSpace(cols.Eq(0).Text())

		a := cols.Eq(1).Find("a").First()
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

		announcements = append(announcements, types.Announcement{
			Source: types.SourceBursa,
			Title:  strings.TrimSpace(a.Text()),
			Link:   link,
			Date:   date,
		})
	})

	if skipped > 0 {
		log.Printf("Warning: Bursa: skipped %d table rows without the expected shape", skipped)
	}

	return announcements, nil
}

// warmUp hits the home page so the session jar picks up the cookies the
// listing endpoint expects.
func (f *Fetcher) warmUp(client *http.Client) error {
	homeURL := f.BaseURL + "/"

	req, err := f.newRequest(homeURL)
	if err != nil {
		return err
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed warm-up GET to %s: %w", homeURL, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Printf("Warning: Failed to close response body for %s: %v", homeURL, err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("received non-OK status code %d from warm-up GET to %s", resp.StatusCode, homeURL)
	}

	return nil
}

func (f *Fetcher) newRequest(rawURL string) (*http.Request, error) {
	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", rawURL, err)
	}

	req.Header.Set("User-Agent", f.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Referer", f.BaseURL+"/")
	req.Header.Set("Connection", "keep-alive")

	return req, nil
}
