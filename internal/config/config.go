/*
Package config holds the run configuration derived once at startup and passed
into each pipeline stage.
*/
package config

import (
	"regexp"
	"strings"
)

const (
	// DownloadUserAgent is the minimal spoofed agent used for the SGX
	// listing page and document downloads.
	DownloadUserAgent = "Mozilla/5.0"

	// BrowserUserAgent is the full browser agent the Bursa site requires.
	BrowserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) " +
		"Chrome/114.0.5735.110 Safari/537.36"

	defaultDownloadDir = "downloads"
	defaultMaxKeyLines = 5
)

var nonWordRuns = regexp.MustCompile(`\W+`)

// Config is the single run configuration. Built once in main; no other
// package holds mutable run state.
type Config struct {
	CompanyName string
	CompanySlug string
	BursaCode   string

	DownloadDir string
	OutputFile  string
	MaxKeyLines int
}

// New derives a Config from the raw CLI arguments. The slug is the lowercased
// company name with non-word runs collapsed to underscores, and names the
// output report file.
func New(companyName string, bursaCode string) Config {
	name := strings.TrimSpace(companyName)
	slug := nonWordRuns.ReplaceAllString(strings.ToLower(name), "_")

	return Config{
		CompanyName: name,
		CompanySlug: slug,
		BursaCode:   strings.TrimSpace(bursaCode),
		DownloadDir: defaultDownloadDir,
		OutputFile:  slug + "_announcements.json",
		MaxKeyLines: defaultMaxKeyLines,
	}
}
