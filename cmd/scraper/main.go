package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/soban-al1/fetchkybdata/internal/bursa"
	"github.com/soban-al1/fetchkybdata/internal/config"
	"github.com/soban-al1/fetchkybdata/internal/download"
	"github.com/soban-al1/fetchkybdata/internal/filter"
	"github.com/soban-al1/fetchkybdata/internal/notify"
	"github.com/soban-al1/fetchkybdata/internal/report"
	"github.com/soban-al1/fetchkybdata/internal/sgx"
)

var (
	companyName = flag.String("company-name", "", "(-c) Company name to filter announcement titles (case-insensitive)")
	bursaCode   = flag.String("bursa-code", "", "(-b) Optional Bursa Malaysia company code (e.g. 5183). If provided, that company's announcements are fetched")

	geminiAPIKey = flag.String("gemini-api-key", "", "Gemini API key for optional governance analysis (default: GEMINI_API_KEY env)")
	geminiModel  = flag.String("gemini-model", "", "Gemini model name for analysis")

	smtpServer = flag.String("smtp-server", "smtp.gmail.com", "SMTP server address (default: smtp.gmail.com)")
	smtpPort   = flag.Int("smtp-port", 587, "SMTP server port (default: 587)")
	smtpUser   = flag.String("smtp-user", "", "SMTP username (email address)")
	smtpPass   = flag.String("smtp-pass", "", "SMTP password or App Password")
	toEmail    = flag.String("to-email", "", "Recipient email address")
	fromEmail  = flag.String("from-email", "", "Sender email address (default: smtp-user)")
)

func init() {
	flag.StringVar(companyName, "c", "", "(-c) Company name to filter announcement titles (shorthand)")
	flag.StringVar(bursaCode, "b", "", "(-b) Optional Bursa Malaysia company code (shorthand)")

	flag.Usage = func() {
		flagSet := flag.CommandLine
		fmt.Printf("Usage of %s:\n", "scraper")

		order := []string{
			"company-name",
			"bursa-code",
			"gemini-api-key",
			"gemini-model",
			"smtp-server",
			"smtp-port",
			"smtp-user",
			"smtp-pass",
			"to-email",
			"from-email",
		}

		for _, name := range order {
			f := flagSet.Lookup(name)
			if f != nil {
				fmt.Printf("  -%s\n", f.Name)
				fmt.Printf("    %s\n", f.Usage)
			}
		}
	}
}

func main() {
	flag.Parse()

	// Optional .env for SMTP and Gemini credentials; flags win over env.
	_ = godotenv.Load()

	if strings.TrimSpace(*companyName) == "" {
		fmt.Println("Error: Company name is required.")
		fmt.Println("Usage: scraper --company-name 'Your Company' [--bursa-code 1234]")
		os.Exit(1)
	}

	cfg := config.New(*companyName, *bursaCode)

	apiKey := *geminiAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	emailConfig := notify.EmailConfig{
		SMTPServer: *smtpServer,
		SMTPPort:   *smtpPort,
		SMTPUser:   envFallback(*smtpUser, "SMTP_USER"),
		SMTPPass:   envFallback(*smtpPass, "SMTP_PASS"),
		ToEmail:    envFallback(*toEmail, "TO_EMAIL"),
		FromEmail:  *fromEmail,
	}
	if emailConfig.FromEmail == "" {
		emailConfig.FromEmail = emailConfig.SMTPUser
	}
	emailConfig.Enabled = emailConfig.SMTPServer != "" && emailConfig.SMTPUser != "" &&
		emailConfig.SMTPPass != "" && emailConfig.ToEmail != ""

	fmt.Printf("→ Scraping for company: %q\n\n", cfg.CompanyName)

	sgxAnns, err := sgx.NewFetcher().Fetch()
	if err != nil {
		fmt.Printf("Fatal error fetching SGX announcements: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("SGX: fetched %d announcements\n", len(sgxAnns))

	bursaAnns, err := bursa.NewFetcher().Fetch(cfg.BursaCode)
	if err != nil {
		fmt.Printf("Fatal error fetching Bursa announcements: %v\n", err)
		os.Exit(1)
	}
	if cfg.BursaCode != "" {
		fmt.Printf("Bursa: fetched %d announcements for code %s\n", len(bursaAnns), cfg.BursaCode)
	} else {
		fmt.Println("Bursa: skipped (no code provided)")
	}

	all := append(sgxAnns, bursaAnns...)

	matcher := filter.NewMatcher(cfg.CompanyName)
	filtered := matcher.FilterAnnouncements(all)
	fmt.Printf("Filtered to %d announcements mentioning %q\n\n", len(filtered), cfg.CompanyName)

	assembler := report.NewAssembler(cfg, matcher, download.NewRetriever(cfg.DownloadDir))
	if apiKey != "" {
		assembler.EnableAnalysis(apiKey, *geminiModel)
	}

	results := assembler.Process(filtered)

	if err := report.Write(cfg.OutputFile, results); err != nil {
		fmt.Printf("Fatal error writing report: %v\n", err)
		os.Exit(1)
	}

	data := notify.ReportData{
		CompanyName: cfg.CompanyName,
		OutputFile:  cfg.OutputFile,
		Results:     results,
	}

	notify.PrintSummary(data)

	if emailConfig.Enabled {
		log.Printf("Emailing report (SMTP: %s:%d).", emailConfig.SMTPServer, emailConfig.SMTPPort)
		if err := notify.EmailReport(data, emailConfig); err != nil {
			log.Printf("Warning: Failed to email report: %v", err)
		}
	}
}

func envFallback(flagValue string, envKey string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(envKey)
}
