/*
Package notify handles reporting of assembled announcement records via
console output and an optional email notification.
*/
package notify

import (
	"fmt"
	"strings"

	"github.com/soban-al1/fetchkybdata/internal/ai"
	"github.com/soban-al1/fetchkybdata/internal/report"
)

// EmailConfig holds SMTP configuration for the report email.
type EmailConfig struct {
	SMTPServer string
	SMTPPort   int
	SMTPUser   string
	SMTPPass   string
	FromEmail  string
	ToEmail    string
	Enabled    bool
}

// ReportData is everything the console summary and the email share.
type ReportData struct {
	CompanyName string
	OutputFile  string
	Results     []report.Processed
}

// PrintSummary writes the final human-readable summary of the run.
func PrintSummary(data ReportData) {
	if len(data.Results) == 0 {
		fmt.Println("\n-------------------------------------------")
		fmt.Printf("No announcements processed for %q today.\n", data.CompanyName)
		fmt.Println("-------------------------------------------")
		return
	}

	fmt.Println("\n===========================================")
	fmt.Printf("✅ %d RECORDS ASSEMBLED\n", len(data.Results))
	fmt.Println("===========================================")

	for i, p := range data.Results {
		rec := p.Record

		keyLineOutput := ""
		if len(rec.KeyLines) > 0 {
			keyLineOutput = fmt.Sprintf("Key Lines:\n%s", formatBulletList(rec.KeyLines))
		}

		analysisOutput := ""
		if p.Analysis != nil {
			if len(p.Analysis.Summary) > 0 {
				analysisOutput += fmt.Sprintf("AI Summary:\n%s", formatBulletList(p.Analysis.Summary))
			}
			if len(p.Analysis.GovernanceEvents) > 0 {
				analysisOutput += fmt.Sprintf("Governance Events:\n%s", formatEvents(p.Analysis.GovernanceEvents))
			}
		}

		consoleOutput := fmt.Sprintf("\n--- RECORD #%d ---\n", i+1) +
			fmt.Sprintf("Date:   %s\n", rec.Date) +
			fmt.Sprintf("Source: %s\n", rec.Source) +
			fmt.Sprintf("Title:  %s\n", rec.Title) +
			fmt.Sprintf("URL:    %s\n", rec.Link) +
			fmt.Sprintf("File:   %s\n", rec.File) +
			keyLineOutput +
			analysisOutput

		fmt.Print(consoleOutput)
	}

	fmt.Println("\n===========================================")
	fmt.Printf("Done. Results written to %s.\n", data.OutputFile)
	fmt.Println("===========================================")
}

// EmailReport sends one summary email for the finished report, if email is
// configured.
func EmailReport(data ReportData, cfg EmailConfig) error {
	if !cfg.Enabled {
		return nil
	}

	renderer := NewHTMLEmailRenderer()
	msg, err := renderer.Render(data)
	if err != nil {
		return fmt.Errorf("failed to render report email: %w", err)
	}

	return NewEmailSender(cfg).Send(msg)
}

func formatBulletList(points []string) string {
	if len(points) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, p := range points {
		sb.WriteString(fmt.Sprintf("\t- %s\n", p))
	}
	return sb.String()
}

func formatEvents(events []ai.GovernanceEvent) string {
	if len(events) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(fmt.Sprintf("\t- [%s] %s\n", e.Category, e.Details))
	}
	return sb.String()
}
