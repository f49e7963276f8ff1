package notify

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
)

// RenderedMessage is a subject plus the HTML and plain text bodies.
type RenderedMessage struct {
	Subject string
	Text    string
	HTML    string
}

// HTMLEmailRenderer renders the report summary as an HTML email with a plain
// text fallback.
type HTMLEmailRenderer struct {
	tmpl *template.Template
}

// NewHTMLEmailRenderer creates a renderer with the default email template.
func NewHTMLEmailRenderer() *HTMLEmailRenderer {
	t := template.Must(template.New("email").Parse(emailHTMLTemplate))
	return &HTMLEmailRenderer{tmpl: t}
}

// Render produces an HTML email with plain text alternative.
func (r *HTMLEmailRenderer) Render(data ReportData) (*RenderedMessage, error) {
	subject := fmt.Sprintf("Announcements: %s - %d records", data.CompanyName, len(data.Results))

	var htmlBuf bytes.Buffer
	if err := r.tmpl.Execute(&htmlBuf, data); err != nil {
		return nil, fmt.Errorf("failed to render HTML template: %w", err)
	}

	return &RenderedMessage{
		Subject: subject,
		Text:    renderPlainText(data),
		HTML:    htmlBuf.String(),
	}, nil
}

// renderPlainText produces a readable plain text version for email clients
// that don't support HTML.
func renderPlainText(data ReportData) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s - %d announcement records\n", data.CompanyName, len(data.Results)))
	sb.WriteString(strings.Repeat("=", 50) + "\n\n")

	for _, p := range data.Results {
		rec := p.Record

		sb.WriteString(fmt.Sprintf("%s | %s\n", rec.Date, rec.Source))
		sb.WriteString(rec.Title + "\n")
		sb.WriteString(fmt.Sprintf("URL: %s\n", rec.Link))
		sb.WriteString(fmt.Sprintf("File: %s\n", rec.File))

		if len(rec.KeyLines) > 0 {
			sb.WriteString("KEY LINES\n")
			sb.WriteString(strings.Repeat("-", 20) + "\n")
			for _, line := range rec.KeyLines {
				sb.WriteString(fmt.Sprintf("• %s\n", line))
			}
		}

		if p.Analysis != nil {
			if len(p.Analysis.Summary) > 0 {
				sb.WriteString("AI SUMMARY\n")
				sb.WriteString(strings.Repeat("-", 20) + "\n")
				for _, s := range p.Analysis.Summary {
					sb.WriteString(fmt.Sprintf("• %s\n", s))
				}
			}
			if len(p.Analysis.GovernanceEvents) > 0 {
				sb.WriteString("GOVERNANCE EVENTS\n")
				sb.WriteString(strings.Repeat("-", 20) + "\n")
				for _, e := range p.Analysis.GovernanceEvents {
					sb.WriteString(fmt.Sprintf("• [%s] %s\n", e.Category, e.Details))
				}
			}
		}

		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Full report: %s\n", data.OutputFile))

	return sb.String()
}
