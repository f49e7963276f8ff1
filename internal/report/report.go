/*
Package report drives the per-announcement download, extraction and key-line
selection, and serializes the assembled report to its JSON artifact.
*/
package report

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/soban-al1/fetchkybdata/internal/ai"
	"github.com/soban-al1/fetchkybdata/internal/config"
	"github.com/soban-al1/fetchkybdata/internal/download"
	"github.com/soban-al1/fetchkybdata/internal/extract"
	"github.com/soban-al1/fetchkybdata/internal/filter"
	"github.com/soban-al1/fetchkybdata/internal/types"
)

// Processed pairs a finished report record with its optional AI analysis.
// The analysis never enters the serialized report; it is surfaced on the
// console and in the notification email only.
type Processed struct {
	Record   types.Record
	Analysis *ai.Analysis
}

// Assembler runs the per-announcement pipeline stages in order.
type Assembler struct {
	cfg       config.Config
	matcher   *filter.Matcher
	retriever *download.Retriever

	geminiAPIKey string
	geminiModel  string
}

// NewAssembler wires the assembler with its collaborators.
func NewAssembler(cfg config.Config, matcher *filter.Matcher, retriever *download.Retriever) *Assembler {
	return &Assembler{
		cfg:       cfg,
		matcher:   matcher,
		retriever: retriever,
	}
}

// EnableAnalysis turns on Gemini analysis of each processed announcement.
func (a *Assembler) EnableAnalysis(apiKey string, model string) {
	a.geminiAPIKey = apiKey
	a.geminiModel = model
}

// Process runs download → extract → key-line selection for each announcement,
// strictly in order. A failed download skips that announcement and moves on;
// extraction failure still yields a record, with empty key lines.
func (a *Assembler) Process(announcements []types.Announcement) []Processed {
	var results []Processed

	for _, ann := range announcements {
		fmt.Printf("• %s | %s | %s\n", ann.Date, ann.Source, ann.Title)

		path, err := a.retriever.Download(ann)
		if err != nil {
			fmt.Printf("   [!] error: %v\n", err)
			continue
		}

		text := extract.Text(path)
		keyLines := a.matcher.KeyLines(text, a.cfg.MaxKeyLines)

		fmt.Printf("   → downloaded & extracted %d key lines\n", len(keyLines))

		processed := Processed{
			Record: types.Record{
				Date:     ann.Date,
				Source:   ann.Source,
				Title:    ann.Title,
				Link:     ann.Link,
				File:     filepath.Base(path),
				KeyLines: keyLines,
			},
		}

		if a.geminiAPIKey != "" {
			processed.Analysis = a.analyze(ann, text)
		}

		results = append(results, processed)
	}

	return results
}

func (a *Assembler) analyze(ann types.Announcement, text string) *ai.Analysis {
	analysis, err := ai.GenerateSummary(a.cfg.CompanyName, ann.Title, text, a.geminiAPIKey, a.geminiModel)
	if err != nil {
		log.Printf("Warning: AI analysis failed for %q: %v", ann.Title, err)
		return nil
	}

	for _, line := range analysis.Summary {
		fmt.Printf("   · %s\n", line)
	}

	return analysis
}

// Write serializes the report records to path as indented JSON, keeping
// non-ASCII characters and URLs as-is.
func Write(path string, results []Processed) error {
	records := make([]types.Record, 0, len(results))
	for _, p := range results {
		records = append(records, p.Record)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file %s: %w", path, err)
	}

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(records); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode report to %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close report file %s: %w", path, err)
	}

	return nil
}
