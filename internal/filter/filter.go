/*
Package filter matches announcements and extracted text against the target
company and governance terms.
*/
package filter

import (
	"regexp"
	"strings"

	"github.com/soban-al1/fetchkybdata/internal/types"
)

// Matcher holds the patterns compiled once per run from the company name.
// The name is quoted so it always matches as a literal substring, never as a
// regular expression.
type Matcher struct {
	company  *regexp.Regexp
	keyTerms *regexp.Regexp
}

// NewMatcher compiles the title filter and key-line patterns for the given
// company name. Both match case-insensitively, anywhere in the input.
func NewMatcher(companyName string) *Matcher {
	quoted := regexp.QuoteMeta(companyName)
	return &Matcher{
		company:  regexp.MustCompile(`(?i)` + quoted),
		keyTerms: regexp.MustCompile(`(?i)shareholder|director|board|` + quoted),
	}
}

// FilterAnnouncements keeps announcements whose title mentions the company,
// preserving input order.
func (m *Matcher) FilterAnnouncements(announcements []types.Announcement) []types.Announcement {
	var filtered []types.Announcement
	for _, ann := range announcements {
		if m.company.MatchString(ann.Title) {
			filtered = append(filtered, ann)
		}
	}
	return filtered
}

// KeyLines returns up to maxLines lines of text that mention a governance
// term (shareholder, director, board) or the company name, trimmed, in their
// original order. Repeated lines are kept as-is.
func (m *Matcher) KeyLines(text string, maxLines int) []string {
	lines := strings.Split(text, "\n")

	matches := []string{}
	for _, line := range lines {
		if len(matches) >= maxLines {
			break
		}
		if m.keyTerms.MatchString(line) {
			matches = append(matches, strings.TrimSpace(line))
		}
	}
	return matches
}
