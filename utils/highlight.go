package utils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	// StrictPolicy strips all markup from user-supplied content
	StrictPolicy *bluemonday.Policy
	// ContentPolicy allows the limited markup the detail pane renders
	ContentPolicy *bluemonday.Policy

	// Currency amounts with optional thousands separators and cents,
	// e.g. $5000, $1,234.56
	amountPattern = regexp.MustCompile(`\$\d+(?:,\d{3})*(?:\.\d{2})?`)
	// Fixed vocabulary of relative-date words highlighted in email bodies
	datePattern = regexp.MustCompile(`(?i)\b(tomorrow|today|yesterday|next week|next month)\b`)
)

func init() {
	StrictPolicy = bluemonday.StrictPolicy()

	ContentPolicy = bluemonday.StrictPolicy()
	ContentPolicy.AllowElements("p", "br", "span", "strong", "em")
	ContentPolicy.AllowAttrs("class").OnElements("span")
}

// SanitizeContent strips everything but the markup the detail pane is
// allowed to render
func SanitizeContent(content string) string {
	return ContentPolicy.Sanitize(content)
}

// StripHTML removes all HTML tags from content
func StripHTML(content string) string {
	return StrictPolicy.Sanitize(content)
}

// HighlightContent scans free-text body content for currency amounts
// and relative-date words and wraps each occurrence in a distinct span.
// Every instance of a matched substring is replaced, not just the
// first, and the underlying text is preserved. Content is sanitized
// before markup is injected so untrusted input cannot smuggle tags
// through the highlighter.
func HighlightContent(content string) string {
	out := StripHTML(content)

	out = amountPattern.ReplaceAllStringFunc(out, func(m string) string {
		return fmt.Sprintf(`<span class="hl-amount">%s</span>`, m)
	})

	out = datePattern.ReplaceAllStringFunc(out, func(m string) string {
		return fmt.Sprintf(`<span class="hl-date">%s</span>`, m)
	})

	return out
}

// HighlightTerm wraps every case-insensitive occurrence of term in a
// search-match span, used by the list views to mark query hits
func HighlightTerm(content, term string) string {
	if strings.TrimSpace(term) == "" {
		return content
	}
	re, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(term))
	if err != nil {
		return content
	}
	return re.ReplaceAllStringFunc(content, func(m string) string {
		return fmt.Sprintf(`<span class="hl-match">%s</span>`, m)
	})
}
