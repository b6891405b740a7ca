package utils

import (
	"strings"

	"golang.org/x/net/html"
)

// PreviewText extracts plain text from an HTML fragment and trims it to
// a list-preview length, breaking at a word boundary when possible
func PreviewText(fragment string, maxLength int) string {
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return TruncateText(fragment, maxLength)
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	text := strings.Join(strings.Fields(b.String()), " ")
	if len(text) <= maxLength {
		return text
	}
	if idx := strings.LastIndex(text[:maxLength], " "); idx > 0 {
		return text[:idx] + "..."
	}
	return text[:maxLength] + "..."
}
