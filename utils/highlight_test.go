package utils

import (
	"strings"
	"testing"
)

func TestHighlightContentAmounts(t *testing.T) {
	content := "I think $5000 for the repairs is fine."
	result := HighlightContent(content)

	if !strings.Contains(result, `<span class="hl-amount">$5000</span>`) {
		t.Errorf("amount not highlighted: %q", result)
	}
}

func TestHighlightContentDateWords(t *testing.T) {
	content := "Please call me tomorrow to finalize."
	result := HighlightContent(content)

	if !strings.Contains(result, `<span class="hl-date">tomorrow</span>`) {
		t.Errorf("date word not highlighted: %q", result)
	}
}

func TestHighlightContentAllOccurrences(t *testing.T) {
	content := "Pay $500 now and $500 later, today or tomorrow. Today works."
	result := HighlightContent(content)

	if n := strings.Count(result, `<span class="hl-amount">$500</span>`); n != 2 {
		t.Errorf("expected 2 amount highlights, got %d: %q", n, result)
	}
	// Case-insensitive: "today" and "Today" both match, original casing kept.
	if !strings.Contains(result, `<span class="hl-date">today</span>`) ||
		!strings.Contains(result, `<span class="hl-date">Today</span>`) {
		t.Errorf("expected both casings highlighted: %q", result)
	}
}

func TestHighlightContentThousandsAndCents(t *testing.T) {
	result := HighlightContent("The new assessment value is $485,000 and fees are $1,234.56.")

	if !strings.Contains(result, `<span class="hl-amount">$485,000</span>`) {
		t.Errorf("thousands amount not highlighted: %q", result)
	}
	if !strings.Contains(result, `<span class="hl-amount">$1,234.56</span>`) {
		t.Errorf("cents amount not highlighted: %q", result)
	}
}

func TestHighlightContentPreservesText(t *testing.T) {
	content := "Closing is tomorrow, wire $5,000 today."
	result := HighlightContent(content)

	if StripHTML(result) != content {
		t.Errorf("underlying text altered: %q", StripHTML(result))
	}
}

func TestHighlightContentSanitizesInput(t *testing.T) {
	result := HighlightContent(`<script>alert("x")</script>Pay $100`)

	if strings.Contains(result, "<script>") {
		t.Errorf("script tag survived sanitization: %q", result)
	}
	if !strings.Contains(result, `<span class="hl-amount">$100</span>`) {
		t.Errorf("amount lost during sanitization: %q", result)
	}
}

func TestHighlightTerm(t *testing.T) {
	result := HighlightTerm("Closing Confirmation for the closing", "closing")

	if n := strings.Count(result, `<span class="hl-match">`); n != 2 {
		t.Errorf("expected 2 matches, got %d: %q", n, result)
	}
	if HighlightTerm("unchanged", "") != "unchanged" {
		t.Error("empty term should leave content unchanged")
	}
}
