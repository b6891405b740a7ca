package utils

import (
	"strings"
	"testing"
	"time"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		amount   float64
		expected string
	}{
		{1234.56, "$1,234.56"},
		{1000000, "$1,000,000.00"},
		{0, "$0.00"},
		{-1234.56, "-$1,234.56"},
		{999.999, "$1,000.00"},
		{5, "$5.00"},
		{123456789.1, "$123,456,789.10"},
		{-0.5, "-$0.50"},
	}

	for _, test := range tests {
		result := FormatCurrency(test.amount)
		if result != test.expected {
			t.Errorf("FormatCurrency(%v) = %q, expected %q", test.amount, result, test.expected)
		}
	}
}

func TestFormatCurrencyNegativeMirrorsPositive(t *testing.T) {
	for _, amount := range []float64{0.01, 12.5, 1234.56, 99999} {
		pos := FormatCurrency(amount)
		neg := FormatCurrency(-amount)
		if neg != "-"+pos {
			t.Errorf("FormatCurrency(-%v) = %q, expected %q", amount, neg, "-"+pos)
		}
	}
}

func TestFormatDate(t *testing.T) {
	date := time.Date(2023, 12, 25, 0, 0, 0, 0, time.UTC)
	if got := FormatDate(date); got != "12/25/2023" {
		t.Errorf("FormatDate() = %q, expected %q", got, "12/25/2023")
	}
}

func TestFormatDateString(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		wantErr  bool
	}{
		{"2023-12-25", "12/25/2023", false},
		{"2024-01-05", "01/05/2024", false},
		{"2023-12-25T10:30:00Z", "12/25/2023", false},
		{"01/15/2024", "01/15/2024", false},
		{"not a date", "", true},
		{"", "", true},
	}

	for _, test := range tests {
		result, err := FormatDateString(test.input)
		if test.wantErr {
			if err == nil {
				t.Errorf("FormatDateString(%q) expected error, got %q", test.input, result)
			}
			continue
		}
		if err != nil {
			t.Errorf("FormatDateString(%q) unexpected error: %v", test.input, err)
			continue
		}
		if result != test.expected {
			t.Errorf("FormatDateString(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2023, 12, 25, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		at       time.Time
		expected string
	}{
		{"same instant", now, "Just now"},
		{"thirty seconds", now.Add(-30 * time.Second), "Just now"},
		{"five minutes", now.Add(-5 * time.Minute), "5 minutes ago"},
		{"one minute", now.Add(-time.Minute), "1 minute ago"},
		{"fifty-nine minutes", now.Add(-59 * time.Minute), "59 minutes ago"},
		{"exactly one hour", now.Add(-time.Hour), "1 hour ago"},
		{"two hours", now.Add(-2 * time.Hour), "2 hours ago"},
		{"23.5 hours floors to 23", now.Add(-23*time.Hour - 30*time.Minute), "23 hours ago"},
		{"exactly one day", now.Add(-24 * time.Hour), "1 day ago"},
		{"two days", now.Add(-48 * time.Hour), "2 days ago"},
		{"two and a half days floors to 2", now.Add(-60 * time.Hour), "2 days ago"},
	}

	for _, test := range tests {
		if got := RelativeTime(test.at, now); got != test.expected {
			t.Errorf("%s: RelativeTime() = %q, expected %q", test.name, got, test.expected)
		}
	}
}

func TestRelativeTimeMonotonic(t *testing.T) {
	// Older instants must never report a finer unit than newer ones.
	now := time.Date(2023, 12, 25, 12, 0, 0, 0, time.UTC)
	rank := func(s string) int {
		switch {
		case s == "Just now":
			return 0
		case strings.Contains(s, "minute"):
			return 1
		case strings.Contains(s, "hour"):
			return 2
		default:
			return 3
		}
	}

	prev := -1
	for _, d := range []time.Duration{
		10 * time.Second, 5 * time.Minute, 59 * time.Minute,
		time.Hour, 12 * time.Hour, 24 * time.Hour, 72 * time.Hour,
	} {
		r := rank(RelativeTime(now.Add(-d), now))
		if r < prev {
			t.Fatalf("unit rank decreased at elapsed %v", d)
		}
		prev = r
	}
}

func TestTruncateText(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		maxLength int
		expected  string
	}{
		{"long text", "This is a very long text that should be truncated", 20, "This is a very long..."},
		{"short text", "Short text", 20, "Short text"},
		{"exact length", "Exactly twenty chars", 20, "Exactly twenty chars"},
		{"mid-word cut", "abcdefghij", 4, "abcd..."},
		{"empty", "", 5, ""},
		{"zero max", "abc", 0, "..."},
	}

	for _, test := range tests {
		if got := TruncateText(test.text, test.maxLength); got != test.expected {
			t.Errorf("%s: TruncateText(%q, %d) = %q, expected %q",
				test.name, test.text, test.maxLength, got, test.expected)
		}
	}
}

func TestTruncateTextIdempotentWhenFits(t *testing.T) {
	text := "no truncation needed"
	if got := TruncateText(text, len(text)); got != text {
		t.Errorf("TruncateText() altered text that fits: %q", got)
	}
}
