package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Date layouts accepted by FormatDateString, tried in order
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"01/02/2006",
}

// FormatCurrency renders an amount as US-locale currency with two
// decimal places and thousands separators. Negative amounts carry a
// leading sign before the symbol: -$1,234.56.
func FormatCurrency(amount float64) string {
	sign := ""
	if math.Signbit(amount) && amount != 0 {
		sign = "-"
		amount = -amount
	}

	s := strconv.FormatFloat(amount, 'f', 2, 64)
	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	b.WriteString(sign)
	b.WriteByte('$')
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}

// FormatDate renders a time as MM/DD/YYYY using its calendar fields
func FormatDate(t time.Time) string {
	return t.Format("01/02/2006")
}

// FormatDateString parses a date string and renders it as MM/DD/YYYY.
// Unparsable input returns an error rather than a misleading string.
func FormatDateString(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("empty date string")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return FormatDate(t), nil
		}
	}
	return "", fmt.Errorf("unparsable date %q", s)
}

// RelativeTime renders the elapsed duration between t and now using the
// coarsest applicable unit. Elapsed hours and days use integer floor, so
// exactly 60 minutes is "1 hour ago" and exactly 24 hours is "1 day ago".
func RelativeTime(t, now time.Time) string {
	elapsed := now.Sub(t)
	switch {
	case elapsed < time.Minute:
		return "Just now"
	case elapsed < time.Hour:
		return plural(int(elapsed.Minutes()), "minute")
	case elapsed < 24*time.Hour:
		return plural(int(elapsed.Hours()), "hour")
	default:
		return plural(int(elapsed.Hours())/24, "day")
	}
}

// FormatRelativeTime renders elapsed time against the wall clock
func FormatRelativeTime(t time.Time) string {
	return RelativeTime(t, time.Now())
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

// TruncateText returns text unchanged when its rune length fits within
// maxLength; otherwise it cuts at maxLength runes (mid-word, no
// boundary search), drops any trailing whitespace left by the cut, and
// appends an ellipsis.
func TruncateText(text string, maxLength int) string {
	if maxLength < 0 {
		maxLength = 0
	}
	if utf8.RuneCountInString(text) <= maxLength {
		return text
	}
	runes := []rune(text)
	cut := strings.TrimRight(string(runes[:maxLength]), " \t\n")
	return cut + "..."
}
