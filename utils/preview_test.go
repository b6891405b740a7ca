package utils

import (
	"strings"
	"testing"
)

func TestPreviewText(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		max      int
		expected string
	}{
		{"plain text", "hello world", 50, "hello world"},
		{"strips tags", "<p>hello <strong>world</strong></p>", 50, "hello world"},
		{"drops script", "<script>var x = 1</script>visible", 50, "visible"},
		{"collapses whitespace", "a\n\n  b\t c", 50, "a b c"},
	}

	for _, test := range tests {
		if got := PreviewText(test.fragment, test.max); got != test.expected {
			t.Errorf("%s: PreviewText() = %q, expected %q", test.name, got, test.expected)
		}
	}
}

func TestPreviewTextBreaksAtWordBoundary(t *testing.T) {
	got := PreviewText("the quick brown fox jumps over the lazy dog", 20)
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("expected ellipsis, got %q", got)
	}
	if strings.Contains(strings.TrimSuffix(got, "..."), "jump") {
		t.Errorf("expected cut before the partial word, got %q", got)
	}
}
