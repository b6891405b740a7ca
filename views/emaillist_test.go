package views

import (
	"testing"

	"entitled/fixtures"
	"entitled/models"
)

func testEmails() []models.Email {
	return fixtures.Default().Emails()
}

func visibleIDs(l *EmailList) []string {
	var ids []string
	for _, e := range l.Visible() {
		ids = append(ids, e.ID)
	}
	return ids
}

func TestVisibleEmptyQueryIsNoOp(t *testing.T) {
	l := NewEmailList(testEmails())

	if got := len(l.Visible()); got != l.Len() {
		t.Errorf("empty query hid items: %d visible of %d", got, l.Len())
	}
}

func TestVisibleSearchMatchesSubjectSenderContent(t *testing.T) {
	tests := []struct {
		query string
		ids   []string
	}{
		{"closing", []string{"1"}},            // subject
		{"kristin", []string{"3"}},            // sender
		{"tax assessment", []string{"5"}},     // content
		{"PROPERTY", []string{"2", "3", "4"}}, // case-insensitive, subject + content
		{"no such thing anywhere", nil},
	}

	for _, test := range tests {
		l := NewEmailList(testEmails())
		l.SetQuery(test.query)

		got := visibleIDs(l)
		if len(got) != len(test.ids) {
			t.Errorf("query %q: got ids %v, expected %v", test.query, got, test.ids)
			continue
		}
		for i := range got {
			if got[i] != test.ids[i] {
				t.Errorf("query %q: got ids %v, expected %v", test.query, got, test.ids)
				break
			}
		}
	}
}

func TestVisibleCategories(t *testing.T) {
	l := NewEmailList(testEmails())

	l.SetCategory(CategoryHighPriority)
	for _, e := range l.Visible() {
		if e.Priority != models.PriorityHigh {
			t.Errorf("category %q leaked email %s with priority %s", CategoryHighPriority, e.ID, e.Priority)
		}
	}

	l.SetCategory(CategoryWithAttachments)
	for _, e := range l.Visible() {
		if !e.HasAttachments {
			t.Errorf("category %q leaked email %s without attachments", CategoryWithAttachments, e.ID)
		}
	}

	// Unknown categories select nothing.
	l.SetCategory(CategoryUnsorted)
	if got := len(l.Visible()); got != 0 {
		t.Errorf("category %q expected empty list, got %d items", CategoryUnsorted, got)
	}
}

func TestVisibleCombinesPredicatesWithAnd(t *testing.T) {
	l := NewEmailList(testEmails())
	l.SetQuery("property")
	l.ToggleAttachmentsFilter()

	for _, e := range l.Visible() {
		if !e.HasAttachments {
			t.Errorf("attachment filter leaked email %s", e.ID)
		}
	}
}

func TestVisiblePreservesOrderAndIsIdempotent(t *testing.T) {
	l := NewEmailList(testEmails())
	l.SetCategory(CategoryWithAttachments)

	first := visibleIDs(l)
	second := visibleIDs(l)
	if len(first) != len(second) {
		t.Fatalf("derivation not idempotent: %v then %v", first, second)
	}
	prev := ""
	for i, id := range first {
		if id != second[i] {
			t.Fatalf("derivation not idempotent: %v then %v", first, second)
		}
		if prev != "" && id < prev {
			// fixture ids are insertion-ordered, so any inversion
			// means the filter reordered items
			t.Errorf("filter reordered items: %v", first)
		}
		prev = id
	}
}

func TestToggleStarRoundTrip(t *testing.T) {
	l := NewEmailList(testEmails())
	before := l.Visible()[0].IsStarred

	l.ToggleStar("1")
	l.ToggleStar("1")

	if got := l.Visible()[0].IsStarred; got != before {
		t.Errorf("double toggle changed starred state: %v -> %v", before, got)
	}
}

func TestToggleReadRoundTrip(t *testing.T) {
	l := NewEmailList(testEmails())
	before := l.Visible()[2].IsRead

	l.ToggleRead("3")
	l.ToggleRead("3")

	if got := l.Visible()[2].IsRead; got != before {
		t.Errorf("double toggle changed read state: %v -> %v", before, got)
	}
}

func TestArchiveRemovesFromViewNotSource(t *testing.T) {
	store := fixtures.Default()
	l := NewEmailList(store.Emails())

	if !l.Archive("1") {
		t.Fatal("archive reported failure")
	}
	for _, e := range l.Visible() {
		if e.ID == "1" {
			t.Error("archived email still visible")
		}
	}
	if store.EmailByID("1") == nil {
		t.Error("archive reached the fixture source")
	}
}

func TestSelection(t *testing.T) {
	l := NewEmailList(testEmails())

	l.Select("2")
	if sel := l.Selected(); sel == nil || sel.ID != "2" {
		t.Fatalf("Selected() = %+v", sel)
	}

	l.Select("missing")
	if sel := l.Selected(); sel != nil {
		t.Errorf("unknown id should clear selection, got %+v", sel)
	}

	l.Select("4")
	l.Delete("4")
	if sel := l.Selected(); sel != nil {
		t.Errorf("deleting the selected email should clear selection, got %+v", sel)
	}
}

func TestTriageScenario(t *testing.T) {
	// Search "closing" yields exactly the Closing Confirmation email;
	// starring twice leaves it unchanged; archiving removes it from the
	// rendered list but not from the fixture source.
	store := fixtures.Default()
	l := NewEmailList(store.Emails())

	l.SetQuery("closing")
	visible := l.Visible()
	if len(visible) != 1 || visible[0].Subject != "Closing Confirmation" {
		t.Fatalf("search %q returned %+v", "closing", visible)
	}

	id := visible[0].ID
	wasStarred := visible[0].IsStarred
	l.ToggleStar(id)
	l.ToggleStar(id)
	if got := l.Visible()[0].IsStarred; got != wasStarred {
		t.Errorf("star round-trip failed: %v -> %v", wasStarred, got)
	}

	l.Archive(id)
	if got := len(l.Visible()); got != 0 {
		t.Errorf("archived email still matches search, %d visible", got)
	}
	if src := store.EmailByID(id); src == nil || src.Subject != "Closing Confirmation" {
		t.Errorf("fixture source lost the archived email: %+v", src)
	}
}
