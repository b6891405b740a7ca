package views

import (
	"testing"

	"entitled/fixtures"
	"entitled/models"
)

func newTestDetails(t *testing.T) *PropertyDetails {
	t.Helper()
	store := fixtures.Default()
	return NewPropertyDetails(store.PropertyByID("1"), store.Contacts(), store.Requirements("1"))
}

func TestPropertyDetailsPlaceholder(t *testing.T) {
	d := NewPropertyDetails(nil, nil, nil)

	if d.HasProperty() {
		t.Error("nil property should render the placeholder state")
	}
	if d.ActiveSection() != SectionOverview {
		t.Errorf("default section = %q", d.ActiveSection())
	}
}

func TestSectionSwitchKeepsIndependentState(t *testing.T) {
	d := newTestDetails(t)

	d.Requirements.SetQuery("survey")
	d.ToggleAddresses()
	d.ToggleContactMenu("1")

	if !d.SetSection(SectionClosing) {
		t.Fatal("section switch failed")
	}

	if !d.ShowAddresses() {
		t.Error("section switch reset the address expansion")
	}
	if !d.ContactMenu.IsOpen("1") {
		t.Error("section switch closed the contact popover")
	}
	if got := d.Requirements.Visible(); len(got) != 1 || got[0].ID != "2" {
		t.Errorf("section switch reset the requirement search: %+v", got)
	}
}

func TestSetSectionRejectsUnknown(t *testing.T) {
	d := newTestDetails(t)

	if d.SetSection("Nonsense") {
		t.Error("unknown section accepted")
	}
	if d.ActiveSection() != SectionOverview {
		t.Errorf("unknown section changed state to %q", d.ActiveSection())
	}
	if !d.SetSection("closing") {
		t.Error("section match should be case-insensitive")
	}
	if d.ActiveSection() != SectionClosing {
		t.Errorf("ActiveSection() = %q", d.ActiveSection())
	}
}

func TestContactMenuSingleOpen(t *testing.T) {
	d := newTestDetails(t)

	d.ToggleContactMenu("1")
	d.ToggleContactMenu("2")

	if d.ContactMenu.IsOpen("1") {
		t.Error("opening a contact menu should close the previous one")
	}
	if !d.ContactMenu.IsOpen("2") {
		t.Error("contact menu 2 not open")
	}

	// Toggling the open menu closes it.
	d.ToggleContactMenu("2")
	if d.ContactMenu.OpenKey() != "" {
		t.Error("toggle should close the open menu")
	}
}

func TestRequirementListFilters(t *testing.T) {
	store := fixtures.Default()
	l := NewRequirementList(store.Requirements("1"))

	l.SetQuery("R123")
	if got := len(l.Visible()); got != 3 {
		t.Errorf("code prefix search matched %d of 3", got)
	}

	l.SetQuery("inspection")
	got := l.Visible()
	if len(got) != 1 || got[0].ID != "3" {
		t.Errorf("details search returned %+v", got)
	}

	l.SetQuery("")
	l.SetStatus(models.RequirementPending)
	for _, r := range l.Visible() {
		if r.Status != models.RequirementPending {
			t.Errorf("status filter leaked requirement %s with status %s", r.ID, r.Status)
		}
	}
}

func TestRequirementExpansion(t *testing.T) {
	l := NewRequirementList(fixtures.Default().Requirements("1"))

	l.ToggleExpanded("1")
	if !l.IsExpanded("1") || l.IsExpanded("2") {
		t.Error("expansion state wrong after toggle")
	}
	l.ToggleExpanded("1")
	if l.IsExpanded("1") {
		t.Error("expansion should collapse on second toggle")
	}
}

func TestPhoneNumbers(t *testing.T) {
	d := newTestDetails(t)
	c := d.ContactByID("2")
	if c == nil {
		t.Fatal("contact 2 missing")
	}

	numbers := d.PhoneNumbers(c)
	if len(numbers) != 2 {
		t.Fatalf("expected 2 numbers, got %d", len(numbers))
	}
	if numbers[0].Number != c.Phone || !numbers[0].IsPrimary {
		t.Errorf("primary number = %+v", numbers[0])
	}
	if numbers[1].Number != "3333334423" {
		t.Errorf("frequent number = %q", numbers[1].Number)
	}
}
