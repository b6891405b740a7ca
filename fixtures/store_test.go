package fixtures

import (
	"testing"

	"entitled/models"
)

func TestDefaultDatasetShape(t *testing.T) {
	store := Default()

	if got := len(store.Emails()); got != 5 {
		t.Errorf("expected 5 emails, got %d", got)
	}
	if got := len(store.Properties()); got != 3 {
		t.Errorf("expected 3 properties, got %d", got)
	}
	if got := len(store.Contacts()); got != 4 {
		t.Errorf("expected 4 contacts, got %d", got)
	}
	if got := len(store.Requirements("1")); got != 3 {
		t.Errorf("expected 3 requirements for property 1, got %d", got)
	}
	if got := len(store.Tabs()); got != 2 {
		t.Errorf("expected 2 tabs, got %d", got)
	}
}

func TestEmailsReturnsCopies(t *testing.T) {
	store := Default()

	first := store.Emails()
	first[0].IsStarred = !first[0].IsStarred
	first[0].Tags[0] = "MUTATED"
	first[0].Attachments[0].Name = "mutated.pdf"

	second := store.Emails()
	if second[0].IsStarred == first[0].IsStarred {
		t.Error("mutating a result leaked into the store")
	}
	if second[0].Tags[0] == "MUTATED" {
		t.Error("mutating a result's tags leaked into the store")
	}
	if second[0].Attachments[0].Name == "mutated.pdf" {
		t.Error("mutating a result's attachments leaked into the store")
	}
}

func TestLookupsByID(t *testing.T) {
	store := Default()

	if e := store.EmailByID("1"); e == nil || e.Subject != "Closing Confirmation" {
		t.Errorf("EmailByID(1) = %+v", e)
	}
	if e := store.EmailByID("does-not-exist"); e != nil {
		t.Errorf("expected nil for missing email, got %+v", e)
	}
	if p := store.PropertyByID("3"); p == nil || p.Status != models.PropertyOffMarket {
		t.Errorf("PropertyByID(3) = %+v", p)
	}
	if c := store.ContactByID("nope"); c != nil {
		t.Errorf("expected nil for missing contact, got %+v", c)
	}
}

func TestAttachmentInvariant(t *testing.T) {
	for _, e := range Default().Emails() {
		if !e.CheckAttachments() {
			t.Errorf("email %s: has_attachments=%v but %d attachments",
				e.ID, e.HasAttachments, len(e.Attachments))
		}
	}
}

func TestRequirementsFilterByProperty(t *testing.T) {
	store := Default()

	all := store.Requirements("")
	if len(all) != 3 {
		t.Fatalf("expected 3 requirements total, got %d", len(all))
	}
	if got := store.Requirements("2"); len(got) != 0 {
		t.Errorf("expected no requirements for property 2, got %d", len(got))
	}
}
