package views

import (
	"strings"

	"entitled/models"
)

// Sections of the property workspace detail pane
const (
	SectionOverview   = "Overview"
	SectionCommitment = "Commitment"
	SectionClosing    = "Closing"
	SectionRecording  = "Recording"
	SectionPolicy     = "Policy"
)

// PropertySections lists the detail-pane sections in display order
var PropertySections = []string{
	SectionOverview,
	SectionCommitment,
	SectionClosing,
	SectionRecording,
	SectionPolicy,
}

// SectionTabs tracks which detail-pane section is selected. Selecting
// a section never touches any sibling state.
type SectionTabs struct {
	active string
}

// Active returns the selected section
func (t *SectionTabs) Active() string {
	if t.active == "" {
		return SectionOverview
	}
	return t.active
}

// Select picks a section by name, case-insensitively. Unknown sections
// are ignored so a stale request cannot blank the pane.
func (t *SectionTabs) Select(s string) bool {
	for _, known := range PropertySections {
		if strings.EqualFold(known, s) {
			t.active = known
			return true
		}
	}
	return false
}

// PropertyDetails composes the view state of the property workspace:
// the active section tab, the address expansion, the contact popover
// and the requirement table. Each piece of state is independent;
// switching sections does not reset the others.
type PropertyDetails struct {
	property      *models.Property
	contacts      []models.Contact
	Requirements  *RequirementList
	ContactMenu   Popover
	Sections      SectionTabs
	showAddresses bool
}

// NewPropertyDetails creates the composition for one property. A nil
// property is allowed and renders as the placeholder state.
func NewPropertyDetails(p *models.Property, contacts []models.Contact, reqs []models.Requirement) *PropertyDetails {
	return &PropertyDetails{
		property:     p,
		contacts:     append([]models.Contact(nil), contacts...),
		Requirements: NewRequirementList(reqs),
	}
}

// HasProperty reports whether a property is selected; when false the
// pane renders its placeholder
func (d *PropertyDetails) HasProperty() bool { return d.property != nil }

// Property returns the selected property, or nil
func (d *PropertyDetails) Property() *models.Property { return d.property }

// Contacts returns the transaction contacts
func (d *PropertyDetails) Contacts() []models.Contact {
	return append([]models.Contact(nil), d.contacts...)
}

// ContactByID returns the contact with the given id, or nil
func (d *PropertyDetails) ContactByID(id string) *models.Contact {
	for i := range d.contacts {
		if d.contacts[i].ID == id {
			return &d.contacts[i]
		}
	}
	return nil
}

// ActiveSection returns the selected section tab
func (d *PropertyDetails) ActiveSection() string { return d.Sections.Active() }

// SetSection selects which content block renders
func (d *PropertyDetails) SetSection(s string) bool {
	return d.Sections.Select(s)
}

// ToggleAddresses flips the related-addresses expansion
func (d *PropertyDetails) ToggleAddresses() { d.showAddresses = !d.showAddresses }

// ShowAddresses reports the related-addresses expansion state
func (d *PropertyDetails) ShowAddresses() bool { return d.showAddresses }

// ToggleContactMenu opens the popover for one contact, closing any
// other open popover in this view
func (d *PropertyDetails) ToggleContactMenu(contactID string) {
	d.ContactMenu.Toggle(contactID)
}

// PhoneNumbers returns the numbers shown in a contact popover
func (d *PropertyDetails) PhoneNumbers(c *models.Contact) []models.PhoneNumber {
	digits := strings.NewReplacer("(", "", ")", "", "-", "", " ", "").Replace(c.Phone)
	return []models.PhoneNumber{
		{Number: c.Phone, Type: "Recent", IsPrimary: c.IsPrimary},
		{Number: digits, Type: "Frequent", IsPrimary: false},
	}
}
