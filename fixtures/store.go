// Package fixtures holds the bundled transaction dataset that stands in
// for a real backend. A Store is constructed explicitly and passed into
// the API facade so tests can supply isolated datasets without
// cross-test pollution.
package fixtures

import (
	"sync"

	"entitled/models"
)

// Store is an in-memory collection of fixture records. All read methods
// return deep copies; the records a Store holds are never handed out by
// reference, so callers may mutate results freely.
type Store struct {
	mu            sync.RWMutex
	emails        []models.Email
	properties    []models.Property
	contacts      []models.Contact
	requirements  []models.Requirement
	documents     []models.Document
	tabs          []models.Tab
	filterGroups  map[string][]models.FilterOption
	notifications []models.Notification
}

// Dataset bundles the collections used to construct a Store
type Dataset struct {
	Emails        []models.Email
	Properties    []models.Property
	Contacts      []models.Contact
	Requirements  []models.Requirement
	Documents     []models.Document
	Tabs          []models.Tab
	FilterGroups  map[string][]models.FilterOption
	Notifications []models.Notification
}

// New constructs a Store over the given dataset
func New(ds Dataset) *Store {
	if ds.FilterGroups == nil {
		ds.FilterGroups = make(map[string][]models.FilterOption)
	}
	return &Store{
		emails:        ds.Emails,
		properties:    ds.Properties,
		contacts:      ds.Contacts,
		requirements:  ds.Requirements,
		documents:     ds.Documents,
		tabs:          ds.Tabs,
		filterGroups:  ds.FilterGroups,
		notifications: ds.Notifications,
	}
}

// Emails returns a deep copy of every email, preserving insertion order
func (s *Store) Emails() []models.Email {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Email, len(s.emails))
	for i, e := range s.emails {
		out[i] = e.Clone()
	}
	return out
}

// EmailByID returns a copy of the matching email, or nil when no email
// has the given id
func (s *Store) EmailByID(id string) *models.Email {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.emails {
		if e.ID == id {
			clone := e.Clone()
			return &clone
		}
	}
	return nil
}

// Properties returns a deep copy of every property
func (s *Store) Properties() []models.Property {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Property, len(s.properties))
	for i, p := range s.properties {
		out[i] = p.Clone()
	}
	return out
}

// PropertyByID returns a copy of the matching property, or nil
func (s *Store) PropertyByID(id string) *models.Property {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.properties {
		if p.ID == id {
			clone := p.Clone()
			return &clone
		}
	}
	return nil
}

// Contacts returns a deep copy of every contact
func (s *Store) Contacts() []models.Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Contact, len(s.contacts))
	for i, c := range s.contacts {
		out[i] = c.Clone()
	}
	return out
}

// ContactByID returns a copy of the matching contact, or nil
func (s *Store) ContactByID(id string) *models.Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.contacts {
		if c.ID == id {
			clone := c.Clone()
			return &clone
		}
	}
	return nil
}

// Requirements returns the requirements for a property, or all
// requirements when propertyID is empty
func (s *Store) Requirements(propertyID string) []models.Requirement {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Requirement, 0, len(s.requirements))
	for _, r := range s.requirements {
		if propertyID == "" || r.PropertyID == propertyID {
			out = append(out, r)
		}
	}
	return out
}

// Documents returns a deep copy of every document
func (s *Store) Documents() []models.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Document, len(s.documents))
	for i, d := range s.documents {
		out[i] = d.Clone()
	}
	return out
}

// Tabs returns a copy of the workspace tabs
func (s *Store) Tabs() []models.Tab {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]models.Tab(nil), s.tabs...)
}

// FilterGroups returns a copy of the named filter option lists
func (s *Store) FilterGroups() map[string][]models.FilterOption {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string][]models.FilterOption, len(s.filterGroups))
	for name, opts := range s.filterGroups {
		out[name] = append([]models.FilterOption(nil), opts...)
	}
	return out
}

// Notifications returns a copy of the seeded notifications
func (s *Store) Notifications() []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]models.Notification(nil), s.notifications...)
}
