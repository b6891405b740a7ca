package views

import (
	"time"

	"github.com/google/uuid"

	"entitled/models"
)

// TabBar is the view-state controller for the workspace tabs in the
// header. Exactly one tab is active at a time.
type TabBar struct {
	tabs []models.Tab
}

// NewTabBar creates a controller over a working copy of the given tabs.
// When no tab is marked active, the first one becomes active.
func NewTabBar(tabs []models.Tab) *TabBar {
	b := &TabBar{tabs: append([]models.Tab(nil), tabs...)}
	if b.Active() == nil && len(b.tabs) > 0 {
		b.tabs[0].IsActive = true
	}
	return b
}

// Tabs returns the tabs in display order
func (b *TabBar) Tabs() []models.Tab {
	return append([]models.Tab(nil), b.tabs...)
}

// Active returns the active tab, or nil when the bar is empty
func (b *TabBar) Active() *models.Tab {
	for i := range b.tabs {
		if b.tabs[i].IsActive {
			return &b.tabs[i]
		}
	}
	return nil
}

// Activate makes the tab with the given id active and deactivates the
// rest. Activating an unknown id is a no-op.
func (b *TabBar) Activate(id string) bool {
	found := false
	for i := range b.tabs {
		if b.tabs[i].ID == id {
			found = true
		}
	}
	if !found {
		return false
	}
	for i := range b.tabs {
		b.tabs[i].IsActive = b.tabs[i].ID == id
	}
	return true
}

// Add appends a new closable tab and returns it
func (b *TabBar) Add(label, propertyID string) models.Tab {
	tab := models.Tab{
		ID:           uuid.New().String(),
		Label:        label,
		PropertyID:   propertyID,
		Type:         "property",
		IsClosable:   true,
		Order:        len(b.tabs) + 1,
		LastAccessed: time.Now().UTC().Format(time.RFC3339),
	}
	b.tabs = append(b.tabs, tab)
	return tab
}

// Close removes the tab with the given id. The last remaining tab
// cannot be closed; closing the active tab activates the first
// remaining one.
func (b *TabBar) Close(id string) bool {
	if len(b.tabs) <= 1 {
		return false
	}
	for i := range b.tabs {
		if b.tabs[i].ID != id {
			continue
		}
		if !b.tabs[i].IsClosable {
			return false
		}
		wasActive := b.tabs[i].IsActive
		b.tabs = append(b.tabs[:i], b.tabs[i+1:]...)
		if wasActive && len(b.tabs) > 0 {
			b.Activate(b.tabs[0].ID)
		}
		return true
	}
	return false
}
