// Package views holds the in-memory view-state controllers behind the
// workspace panes. Each controller owns a working copy of its data and
// derives the displayed list from the current search, category and
// filter state; mutations are optimistic and never reach the fixture
// source.
package views

import (
	"strings"

	"entitled/models"
)

// Email list categories shown in the triage pane sidebar
const (
	CategoryAll             = "All Emails"
	CategoryUnsorted        = "Unsorted"
	CategoryHighPriority    = "High Priority"
	CategoryWithAttachments = "With Attachments"
)

// Categories returns the selectable categories in sidebar order
func Categories() []string {
	return []string{CategoryAll, CategoryHighPriority, CategoryWithAttachments, CategoryUnsorted}
}

// EmailList is the view-state controller for the email triage pane. It
// holds a working copy of the emails; star/read toggles mutate that
// copy in place and archive/delete remove from it, leaving the source
// dataset untouched.
type EmailList struct {
	emails     []models.Email
	query      string
	category   string
	filter     models.EmailFilter
	selectedID string
}

// NewEmailList creates a controller over a working copy of the given
// emails
func NewEmailList(emails []models.Email) *EmailList {
	return &EmailList{
		emails:   append([]models.Email(nil), emails...),
		category: CategoryAll,
	}
}

// SetEmails replaces the working copy, keeping the current view state
func (l *EmailList) SetEmails(emails []models.Email) {
	l.emails = append([]models.Email(nil), emails...)
}

// SetQuery updates the search query
func (l *EmailList) SetQuery(q string) { l.query = q }

// Query returns the current search query
func (l *EmailList) Query() string { return l.query }

// SetCategory selects the active category. Categories are mutually
// exclusive; selecting one replaces the previous selection.
func (l *EmailList) SetCategory(c string) { l.category = c }

// Category returns the active category
func (l *EmailList) Category() string { return l.category }

// ToggleAttachmentsFilter flips the has-attachments filter
func (l *EmailList) ToggleAttachmentsFilter() {
	l.filter.HasAttachments = !l.filter.HasAttachments
}

// ToggleCalendarFilter flips the calendar-items filter
func (l *EmailList) ToggleCalendarFilter() {
	l.filter.CalendarItems = !l.filter.CalendarItems
}

// Filter returns the current filter state
func (l *EmailList) Filter() models.EmailFilter { return l.filter }

// Select records the selected email id; an unknown id clears the
// selection
func (l *EmailList) Select(id string) {
	for _, e := range l.emails {
		if e.ID == id {
			l.selectedID = id
			return
		}
	}
	l.selectedID = ""
}

// Selected returns the selected email, or nil when nothing is selected
func (l *EmailList) Selected() *models.Email {
	for i := range l.emails {
		if l.emails[i].ID == l.selectedID {
			return &l.emails[i]
		}
	}
	return nil
}

// Visible derives the displayed list: an email is included iff it
// matches the search query, the attachment filter and the active
// category, all ANDed. The derivation preserves the working copy's
// order and never reorders items.
func (l *EmailList) Visible() []models.Email {
	out := make([]models.Email, 0, len(l.emails))
	for _, e := range l.emails {
		if l.matchesSearch(&e) && l.matchesAttachments(&e) && l.matchesCategory(&e) {
			out = append(out, e)
		}
	}
	return out
}

// matchesSearch is a case-insensitive substring match over subject,
// sender and content; an empty query matches everything
func (l *EmailList) matchesSearch(e *models.Email) bool {
	if l.query == "" {
		return true
	}
	q := strings.ToLower(l.query)
	return strings.Contains(strings.ToLower(e.Subject), q) ||
		strings.Contains(strings.ToLower(e.Sender), q) ||
		strings.Contains(strings.ToLower(e.Content), q)
}

func (l *EmailList) matchesAttachments(e *models.Email) bool {
	return !l.filter.HasAttachments || e.HasAttachments
}

func (l *EmailList) matchesCategory(e *models.Email) bool {
	switch l.category {
	case CategoryAll, "":
		return true
	case CategoryHighPriority:
		return e.Priority == models.PriorityHigh
	case CategoryWithAttachments:
		return e.HasAttachments
	default:
		// Unknown categories (including Unsorted) select nothing
		return false
	}
}

// ToggleStar flips the starred flag on the email with the given id
func (l *EmailList) ToggleStar(id string) bool {
	for i := range l.emails {
		if l.emails[i].ID == id {
			l.emails[i].IsStarred = !l.emails[i].IsStarred
			return true
		}
	}
	return false
}

// ToggleRead flips the read flag on the email with the given id
func (l *EmailList) ToggleRead(id string) bool {
	for i := range l.emails {
		if l.emails[i].ID == id {
			l.emails[i].IsRead = !l.emails[i].IsRead
			return true
		}
	}
	return false
}

// Archive removes the email from the working copy. The record still
// exists in the source dataset; only this view forgets it.
func (l *EmailList) Archive(id string) bool { return l.remove(id) }

// Delete removes the email from the working copy
func (l *EmailList) Delete(id string) bool { return l.remove(id) }

func (l *EmailList) remove(id string) bool {
	for i := range l.emails {
		if l.emails[i].ID == id {
			l.emails = append(l.emails[:i], l.emails[i+1:]...)
			if l.selectedID == id {
				l.selectedID = ""
			}
			return true
		}
	}
	return false
}

// Len returns the size of the working copy, independent of filters
func (l *EmailList) Len() int { return len(l.emails) }
