package views

import (
	"strings"

	"entitled/models"
)

// RequirementList is the view-state controller for the requirement
// table on the property workspace
type RequirementList struct {
	requirements []models.Requirement
	query        string
	status       models.RequirementStatus
	expanded     map[string]bool
	showBoiler   bool
}

// NewRequirementList creates a controller over a working copy of the
// given requirements
func NewRequirementList(reqs []models.Requirement) *RequirementList {
	return &RequirementList{
		requirements: append([]models.Requirement(nil), reqs...),
		expanded:     make(map[string]bool),
	}
}

// SetQuery updates the search query
func (l *RequirementList) SetQuery(q string) { l.query = q }

// SetStatus restricts the list to one status; the zero value clears the
// restriction
func (l *RequirementList) SetStatus(s models.RequirementStatus) { l.status = s }

// ToggleBoilerplate flips whether boilerplate requirements are shown
func (l *RequirementList) ToggleBoilerplate() { l.showBoiler = !l.showBoiler }

// ShowBoilerplate reports the boilerplate toggle state
func (l *RequirementList) ShowBoilerplate() bool { return l.showBoiler }

// ToggleExpanded flips the expanded state of one requirement row
func (l *RequirementList) ToggleExpanded(id string) {
	l.expanded[id] = !l.expanded[id]
}

// IsExpanded reports whether a requirement row is expanded
func (l *RequirementList) IsExpanded(id string) bool { return l.expanded[id] }

// Visible derives the displayed list: case-insensitive substring match
// of the query against code and details, optionally restricted to one
// status. Order is preserved.
func (l *RequirementList) Visible() []models.Requirement {
	q := strings.ToLower(l.query)
	out := make([]models.Requirement, 0, len(l.requirements))
	for _, r := range l.requirements {
		if q != "" &&
			!strings.Contains(strings.ToLower(r.Code), q) &&
			!strings.Contains(strings.ToLower(r.Details), q) {
			continue
		}
		if l.status != "" && r.Status != l.status {
			continue
		}
		out = append(out, r)
	}
	return out
}

// MarkStatus sets the status of one requirement in the working copy
func (l *RequirementList) MarkStatus(id string, s models.RequirementStatus) bool {
	for i := range l.requirements {
		if l.requirements[i].ID == id {
			l.requirements[i].Status = s
			return true
		}
	}
	return false
}
