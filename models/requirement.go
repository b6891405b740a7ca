package models

// RequirementStatus represents the workflow state of a title requirement
type RequirementStatus string

const (
	RequirementPending   RequirementStatus = "pending"
	RequirementCompleted RequirementStatus = "completed"
	RequirementWaived    RequirementStatus = "waived"
	RequirementDeleted   RequirementStatus = "deleted"
)

// Requirement represents a title requirement or exception attached to a
// property file
type Requirement struct {
	ID            string            `json:"id"`
	PropertyID    string            `json:"property_id"`
	Number        string            `json:"number"`
	Details       string            `json:"details"`
	Code          string            `json:"code"`
	Instrument    string            `json:"instrument"`
	OlLp          string            `json:"ol_lp"` // owner's/loan policy classification
	Status        RequirementStatus `json:"status,omitempty"`
	Priority      Priority          `json:"priority,omitempty"`
	AssignedTo    string            `json:"assigned_to,omitempty"`
	DueDate       string            `json:"due_date,omitempty"`
	CompletedDate string            `json:"completed_date,omitempty"`
	Category      string            `json:"category,omitempty"`
	IsBoilerplate bool              `json:"is_boilerplate"`
	IsCustom      bool              `json:"is_custom"`
	CreatedAt     string            `json:"created_at,omitempty"`
	UpdatedAt     string            `json:"updated_at,omitempty"`
}
