package models

// Tab represents an open workspace tab in the header bar
type Tab struct {
	ID           string `json:"id"`
	Label        string `json:"label"`
	IsActive     bool   `json:"is_active"`
	PropertyID   string `json:"property_id,omitempty"`
	Type         string `json:"type,omitempty"` // property, email, contact, document
	Badge        string `json:"badge,omitempty"`
	IsClosable   bool   `json:"is_closable"`
	Order        int    `json:"order"`
	LastAccessed string `json:"last_accessed,omitempty"`
}
