package models

import "time"

// Notification represents a workspace notification pushed to connected
// clients
type Notification struct {
	ID        string                 `json:"id"`
	Type      string                 `json:"type"` // info, success, warning, error
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	IsRead    bool                   `json:"is_read"`
	Priority  Priority               `json:"priority,omitempty"`
	Category  string                 `json:"category,omitempty"`
	Data      map[string]interface{} `json:"data,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}
