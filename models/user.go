package models

import "time"

// User represents an account in the workspace
type User struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"` // "admin", "user", "viewer"
	Language    string    `json:"language"`
	Theme       string    `json:"theme"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	LastLoginAt time.Time `json:"last_login_at,omitempty"`
}

// Preferences captures per-user view preferences that survive across
// sessions
type Preferences struct {
	UserID          string   `json:"user_id"`
	Theme           string   `json:"theme"`
	Language        string   `json:"language"`
	DefaultCategory string   `json:"default_category"`
	EmailsPerPage   int      `json:"emails_per_page"`
	OpenTabIDs      []string `json:"open_tab_ids,omitempty"`
	ShowPreview     bool     `json:"show_preview"`
	AutoMarkAsRead  bool     `json:"auto_mark_as_read"`
}

// DefaultPreferences returns the preferences applied to a user who has
// never saved any
func DefaultPreferences(userID string) *Preferences {
	return &Preferences{
		UserID:          userID,
		Theme:           "light",
		Language:        "en",
		DefaultCategory: "All Emails",
		EmailsPerPage:   50,
		ShowPreview:     true,
	}
}
