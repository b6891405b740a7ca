package models

// Priority levels used by emails and requirements
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// EmailStatus represents the workflow state of an email
type EmailStatus string

const (
	EmailPending   EmailStatus = "pending"
	EmailCompleted EmailStatus = "completed"
	EmailArchived  EmailStatus = "archived"
)

// Email represents a message in the transaction inbox
type Email struct {
	ID             string       `json:"id"`
	Sender         string       `json:"sender"`
	Recipient      string       `json:"recipient"`
	Cc             []string     `json:"cc,omitempty"`
	Subject        string       `json:"subject"`
	Content        string       `json:"content"`
	Timestamp      string       `json:"timestamp"` // display string, not a normalized instant
	IsRead         bool         `json:"is_read"`
	IsStarred      bool         `json:"is_starred"`
	IsEncrypted    bool         `json:"is_encrypted"`
	HasAttachments bool         `json:"has_attachments"`
	Priority       Priority     `json:"priority,omitempty"`
	Status         EmailStatus  `json:"status,omitempty"`
	Category       string       `json:"category,omitempty"`
	Tags           []string     `json:"tags,omitempty"`
	Attachments    []Attachment `json:"attachments,omitempty"`
}

// Attachment represents a file attached to an email
type Attachment struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Size     string `json:"size"` // human-readable, e.g. "245KB"
	URL      string `json:"url"`
	MimeType string `json:"mime_type,omitempty"`
}

// HasTag reports whether the email carries the given tag
func (e *Email) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the email so callers may mutate the
// result without touching the source record
func (e Email) Clone() Email {
	out := e
	if e.Cc != nil {
		out.Cc = append([]string(nil), e.Cc...)
	}
	if e.Tags != nil {
		out.Tags = append([]string(nil), e.Tags...)
	}
	if e.Attachments != nil {
		out.Attachments = append([]Attachment(nil), e.Attachments...)
	}
	return out
}

// CheckAttachments verifies the HasAttachments flag agrees with the
// attachment list. The fixtures are expected to satisfy this; data from
// other sources may not.
func (e *Email) CheckAttachments() bool {
	if e.HasAttachments {
		return len(e.Attachments) > 0
	}
	return len(e.Attachments) == 0
}
