package models

// Contact represents a party involved in a property transaction
type Contact struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Email            string   `json:"email"`
	Phone            string   `json:"phone"`
	Role             string   `json:"role"` // Attorney, Realtor, Surveyor, ...
	IsPrimary        bool     `json:"is_primary"`
	Notes            string   `json:"notes,omitempty"`
	Company          string   `json:"company,omitempty"`
	Title            string   `json:"title,omitempty"`
	Address          string   `json:"address,omitempty"`
	City             string   `json:"city,omitempty"`
	State            string   `json:"state,omitempty"`
	Zip              string   `json:"zip,omitempty"`
	Country          string   `json:"country,omitempty"`
	Website          string   `json:"website,omitempty"`
	Status           string   `json:"status,omitempty"` // active, inactive, prospect
	Source           string   `json:"source,omitempty"`
	Tags             []string `json:"tags,omitempty"`
	LastContactDate  string   `json:"last_contact_date,omitempty"`
	NextFollowUpDate string   `json:"next_follow_up_date,omitempty"`
	CreatedAt        string   `json:"created_at,omitempty"`
	UpdatedAt        string   `json:"updated_at,omitempty"`
}

// Clone returns a deep copy of the contact
func (c Contact) Clone() Contact {
	out := c
	if c.Tags != nil {
		out.Tags = append([]string(nil), c.Tags...)
	}
	return out
}

// PhoneNumber is a single reachable number for a contact, as shown in
// the contact popover
type PhoneNumber struct {
	Number    string `json:"number"`
	Type      string `json:"type"` // Recent, Frequent
	IsPrimary bool   `json:"is_primary"`
}
