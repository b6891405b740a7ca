package models

import "fmt"

// FilterOption is a single selectable entry in a filter option group
type FilterOption struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	IsSelected bool   `json:"is_selected"`
	Count      int    `json:"count,omitempty"`
	Value      string `json:"value,omitempty"`
	Color      string `json:"color,omitempty"`
}

// Time range values accepted by EmailFilter
const (
	TimeRangePastYear  = "past-year"
	TimeRangePastMonth = "past-month"
	TimeRangePastWeek  = "past-week"
	TimeRangeToday     = "today"
)

// EmailFilter describes which predicates the email facade applies.
// Predicates combine with AND semantics; the zero value is a no-op.
type EmailFilter struct {
	HasAttachments bool     `json:"has_attachments"`
	CalendarItems  bool     `json:"calendar_items"`
	TimeRange      string   `json:"time_range,omitempty"`
	Contacts       []string `json:"contacts,omitempty"`
}

// Validate checks the filter configuration at construction time
func (f *EmailFilter) Validate() error {
	switch f.TimeRange {
	case "", TimeRangePastYear, TimeRangePastMonth, TimeRangePastWeek, TimeRangeToday:
	default:
		return fmt.Errorf("invalid time range %q", f.TimeRange)
	}
	for _, c := range f.Contacts {
		if c == "" {
			return fmt.Errorf("empty contact filter entry")
		}
	}
	return nil
}

// IsZero reports whether the filter applies no predicates at all
func (f *EmailFilter) IsZero() bool {
	return f == nil || (!f.HasAttachments && !f.CalendarItems && len(f.Contacts) == 0)
}

// PropertyFilter describes which predicates the property facade applies
type PropertyFilter struct {
	PropertyTypes []string         `json:"property_types,omitempty"`
	Statuses      []PropertyStatus `json:"statuses,omitempty"`
	City          string           `json:"city,omitempty"`
	MinPrice      float64          `json:"min_price,omitempty"`
	MaxPrice      float64          `json:"max_price,omitempty"`
}

// Validate checks the filter configuration at construction time
func (f *PropertyFilter) Validate() error {
	for _, t := range f.PropertyTypes {
		switch t {
		case "residential", "commercial", "land":
		default:
			return fmt.Errorf("invalid property type %q", t)
		}
	}
	for _, s := range f.Statuses {
		switch s {
		case PropertyActive, PropertyPending, PropertySold, PropertyOffMarket:
		default:
			return fmt.Errorf("invalid property status %q", s)
		}
	}
	if f.MinPrice < 0 || f.MaxPrice < 0 {
		return fmt.Errorf("price bounds must be non-negative")
	}
	if f.MaxPrice > 0 && f.MinPrice > f.MaxPrice {
		return fmt.Errorf("min price %v exceeds max price %v", f.MinPrice, f.MaxPrice)
	}
	return nil
}

// Matches reports whether the property satisfies every configured predicate
func (f *PropertyFilter) Matches(p *Property) bool {
	if f == nil {
		return true
	}
	if len(f.PropertyTypes) > 0 && !containsString(f.PropertyTypes, p.PropertyType) {
		return false
	}
	if len(f.Statuses) > 0 {
		found := false
		for _, s := range f.Statuses {
			if s == p.Status {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.City != "" && f.City != p.City {
		return false
	}
	if f.MinPrice > 0 && p.SalePrice < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && p.SalePrice > f.MaxPrice {
		return false
	}
	return true
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
