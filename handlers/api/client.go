// handlers/api/client.go
package api

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"entitled/fixtures"
	"entitled/models"
	"entitled/utils"
)

// Tag that marks an email as a calendar item
const calendarTag = "CALENDAR"

// Latency configures the artificial delays the facade applies per
// operation class, standing in for real network round-trips
type Latency struct {
	List   time.Duration
	Lookup time.Duration
	Action time.Duration
}

// DefaultLatency mirrors the delays of the original service layer
func DefaultLatency() Latency {
	return Latency{
		List:   100 * time.Millisecond,
		Lookup: 50 * time.Millisecond,
		Action: 300 * time.Millisecond,
	}
}

// Ack acknowledges a performed action
type Ack struct {
	ID     string    `json:"id"`
	Action string    `json:"action"`
	Status string    `json:"status"`
	Time   time.Time `json:"time"`
}

// Client is the facade over the fixture store. Every operation is
// context-aware, simulates latency and resolves with freshly-copied
// records, never the store's own objects.
type Client struct {
	store   *fixtures.Store
	source  EmailSource
	latency Latency
}

// NewClient creates a facade over the given store using the fixture
// email source
func NewClient(store *fixtures.Store, latency Latency) *Client {
	return &Client{
		store:   store,
		source:  NewFixtureSource(store),
		latency: latency,
	}
}

// WithSource swaps the email source, e.g. for a live IMAP backend
func (c *Client) WithSource(src EmailSource) *Client {
	c.source = src
	return c
}

// Close releases the underlying source
func (c *Client) Close() error {
	return c.source.Close()
}

// delay sleeps for the artificial latency unless the context is
// cancelled first
func (c *Client) delay(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// GetEmails returns the emails passing the given filter. Predicates
// apply in order (attachments, calendar tag, contacts) with AND
// semantics; a nil or zero filter is a no-op.
func (c *Client) GetEmails(ctx context.Context, filter *models.EmailFilter) ([]models.Email, error) {
	if err := c.delay(ctx, c.latency.List); err != nil {
		return nil, err
	}

	emails, err := c.source.Emails(ctx)
	if err != nil {
		return nil, err
	}
	if filter.IsZero() {
		return emails, nil
	}

	out := make([]models.Email, 0, len(emails))
	for _, e := range emails {
		if filter.HasAttachments && !e.HasAttachments {
			continue
		}
		if filter.CalendarItems && !e.HasTag(calendarTag) {
			continue
		}
		if len(filter.Contacts) > 0 && !matchesAnyContact(&e, filter.Contacts) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

// matchesAnyContact reports whether the sender or recipient contains
// any of the contact substrings, case-insensitively
func matchesAnyContact(e *models.Email, contacts []string) bool {
	sender := strings.ToLower(e.Sender)
	recipient := strings.ToLower(e.Recipient)
	for _, contact := range contacts {
		needle := strings.ToLower(contact)
		if strings.Contains(sender, needle) || strings.Contains(recipient, needle) {
			return true
		}
	}
	return false
}

// GetEmailByID returns the matching email, or (nil, nil) when no email
// has the given id
func (c *Client) GetEmailByID(ctx context.Context, id string) (*models.Email, error) {
	if err := c.delay(ctx, c.latency.Lookup); err != nil {
		return nil, err
	}
	return c.source.EmailByID(ctx, id)
}

// GetProperties returns the properties passing the given filter
func (c *Client) GetProperties(ctx context.Context, filter *models.PropertyFilter) ([]models.Property, error) {
	if err := c.delay(ctx, c.latency.List); err != nil {
		return nil, err
	}

	properties := c.store.Properties()
	if filter == nil {
		return properties, nil
	}
	out := make([]models.Property, 0, len(properties))
	for _, p := range properties {
		if filter.Matches(&p) {
			out = append(out, p)
		}
	}
	return out, nil
}

// GetPropertyByID returns the matching property, or (nil, nil)
func (c *Client) GetPropertyByID(ctx context.Context, id string) (*models.Property, error) {
	if err := c.delay(ctx, c.latency.Lookup); err != nil {
		return nil, err
	}
	return c.store.PropertyByID(id), nil
}

// GetContacts returns every contact
func (c *Client) GetContacts(ctx context.Context) ([]models.Contact, error) {
	if err := c.delay(ctx, c.latency.List); err != nil {
		return nil, err
	}
	return c.store.Contacts(), nil
}

// GetContactByID returns the matching contact, or (nil, nil)
func (c *Client) GetContactByID(ctx context.Context, id string) (*models.Contact, error) {
	if err := c.delay(ctx, c.latency.Lookup); err != nil {
		return nil, err
	}
	return c.store.ContactByID(id), nil
}

// GetRequirements returns the requirements for one property, or all of
// them when propertyID is empty
func (c *Client) GetRequirements(ctx context.Context, propertyID string) ([]models.Requirement, error) {
	if err := c.delay(ctx, c.latency.List); err != nil {
		return nil, err
	}
	return c.store.Requirements(propertyID), nil
}

// GetDocuments returns every transaction document
func (c *Client) GetDocuments(ctx context.Context) ([]models.Document, error) {
	if err := c.delay(ctx, c.latency.List); err != nil {
		return nil, err
	}
	return c.store.Documents(), nil
}

// GetTabs returns the workspace tabs
func (c *Client) GetTabs(ctx context.Context) ([]models.Tab, error) {
	if err := c.delay(ctx, c.latency.Lookup); err != nil {
		return nil, err
	}
	return c.store.Tabs(), nil
}

// GetFilterGroups returns the named filter option lists
func (c *Client) GetFilterGroups(ctx context.Context) (map[string][]models.FilterOption, error) {
	if err := c.delay(ctx, c.latency.Lookup); err != nil {
		return nil, err
	}
	return c.store.FilterGroups(), nil
}

// GetNotifications returns the persisted workspace notifications
func (c *Client) GetNotifications(ctx context.Context) ([]models.Notification, error) {
	if err := c.delay(ctx, c.latency.Lookup); err != nil {
		return nil, err
	}
	return c.store.Notifications(), nil
}

// SearchKind selects which collection Search scans
type SearchKind string

const (
	SearchEmails     SearchKind = "email"
	SearchProperties SearchKind = "property"
	SearchContacts   SearchKind = "contact"
)

// SearchResult is one hit from a cross-collection search
type SearchResult struct {
	ID       string     `json:"id"`
	Kind     SearchKind `json:"kind"`
	Title    string     `json:"title"`
	Subtitle string     `json:"subtitle"`
}

// Search performs a case-insensitive substring search over one
// collection: emails by subject/sender/content, properties by
// address/city, contacts by name/email
func (c *Client) Search(ctx context.Context, query string, kind SearchKind) ([]SearchResult, error) {
	if err := c.delay(ctx, c.latency.List); err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	var out []SearchResult

	switch kind {
	case SearchEmails:
		for _, e := range c.store.Emails() {
			if strings.Contains(strings.ToLower(e.Subject), q) ||
				strings.Contains(strings.ToLower(e.Sender), q) ||
				strings.Contains(strings.ToLower(e.Content), q) {
				out = append(out, SearchResult{ID: e.ID, Kind: kind, Title: e.Subject, Subtitle: e.Sender})
			}
		}
	case SearchProperties:
		for _, p := range c.store.Properties() {
			if strings.Contains(strings.ToLower(p.Address), q) ||
				strings.Contains(strings.ToLower(p.City), q) {
				out = append(out, SearchResult{ID: p.ID, Kind: kind, Title: p.Address, Subtitle: p.City})
			}
		}
	case SearchContacts:
		for _, ct := range c.store.Contacts() {
			if strings.Contains(strings.ToLower(ct.Name), q) ||
				strings.Contains(strings.ToLower(ct.Email), q) {
				out = append(out, SearchResult{ID: ct.ID, Kind: kind, Title: ct.Name, Subtitle: ct.Email})
			}
		}
	}
	return out, nil
}

// PerformAction is a no-op command sink standing in for a real command
// endpoint. It always succeeds; a real deployment would replace it with
// a dispatcher that can fail.
func (c *Client) PerformAction(ctx context.Context, action string, payload map[string]interface{}) (*Ack, error) {
	if err := c.delay(ctx, c.latency.Action); err != nil {
		return nil, err
	}

	utils.Log.Info("Performing action: %s (payload keys: %d)", action, len(payload))
	return &Ack{
		ID:     uuid.New().String(),
		Action: action,
		Status: "ok",
		Time:   time.Now().UTC(),
	}, nil
}
