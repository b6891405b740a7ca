package api

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"entitled/fixtures"
	"entitled/models"
)

func testClient() *Client {
	return NewClient(fixtures.Default(), Latency{})
}

func TestGetEmailsNilFilter(t *testing.T) {
	c := testClient()
	emails, err := c.GetEmails(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, emails, 5)
}

func TestGetEmailsAttachmentsFilter(t *testing.T) {
	c := testClient()
	emails, err := c.GetEmails(context.Background(), &models.EmailFilter{HasAttachments: true})
	require.NoError(t, err)
	require.NotEmpty(t, emails)
	for _, e := range emails {
		assert.True(t, e.HasAttachments, "email %s should have attachments", e.ID)
	}
}

func TestGetEmailsCalendarFilter(t *testing.T) {
	c := testClient()
	emails, err := c.GetEmails(context.Background(), &models.EmailFilter{CalendarItems: true})
	require.NoError(t, err)
	for _, e := range emails {
		assert.True(t, e.HasTag("CALENDAR"), "email %s should carry the calendar tag", e.ID)
	}
}

func TestGetEmailsContactFilter(t *testing.T) {
	c := testClient()
	emails, err := c.GetEmails(context.Background(), &models.EmailFilter{
		Contacts: []string{"bryan"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, emails)
	for _, e := range emails {
		assert.Contains(t, e.Sender, "bryan")
	}
}

func TestGetEmailsFiltersCombineWithAnd(t *testing.T) {
	c := testClient()
	all, err := c.GetEmails(context.Background(), nil)
	require.NoError(t, err)

	combined, err := c.GetEmails(context.Background(), &models.EmailFilter{
		HasAttachments: true,
		Contacts:       []string{"no-such-contact"},
	})
	require.NoError(t, err)
	assert.Empty(t, combined)
	assert.NotEmpty(t, all)
}

func TestGetEmailsReturnsCopies(t *testing.T) {
	c := testClient()
	first, err := c.GetEmails(context.Background(), nil)
	require.NoError(t, err)
	first[0].Subject = "mutated"

	second, err := c.GetEmails(context.Background(), nil)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", second[0].Subject)
}

func TestGetEmailByIDNotFound(t *testing.T) {
	c := testClient()
	email, err := c.GetEmailByID(context.Background(), "no-such-id")
	require.NoError(t, err)
	assert.Nil(t, email)
}

func TestGetPropertyByID(t *testing.T) {
	c := testClient()
	p, err := c.GetPropertyByID(context.Background(), "1")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "1", p.ID)

	missing, err := c.GetPropertyByID(context.Background(), "999")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestGetRequirementsScopedToProperty(t *testing.T) {
	c := testClient()
	reqs, err := c.GetRequirements(context.Background(), "1")
	require.NoError(t, err)
	require.NotEmpty(t, reqs)
	for _, r := range reqs {
		assert.Equal(t, "1", r.PropertyID)
	}

	all, err := c.GetRequirements(context.Background(), "")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(all), len(reqs))
}

func TestSearchEmails(t *testing.T) {
	c := testClient()
	results, err := c.Search(context.Background(), "closing", SearchEmails)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	for _, r := range results {
		assert.Equal(t, SearchEmails, r.Kind)
	}
}

func TestSearchContacts(t *testing.T) {
	c := testClient()
	results, err := c.Search(context.Background(), "matt", SearchContacts)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, SearchContacts, results[0].Kind)
}

func TestPerformActionAlwaysSucceeds(t *testing.T) {
	c := testClient()
	ack, err := c.PerformAction(context.Background(), "archive", map[string]interface{}{"id": "1"})
	require.NoError(t, err)
	require.NotNil(t, ack)
	assert.NotEmpty(t, ack.ID)
	assert.Equal(t, "archive", ack.Action)
	assert.Equal(t, "ok", ack.Status)
}

func TestDelayHonoursCancelledContext(t *testing.T) {
	c := NewClient(fixtures.Default(), Latency{List: time.Second})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.GetEmails(ctx, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLatencyIsApplied(t *testing.T) {
	c := NewClient(fixtures.Default(), Latency{Lookup: 30 * time.Millisecond})
	start := time.Now()
	_, err := c.GetEmailByID(context.Background(), "1")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}
