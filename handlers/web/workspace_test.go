package web

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"entitled/config"
	"entitled/fixtures"
	"entitled/handlers/api"
	"entitled/models"
	"entitled/utils"
)

// unavailableSource fails every read, standing in for a backend that
// has gone away mid-session.
type unavailableSource struct{}

func (unavailableSource) Emails(context.Context) ([]models.Email, error) {
	return nil, errors.New("mailbox unavailable")
}

func (unavailableSource) EmailByID(context.Context, string) (*models.Email, error) {
	return nil, errors.New("mailbox unavailable")
}

func (unavailableSource) Close() error { return nil }

func newWorkspaceHandler(t *testing.T) *WorkspaceHandler {
	t.Helper()
	client := api.NewClient(fixtures.Default(), api.Latency{})
	cache := utils.NewMemoryCache(t.TempDir())
	return NewWorkspaceHandler(session.New(), &config.Config{}, client, cache)
}

func TestLoadEmailsServesCachedCopyOnFailure(t *testing.T) {
	h := newWorkspaceHandler(t)

	primed, err := h.loadEmails(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, primed)

	h.client.WithSource(unavailableSource{})

	emails, err := h.loadEmails(context.Background())
	require.NoError(t, err)
	require.Len(t, emails, len(primed))
	assert.Equal(t, primed[0].ID, emails[0].ID)
}

func TestLoadEmailsColdCacheSurfacesError(t *testing.T) {
	h := newWorkspaceHandler(t)
	h.client.WithSource(unavailableSource{})

	_, err := h.loadEmails(context.Background())
	require.Error(t, err)
}

func TestLoadEmailsRejectsForeignCacheEntry(t *testing.T) {
	h := newWorkspaceHandler(t)
	h.cache.Set("inbox", "not an email list", time.Minute)
	h.client.WithSource(unavailableSource{})

	_, err := h.loadEmails(context.Background())
	require.Error(t, err)
}
