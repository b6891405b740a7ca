package web

import (
	"context"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"entitled/config"
	"entitled/fixtures"
	"entitled/handlers/api"
	"entitled/utils"
)

func newPropertyHandler(t *testing.T) *PropertyHandler {
	t.Helper()
	client := api.NewClient(fixtures.Default(), api.Latency{List: 50 * time.Millisecond})
	cache := utils.NewMemoryCache(t.TempDir())
	return NewPropertyHandler(session.New(), &config.Config{}, client, cache)
}

func TestLoadPropertiesServesCachedCopyOnFailure(t *testing.T) {
	h := newPropertyHandler(t)

	primed, err := h.loadProperties(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, primed)

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	properties, err := h.loadProperties(cancelled)
	require.NoError(t, err)
	require.Len(t, properties, len(primed))
	assert.Equal(t, primed[0].ID, properties[0].ID)
}

func TestLoadPropertiesColdCacheSurfacesError(t *testing.T) {
	h := newPropertyHandler(t)

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := h.loadProperties(cancelled)
	require.ErrorIs(t, err, context.Canceled)
}
