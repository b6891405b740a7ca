// handlers/web/property.go
package web

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"entitled/config"
	"entitled/handlers/api"
	"entitled/models"
	"entitled/utils"
	"entitled/views"
)

type PropertyHandler struct {
	store  *session.Store
	config *config.Config
	client *api.Client
	cache  *utils.MemoryCache
}

// NewPropertyHandler creates a new property page handler
func NewPropertyHandler(store *session.Store, config *config.Config, client *api.Client, cache *utils.MemoryCache) *PropertyHandler {
	return &PropertyHandler{
		store:  store,
		config: config,
		client: client,
		cache:  cache,
	}
}

// loadProperties fetches the property list from the facade, falling
// back to the last good copy in the cache when the fetch fails
func (h *PropertyHandler) loadProperties(ctx context.Context) ([]models.Property, error) {
	properties, err := h.client.GetProperties(ctx, nil)
	if err != nil {
		utils.Log.Warn("Property fetch failed, serving cached copy: %v", err)
		if cached, ok := h.cache.Get("properties"); ok {
			if properties, ok := cached.([]models.Property); ok {
				return properties, nil
			}
		}
		return nil, err
	}
	h.cache.Set("properties", properties, time.Hour)
	return properties, nil
}

// HandleList renders the property list page
func (h *PropertyHandler) HandleList(c *fiber.Ctx) error {
	properties, err := h.loadProperties(c.Context())
	if err != nil {
		return utils.InternalServerError("Error fetching properties", err)
	}

	prices := make(map[string]string, len(properties))
	for _, p := range properties {
		prices[p.ID] = utils.FormatCurrency(p.SalePrice)
	}

	return c.Render("properties", fiber.Map{
		"Username":   c.Locals("username"),
		"Properties": properties,
		"Prices":     prices,
		"CSRFToken":  c.Locals("csrf"),
	})
}

// HandleDetail renders one property with its requirements and contacts,
// or the empty-state placeholder when the id is unknown
func (h *PropertyHandler) HandleDetail(c *fiber.Ctx) error {
	ctx := c.Context()
	id := c.Params("id")

	property, err := h.client.GetPropertyByID(ctx, id)
	if err != nil {
		return utils.InternalServerError("Error fetching property", err)
	}

	contacts, err := h.client.GetContacts(ctx)
	if err != nil {
		return utils.InternalServerError("Error fetching contacts", err)
	}
	requirements, err := h.client.GetRequirements(ctx, id)
	if err != nil {
		return utils.InternalServerError("Error fetching requirements", err)
	}

	details := views.NewPropertyDetails(property, contacts, requirements)
	if section := c.Query("section"); section != "" {
		details.SetSection(section)
	}

	if !details.HasProperty() {
		return c.Render("property", fiber.Map{
			"Username":  c.Locals("username"),
			"HasData":   false,
			"CSRFToken": c.Locals("csrf"),
		})
	}

	return c.Render("property", fiber.Map{
		"Username":      c.Locals("username"),
		"HasData":       true,
		"Property":      details.Property(),
		"Price":         utils.FormatCurrency(details.Property().SalePrice),
		"Contacts":      details.Contacts(),
		"Requirements":  details.Requirements.Visible(),
		"Sections":      views.PropertySections,
		"ActiveSection": details.ActiveSection(),
		"CSRFToken":     c.Locals("csrf"),
	})
}
