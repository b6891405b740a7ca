package api

import (
	"context"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"

	"entitled/utils"
	"entitled/views"
)

// TabHandler serves the workspace tab bar. The bar is shared state, so
// access is serialized here rather than in the controller.
type TabHandler struct {
	mu  sync.Mutex
	bar *views.TabBar
}

// NewTabHandler seeds the tab bar from the facade
func NewTabHandler(client *Client) (*TabHandler, error) {
	tabs, err := client.GetTabs(context.Background())
	if err != nil {
		return nil, err
	}
	return &TabHandler{bar: views.NewTabBar(tabs)}, nil
}

// HandleList returns the tabs in display order
func (h *TabHandler) HandleList(c *fiber.Ctx) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return c.JSON(fiber.Map{
		"tabs": h.bar.Tabs(),
	})
}

// HandleOpen adds a new tab and activates it
func (h *TabHandler) HandleOpen(c *fiber.Ctx) error {
	var req struct {
		Label      string `json:"label"`
		PropertyID string `json:"property_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestError("Invalid request", err)
	}
	req.Label = strings.TrimSpace(req.Label)
	if req.Label == "" {
		return utils.BadRequestError("Label is required", nil)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	tab := h.bar.Add(req.Label, req.PropertyID)
	h.bar.Activate(tab.ID)
	return c.Status(fiber.StatusCreated).JSON(tab)
}

// HandleActivate makes the given tab the active one
func (h *TabHandler) HandleActivate(c *fiber.Ctx) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.bar.Activate(c.Params("id")) {
		return utils.NotFoundError("Tab not found", nil)
	}
	return c.JSON(fiber.Map{
		"tabs": h.bar.Tabs(),
	})
}

// HandleClose removes the given tab. The last tab and pinned tabs stay
// put, reported as a conflict rather than an error page.
func (h *TabHandler) HandleClose(c *fiber.Ctx) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.bar.Close(c.Params("id")) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "tab cannot be closed",
		})
	}
	return c.JSON(fiber.Map{
		"tabs": h.bar.Tabs(),
	})
}
