// handlers/web/workspace.go
package web

import (
	"context"
	"html/template"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"entitled/config"
	"entitled/handlers/api"
	"entitled/models"
	"entitled/utils"
	"entitled/views"
)

type WorkspaceHandler struct {
	store  *session.Store
	config *config.Config
	client *api.Client
	cache  *utils.MemoryCache
}

// NewWorkspaceHandler creates a new workspace handler
func NewWorkspaceHandler(store *session.Store, config *config.Config, client *api.Client, cache *utils.MemoryCache) *WorkspaceHandler {
	return &WorkspaceHandler{
		store:  store,
		config: config,
		client: client,
		cache:  cache,
	}
}

// loadEmails fetches the inbox from the facade, falling back to the
// last good copy in the cache when the fetch fails
func (h *WorkspaceHandler) loadEmails(ctx context.Context) ([]models.Email, error) {
	emails, err := h.client.GetEmails(ctx, nil)
	if err != nil {
		utils.Log.Warn("Email fetch failed, serving cached copy: %v", err)
		if cached, ok := h.cache.Get("inbox"); ok {
			if emails, ok := cached.([]models.Email); ok {
				return emails, nil
			}
		}
		return nil, err
	}
	h.cache.Set("inbox", emails, time.Hour)
	return emails, nil
}

// HandleInbox renders the main workspace page with the email list
// filtered by the query parameters
func (h *WorkspaceHandler) HandleInbox(c *fiber.Ctx) error {
	emails, err := h.loadEmails(c.Context())
	if err != nil {
		return utils.InternalServerError("Error fetching emails", err)
	}

	list := views.NewEmailList(emails)
	list.SetQuery(c.Query("q"))
	if category := c.Query("category"); category != "" {
		list.SetCategory(category)
	}
	if c.QueryBool("attachments") {
		list.ToggleAttachmentsFilter()
	}
	if c.QueryBool("calendar") {
		list.ToggleCalendarFilter()
	}

	visible := list.Visible()
	previews := make([]string, len(visible))
	for i, e := range visible {
		previews[i] = utils.PreviewText(e.Content, 100)
	}

	tabs, err := h.client.GetTabs(c.Context())
	if err != nil {
		return utils.InternalServerError("Error fetching tabs", err)
	}

	token, err := api.GetSessionToken(c, h.store)
	if err != nil {
		return c.Redirect("/login")
	}

	sess, _ := h.store.Get(c)

	return c.Render("workspace", fiber.Map{
		"Username":   c.Locals("username"),
		"Email":      sess.Get("email"),
		"Emails":     visible,
		"Previews":   previews,
		"Total":      list.Len(),
		"Query":      list.Query(),
		"Category":   list.Category(),
		"Categories": views.Categories(),
		"Tabs":       tabs,
		"Token":      token,
		"CSRFToken":  c.Locals("csrf"),
	})
}

// HandleEmailView renders the reading pane for one email, amounts and
// date words highlighted
func (h *WorkspaceHandler) HandleEmailView(c *fiber.Ctx) error {
	email, err := h.client.GetEmailByID(c.Context(), c.Params("id"))
	if err != nil {
		return utils.InternalServerError("Error fetching email", err)
	}
	if email == nil {
		return utils.NotFoundError("Email not found", nil)
	}

	return c.Render("email", fiber.Map{
		"Email":     email,
		"Content":   template.HTML(utils.HighlightContent(email.Content)),
		"CSRFToken": c.Locals("csrf"),
	}, "")
}
