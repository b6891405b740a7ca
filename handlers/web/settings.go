// handlers/web/settings.go
package web

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"entitled/handlers/api"
	"entitled/storage"
	"entitled/utils"
	"entitled/views"
)

type SettingsHandler struct {
	store *session.Store
	prefs *storage.PreferencesStorage
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(store *session.Store, prefs *storage.PreferencesStorage) *SettingsHandler {
	return &SettingsHandler{store: store, prefs: prefs}
}

// HandleShow renders the settings page with the saved preferences
func (h *SettingsHandler) HandleShow(c *fiber.Ctx) error {
	userID := api.CurrentUserID(c)
	if userID == "" {
		return c.Redirect("/login")
	}

	prefs, err := h.prefs.Get(userID)
	if err != nil {
		return utils.InternalServerError("Failed to load preferences", err)
	}

	return c.Render("settings", fiber.Map{
		"Username":    c.Locals("username"),
		"Preferences": prefs,
		"Categories":  views.Categories(),
		"CSRFToken":   c.Locals("csrf"),
	})
}

// HandleSave stores the submitted preferences and re-renders the page
func (h *SettingsHandler) HandleSave(c *fiber.Ctx) error {
	userID := api.CurrentUserID(c)
	if userID == "" {
		return c.Redirect("/login")
	}

	prefs, err := h.prefs.Get(userID)
	if err != nil {
		return utils.InternalServerError("Failed to load preferences", err)
	}

	if theme := c.FormValue("theme"); theme != "" {
		prefs.Theme = theme
	}
	if lang := c.FormValue("language"); lang != "" {
		prefs.Language = lang
	}
	if category := c.FormValue("default_category"); category != "" {
		prefs.DefaultCategory = category
	}
	if perPage := c.FormValue("emails_per_page"); perPage != "" {
		if n, err := strconv.Atoi(perPage); err == nil && n > 0 {
			prefs.EmailsPerPage = n
		}
	}
	prefs.ShowPreview = c.FormValue("show_preview") == "on"
	prefs.AutoMarkAsRead = c.FormValue("auto_mark_as_read") == "on"

	if err := h.prefs.Save(prefs); err != nil {
		return utils.InternalServerError("Failed to save preferences", err)
	}

	return c.Render("settings", fiber.Map{
		"Username":    c.Locals("username"),
		"Preferences": prefs,
		"Categories":  views.Categories(),
		"Saved":       true,
		"CSRFToken":   c.Locals("csrf"),
	})
}
