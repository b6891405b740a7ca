package api

import (
	"github.com/gofiber/fiber/v2"

	"entitled/models"
	"entitled/storage"
	"entitled/utils"
)

// PreferencesHandler serves per-user view preferences
type PreferencesHandler struct {
	prefs *storage.PreferencesStorage
}

// NewPreferencesHandler creates a new preferences handler
func NewPreferencesHandler(prefs *storage.PreferencesStorage) *PreferencesHandler {
	return &PreferencesHandler{prefs: prefs}
}

// HandleGet returns the current user's preferences, defaults included
func (h *PreferencesHandler) HandleGet(c *fiber.Ctx) error {
	userID := CurrentUserID(c)
	if userID == "" {
		return utils.UnauthorizedError("No user in session", nil)
	}

	prefs, err := h.prefs.Get(userID)
	if err != nil {
		return utils.InternalServerError("Failed to load preferences", err)
	}
	return c.JSON(prefs)
}

// HandleSave replaces the current user's preferences
func (h *PreferencesHandler) HandleSave(c *fiber.Ctx) error {
	userID := CurrentUserID(c)
	if userID == "" {
		return utils.UnauthorizedError("No user in session", nil)
	}

	var prefs models.Preferences
	if err := c.BodyParser(&prefs); err != nil {
		return utils.BadRequestError("Invalid request", err)
	}
	prefs.UserID = userID

	if prefs.EmailsPerPage <= 0 {
		prefs.EmailsPerPage = 50
	}
	if prefs.DefaultCategory == "" {
		prefs.DefaultCategory = "All Emails"
	}

	if err := h.prefs.Save(&prefs); err != nil {
		return utils.InternalServerError("Failed to save preferences", err)
	}
	return c.JSON(prefs)
}
