package api

import (
	"entitled/utils"

	"github.com/gofiber/fiber/v2"
)

// I18nHandler handles i18n-related requests
type I18nHandler struct{}

// GetTranslations returns translations for the client-side JavaScript
func (h *I18nHandler) GetTranslations(c *fiber.Ctx) error {
	lang := c.Params("lang")
	if lang == "" {
		lang = "en"
	}

	// Only allow supported languages
	if lang != "en" && lang != "ja" {
		lang = "en"
	}

	localizer := utils.GetLocalizer(lang)

	translations := map[string]string{
		"inbox_loading":       utils.T(localizer, "inbox_loading"),
		"inbox_no_messages":   utils.T(localizer, "inbox_no_messages"),
		"email_archived":      utils.T(localizer, "email_archived"),
		"email_deleted":       utils.T(localizer, "email_deleted"),
		"email_starred":       utils.T(localizer, "email_starred"),
		"property_loading":    utils.T(localizer, "property_loading"),
		"requirement_updated": utils.T(localizer, "requirement_updated"),
		"tab_cannot_close":    utils.T(localizer, "tab_cannot_close"),
		"confirm_yes":         utils.T(localizer, "confirm_yes"),
		"confirm_no":          utils.T(localizer, "confirm_no"),
		"error_network":       utils.T(localizer, "error_network"),
		"error_404":           utils.T(localizer, "error_404"),
		"error_500":           utils.T(localizer, "error_500"),
	}

	return c.JSON(translations)
}
