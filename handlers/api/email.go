package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"entitled/models"
	"entitled/utils"
)

// EmailHandler serves the transaction inbox API
type EmailHandler struct {
	client        *Client
	notifications *NotificationHandler
}

// NewEmailHandler creates a new email handler
func NewEmailHandler(client *Client, notifications *NotificationHandler) *EmailHandler {
	return &EmailHandler{client: client, notifications: notifications}
}

// HandleList returns emails passing the filter encoded in the query
// string
func (h *EmailHandler) HandleList(c *fiber.Ctx) error {
	filter := &models.EmailFilter{
		HasAttachments: c.QueryBool("has_attachments"),
		CalendarItems:  c.QueryBool("calendar"),
		TimeRange:      c.Query("time_range"),
	}
	if contacts := c.Query("contacts"); contacts != "" {
		filter.Contacts = strings.Split(contacts, ",")
	}
	if err := filter.Validate(); err != nil {
		return utils.BadRequestError("Invalid filter", err)
	}

	emails, err := h.client.GetEmails(c.Context(), filter)
	if err != nil {
		return utils.InternalServerError("Failed to fetch emails", err)
	}

	return c.JSON(fiber.Map{
		"emails": emails,
		"total":  len(emails),
	})
}

// HandleFilterGroups returns the named filter option lists for the
// triage sidebar
func (h *EmailHandler) HandleFilterGroups(c *fiber.Ctx) error {
	groups, err := h.client.GetFilterGroups(c.Context())
	if err != nil {
		return utils.InternalServerError("Failed to fetch filter groups", err)
	}
	return c.JSON(groups)
}

// emailDetail is the email record enriched for the reading pane
type emailDetail struct {
	models.Email
	HighlightedContent string `json:"highlighted_content"`
	Preview            string `json:"preview"`
	RelativeTime       string `json:"relative_time,omitempty"`
}

// HandleGet returns one email with its content highlighted for display
func (h *EmailHandler) HandleGet(c *fiber.Ctx) error {
	email, err := h.client.GetEmailByID(c.Context(), c.Params("id"))
	if err != nil {
		return utils.InternalServerError("Failed to fetch email", err)
	}
	if email == nil {
		return utils.NotFoundError("Email not found", nil)
	}

	detail := emailDetail{
		Email:              *email,
		HighlightedContent: utils.HighlightContent(email.Content),
		Preview:            utils.PreviewText(email.Content, 150),
	}
	return c.JSON(detail)
}

// HandleAction performs a triage action on an email. The sink always
// succeeds; clients apply the change optimistically against their
// working copy.
func (h *EmailHandler) HandleAction(c *fiber.Ctx) error {
	action := c.Params("action")
	switch action {
	case "star", "unstar", "read", "unread", "archive", "delete":
	default:
		return utils.BadRequestError("Unknown action", nil)
	}

	id := c.Params("id")
	email, err := h.client.GetEmailByID(c.Context(), id)
	if err != nil {
		return utils.InternalServerError("Failed to fetch email", err)
	}
	if email == nil {
		return utils.NotFoundError("Email not found", nil)
	}

	ack, err := h.client.PerformAction(c.Context(), action, map[string]interface{}{
		"email_id": id,
	})
	if err != nil {
		return utils.InternalServerError("Action failed", err)
	}

	if h.notifications != nil {
		h.notifications.NotifyEmailAction(id, action, email.Subject)
	}
	return c.JSON(ack)
}

// HandlePerformAction is the generic command sink for quick actions
// that do not target a single email
func (h *EmailHandler) HandlePerformAction(c *fiber.Ctx) error {
	var req struct {
		Action  string                 `json:"action"`
		Payload map[string]interface{} `json:"payload"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestError("Invalid request", err)
	}
	if strings.TrimSpace(req.Action) == "" {
		return utils.BadRequestError("Action is required", nil)
	}

	ack, err := h.client.PerformAction(c.Context(), req.Action, req.Payload)
	if err != nil {
		return utils.InternalServerError("Action failed", err)
	}
	return c.JSON(ack)
}
