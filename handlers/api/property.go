package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"entitled/models"
	"entitled/utils"
)

// PropertyHandler serves the property and contact API
type PropertyHandler struct {
	client *Client
}

// NewPropertyHandler creates a new property handler
func NewPropertyHandler(client *Client) *PropertyHandler {
	return &PropertyHandler{client: client}
}

// HandleList returns properties passing the filter encoded in the
// query string
func (h *PropertyHandler) HandleList(c *fiber.Ctx) error {
	filter := &models.PropertyFilter{
		City:     c.Query("city"),
		MinPrice: c.QueryFloat("min_price"),
		MaxPrice: c.QueryFloat("max_price"),
	}
	if types := c.Query("types"); types != "" {
		filter.PropertyTypes = strings.Split(types, ",")
	}
	if statuses := c.Query("statuses"); statuses != "" {
		for _, s := range strings.Split(statuses, ",") {
			filter.Statuses = append(filter.Statuses, models.PropertyStatus(s))
		}
	}
	if err := filter.Validate(); err != nil {
		return utils.BadRequestError("Invalid filter", err)
	}

	properties, err := h.client.GetProperties(c.Context(), filter)
	if err != nil {
		return utils.InternalServerError("Failed to fetch properties", err)
	}

	return c.JSON(fiber.Map{
		"properties": properties,
		"total":      len(properties),
	})
}

// propertyDetail is the property record enriched for the detail pane
type propertyDetail struct {
	models.Property
	FormattedPrice string               `json:"formatted_price"`
	Requirements   []models.Requirement `json:"requirements"`
}

// HandleGet returns one property with its requirements and a
// display-ready price
func (h *PropertyHandler) HandleGet(c *fiber.Ctx) error {
	id := c.Params("id")
	property, err := h.client.GetPropertyByID(c.Context(), id)
	if err != nil {
		return utils.InternalServerError("Failed to fetch property", err)
	}
	if property == nil {
		return utils.NotFoundError("Property not found", nil)
	}

	requirements, err := h.client.GetRequirements(c.Context(), id)
	if err != nil {
		return utils.InternalServerError("Failed to fetch requirements", err)
	}

	return c.JSON(propertyDetail{
		Property:       *property,
		FormattedPrice: utils.FormatCurrency(property.SalePrice),
		Requirements:   requirements,
	})
}

// HandleRequirements returns the title requirements for one property
func (h *PropertyHandler) HandleRequirements(c *fiber.Ctx) error {
	requirements, err := h.client.GetRequirements(c.Context(), c.Params("id"))
	if err != nil {
		return utils.InternalServerError("Failed to fetch requirements", err)
	}
	return c.JSON(fiber.Map{
		"requirements": requirements,
		"total":        len(requirements),
	})
}

// HandleContacts returns every transaction contact
func (h *PropertyHandler) HandleContacts(c *fiber.Ctx) error {
	contacts, err := h.client.GetContacts(c.Context())
	if err != nil {
		return utils.InternalServerError("Failed to fetch contacts", err)
	}
	return c.JSON(fiber.Map{
		"contacts": contacts,
		"total":    len(contacts),
	})
}

// HandleContact returns one contact
func (h *PropertyHandler) HandleContact(c *fiber.Ctx) error {
	contact, err := h.client.GetContactByID(c.Context(), c.Params("id"))
	if err != nil {
		return utils.InternalServerError("Failed to fetch contact", err)
	}
	if contact == nil {
		return utils.NotFoundError("Contact not found", nil)
	}
	return c.JSON(contact)
}

// HandleDocuments returns every transaction document
func (h *PropertyHandler) HandleDocuments(c *fiber.Ctx) error {
	documents, err := h.client.GetDocuments(c.Context())
	if err != nil {
		return utils.InternalServerError("Failed to fetch documents", err)
	}
	return c.JSON(fiber.Map{
		"documents": documents,
		"total":     len(documents),
	})
}
