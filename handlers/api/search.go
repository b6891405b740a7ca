package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"entitled/utils"
)

// SearchHandler handles workspace search requests
type SearchHandler struct {
	client *Client
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(client *Client) *SearchHandler {
	return &SearchHandler{client: client}
}

// SearchRequest represents a search request
type SearchRequest struct {
	Query string `json:"query"`
	Kind  string `json:"kind"` // "email", "property", "contact"
}

// HandleSearch runs a case-insensitive substring search over one
// collection and returns the hits with the query term highlighted in
// the titles
func (h *SearchHandler) HandleSearch(c *fiber.Ctx) error {
	var req SearchRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestError("Invalid request", err)
	}

	req.Query = strings.TrimSpace(req.Query)
	if req.Query == "" {
		return utils.BadRequestError("Query is required", nil)
	}

	kind := SearchKind(req.Kind)
	switch kind {
	case SearchEmails, SearchProperties, SearchContacts:
	case "":
		kind = SearchEmails
	default:
		return utils.BadRequestError("Unknown search kind", nil)
	}

	results, err := h.client.Search(c.Context(), req.Query, kind)
	if err != nil {
		return utils.InternalServerError("Search failed", err)
	}

	type highlightedResult struct {
		SearchResult
		HighlightedTitle string `json:"highlighted_title"`
	}
	out := make([]highlightedResult, 0, len(results))
	for _, r := range results {
		out = append(out, highlightedResult{
			SearchResult:     r,
			HighlightedTitle: utils.HighlightTerm(r.Title, req.Query),
		})
	}

	return c.JSON(fiber.Map{
		"results": out,
		"total":   len(out),
		"query":   req.Query,
	})
}
