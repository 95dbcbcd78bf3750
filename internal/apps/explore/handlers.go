package explore

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

type ExploreHandler struct {
	service *ExploreService
}

func NewExploreHandler(service *ExploreService) *ExploreHandler {
	return &ExploreHandler{service: service}
}

func (h *ExploreHandler) Trending(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	if limit < 1 || limit > 50 {
		limit = 20
	}

	posts, err := h.service.Trending(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": true, "message": err.Error()})
	}

	return c.JSON(fiber.Map{"data": fiber.Map{"posts": posts}})
}

func (h *ExploreHandler) Search(c *fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("q", ""))
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": "Query parameter q is required"})
	}

	limit := c.QueryInt("limit", 10)
	if limit < 1 || limit > 25 {
		limit = 10
	}

	results, err := h.service.Search(query, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": true, "message": err.Error()})
	}

	return c.JSON(fiber.Map{"data": results})
}
