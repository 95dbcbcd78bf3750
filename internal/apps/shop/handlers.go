package shop

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/looplineapp/loopline-backend/internal/authctx"
)

type ShopHandler struct {
	service *ShopService
}

func NewShopHandler(service *ShopService) *ShopHandler {
	return &ShopHandler{service: service}
}

// --- Request DTOs ---

type CreateListingRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	PriceCents  int64    `json:"price_cents"`
	Currency    string   `json:"currency"`
	Category    string   `json:"category"`
	Images      []string `json:"images"`
}

// --- Handlers ---

func (h *ShopHandler) Create(c *fiber.Ctx) error {
	userID, err := authctx.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": true, "message": "Unauthorized"})
	}

	var req CreateListingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": "Invalid request"})
	}

	listing, err := h.service.CreateListing(userID, req.Title, req.Description, req.PriceCents, req.Currency, req.Category, req.Images)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(listing)
}

func (h *ShopHandler) Browse(c *fiber.Ctx) error {
	category := c.Query("category", "")
	maxPrice := int64(c.QueryInt("max_price_cents", 0))
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 20
	}

	listings, total, err := h.service.Browse(category, maxPrice, page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": true, "message": err.Error()})
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"listings": listings,
			"pagination": fiber.Map{
				"page":        page,
				"limit":       limit,
				"total":       total,
				"total_pages": (total + int64(limit) - 1) / int64(limit),
			},
		},
	})
}

func (h *ShopHandler) GetByID(c *fiber.Ctx) error {
	listingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": "Invalid listing ID"})
	}

	listing, err := h.service.GetListing(listingID)
	if err != nil {
		if errors.Is(err, ErrListingNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": true, "message": "Listing not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": true, "message": err.Error()})
	}

	return c.JSON(listing)
}

func (h *ShopHandler) MarkSold(c *fiber.Ctx) error {
	userID, err := authctx.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": true, "message": "Unauthorized"})
	}

	listingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": "Invalid listing ID"})
	}

	if err := h.service.MarkSold(userID, listingID); err != nil {
		switch {
		case errors.Is(err, ErrListingNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": true, "message": "Listing not found"})
		case errors.Is(err, ErrNotSeller):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": true, "message": "Not the listing owner"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": true, "message": err.Error()})
		}
	}

	return c.JSON(fiber.Map{"message": "Listing marked as sold"})
}

func (h *ShopHandler) Delete(c *fiber.Ctx) error {
	userID, err := authctx.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": true, "message": "Unauthorized"})
	}

	listingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": "Invalid listing ID"})
	}

	if err := h.service.DeleteListing(userID, listingID); err != nil {
		switch {
		case errors.Is(err, ErrListingNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": true, "message": "Listing not found"})
		case errors.Is(err, ErrNotSeller):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": true, "message": "Not the listing owner"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": true, "message": err.Error()})
		}
	}

	return c.JSON(fiber.Map{"message": "Listing deleted"})
}

func (h *ShopHandler) AdminDelete(c *fiber.Ctx) error {
	listingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": "Invalid listing ID"})
	}

	if err := h.service.AdminDeleteListing(listingID); err != nil {
		if errors.Is(err, ErrListingNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": true, "message": "Listing not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": true, "message": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Listing removed"})
}
