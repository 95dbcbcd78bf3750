package people

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/looplineapp/loopline-backend/internal/authctx"
)

type PeopleHandler struct {
	service *PeopleService
}

func NewPeopleHandler(service *PeopleService) *PeopleHandler {
	return &PeopleHandler{service: service}
}

// --- Request DTOs ---

type UpsertProfileRequest struct {
	DisplayName string `json:"display_name"`
	Bio         string `json:"bio"`
	AvatarURL   string `json:"avatar_url"`
}

// --- Handlers ---

func (h *PeopleHandler) UpsertProfile(c *fiber.Ctx) error {
	userID, err := authctx.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": true, "message": "Unauthorized"})
	}

	var req UpsertProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": "Invalid request"})
	}

	profile, err := h.service.UpsertProfile(userID, req.DisplayName, req.Bio, req.AvatarURL)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": err.Error()})
	}

	return c.JSON(profile)
}

func (h *PeopleHandler) Directory(c *fiber.Ctx) error {
	userID, err := authctx.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": true, "message": "Unauthorized"})
	}

	search := c.Query("q", "")
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 20
	}

	profiles, total, err := h.service.Directory(userID, search, page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": true, "message": err.Error()})
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"people": profiles,
			"pagination": fiber.Map{
				"page":        page,
				"limit":       limit,
				"total":       total,
				"total_pages": (total + int64(limit) - 1) / int64(limit),
			},
		},
	})
}

func (h *PeopleHandler) GetProfile(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": "Invalid user ID"})
	}

	profile, err := h.service.GetProfile(userID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": true, "message": "Profile not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": true, "message": err.Error()})
	}

	return c.JSON(profile)
}

func (h *PeopleHandler) Follow(c *fiber.Ctx) error {
	followerID, err := authctx.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": true, "message": "Unauthorized"})
	}

	followeeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": "Invalid user ID"})
	}

	following, err := h.service.Follow(followerID, followeeID)
	if err != nil {
		if errors.Is(err, ErrSelfFollow) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": true, "message": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": true, "message": err.Error()})
	}

	return c.JSON(fiber.Map{"following": following})
}
