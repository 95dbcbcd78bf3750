package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/looplineapp/loopline-backend/internal/authctx"
	"github.com/looplineapp/loopline-backend/internal/config"
	"github.com/looplineapp/loopline-backend/internal/dto"
	"github.com/looplineapp/loopline-backend/internal/models"
	"github.com/looplineapp/loopline-backend/internal/moderation"
)

// ModeratorRequired gates the moderation panel. Access is granted by:
// 1. Config-based admin token / admin emails / admin user IDs
// 2. The role claim in the JWT (via the moderation permission gate)
// 3. DB-based user Role field, for tokens issued before a promotion
func ModeratorRequired(db *gorm.DB, cfg *config.Config) fiber.Handler {
	adminEmails := parseCSV(cfg.AdminEmails)
	adminUserIDs := parseCSV(cfg.AdminUserIDs)

	return func(c *fiber.Ctx) error {
		if cfg.AdminToken != "" {
			if c.Get("X-Admin-Token") == cfg.AdminToken {
				return c.Next()
			}
		}

		userID, err := authctx.UserID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		if contains(adminEmails, authctx.Email(c)) || contains(adminUserIDs, userID.String()) {
			return c.Next()
		}

		if moderation.CanAccessAdmin(authctx.Role(c)) {
			return c.Next()
		}

		// Role claim may be stale; fall back to the stored role.
		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err == nil {
			if moderation.CanAccessAdmin(moderation.ParseRole(user.Role)) {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Moderator access required",
		})
	}
}

func parseCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func contains(list []string, val string) bool {
	for _, item := range list {
		if item == val {
			return true
		}
	}
	return false
}
