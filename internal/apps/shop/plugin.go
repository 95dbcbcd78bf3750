package shop

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/looplineapp/loopline-backend/internal/config"
	"github.com/looplineapp/loopline-backend/internal/services"
)

type ShopPlugin struct {
	moderation *services.ModerationService
}

func New(moderation *services.ModerationService) *ShopPlugin {
	return &ShopPlugin{moderation: moderation}
}

func (p *ShopPlugin) ID() string { return "shop" }

func (p *ShopPlugin) Models() []interface{} {
	return []interface{}{
		&Listing{},
	}
}

func (p *ShopPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, _ *config.Config) {
	svc := NewShopService(db, p.moderation)
	h := NewShopHandler(svc)

	router.Get("/shop/listings", h.Browse)
	router.Get("/shop/listings/:id", h.GetByID)
	router.Post("/shop/listings", h.Create)
	router.Put("/shop/listings/:id/sold", h.MarkSold)
	router.Delete("/shop/listings/:id", h.Delete)
}

func (p *ShopPlugin) RegisterAdminRoutes(router fiber.Router, db *gorm.DB, _ *config.Config) {
	svc := NewShopService(db, p.moderation)
	h := NewShopHandler(svc)

	router.Delete("/shop/listings/:id", h.AdminDelete)
}
