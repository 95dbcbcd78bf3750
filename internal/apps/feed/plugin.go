package feed

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/looplineapp/loopline-backend/internal/config"
	"github.com/looplineapp/loopline-backend/internal/services"
)

type FeedPlugin struct {
	moderation *services.ModerationService
}

func New(moderation *services.ModerationService) *FeedPlugin {
	return &FeedPlugin{moderation: moderation}
}

func (p *FeedPlugin) ID() string { return "feed" }

func (p *FeedPlugin) Models() []interface{} {
	return []interface{}{
		&Post{},
		&PostLike{},
		&PostComment{},
	}
}

func (p *FeedPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, _ *config.Config) {
	svc := NewFeedService(db, p.moderation)
	h := NewFeedHandler(svc)

	router.Get("/feed", h.GetFeed)
	router.Get("/posts/:id", h.GetByID)
	router.Get("/posts/:id/comments", h.GetComments)
	router.Post("/posts", h.Create)
	router.Post("/posts/:id/like", h.Like)
	router.Post("/posts/:id/comments", h.AddComment)
	router.Delete("/posts/:id", h.Delete)
}

func (p *FeedPlugin) RegisterAdminRoutes(router fiber.Router, db *gorm.DB, _ *config.Config) {
	svc := NewFeedService(db, p.moderation)
	h := NewFeedHandler(svc)

	router.Delete("/feed/posts/:id", h.AdminDelete)
}
