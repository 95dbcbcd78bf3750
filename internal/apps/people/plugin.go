package people

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/looplineapp/loopline-backend/internal/config"
	"github.com/looplineapp/loopline-backend/internal/services"
)

type PeoplePlugin struct {
	moderation *services.ModerationService
}

func New(moderation *services.ModerationService) *PeoplePlugin {
	return &PeoplePlugin{moderation: moderation}
}

func (p *PeoplePlugin) ID() string { return "people" }

func (p *PeoplePlugin) Models() []interface{} {
	return []interface{}{
		&Profile{},
		&Follow{},
	}
}

func (p *PeoplePlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, _ *config.Config) {
	svc := NewPeopleService(db, p.moderation)
	h := NewPeopleHandler(svc)

	router.Get("/people", h.Directory)
	router.Get("/people/:id", h.GetProfile)
	router.Put("/people/me", h.UpsertProfile)
	router.Post("/people/:id/follow", h.Follow)
}
