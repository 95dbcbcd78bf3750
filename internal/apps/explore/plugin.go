package explore

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/looplineapp/loopline-backend/internal/config"
)

type ExplorePlugin struct{}

func New() *ExplorePlugin {
	return &ExplorePlugin{}
}

func (p *ExplorePlugin) ID() string { return "explore" }

// Models is empty: explore reads the other surfaces' tables.
func (p *ExplorePlugin) Models() []interface{} {
	return nil
}

func (p *ExplorePlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, _ *config.Config) {
	svc := NewExploreService(db)
	h := NewExploreHandler(svc)

	router.Get("/explore/trending", h.Trending)
	router.Get("/explore/search", h.Search)
}
