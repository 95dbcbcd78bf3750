package explore

import (
	"time"

	"gorm.io/gorm"

	"github.com/looplineapp/loopline-backend/internal/apps/feed"
	"github.com/looplineapp/loopline-backend/internal/apps/people"
	"github.com/looplineapp/loopline-backend/internal/apps/shop"
)

// trendingWindow bounds how far back trending looks.
const trendingWindow = 7 * 24 * time.Hour

// SearchResults groups matches across the product surfaces.
type SearchResults struct {
	Posts    []feed.Post      `json:"posts"`
	Listings []shop.Listing   `json:"listings"`
	People   []people.Profile `json:"people"`
}

// ExploreService derives the discovery tab from the other surfaces' tables.
type ExploreService struct {
	db *gorm.DB
}

func NewExploreService(db *gorm.DB) *ExploreService {
	return &ExploreService{db: db}
}

// Trending returns recent posts ranked by engagement.
func (s *ExploreService) Trending(limit int) ([]feed.Post, error) {
	var posts []feed.Post
	since := time.Now().Add(-trendingWindow)

	err := s.db.Model(&feed.Post{}).
		Where("created_at > ?", since).
		Order("like_count DESC, comment_count DESC, created_at DESC").
		Limit(limit).
		Find(&posts).Error

	return posts, err
}

// Search runs the shared query across posts, listings, and profiles. Each
// bucket is capped at limit; no combined ranking is attempted.
func (s *ExploreService) Search(query string, limit int) (*SearchResults, error) {
	pattern := "%" + query + "%"
	results := &SearchResults{
		Posts:    []feed.Post{},
		Listings: []shop.Listing{},
		People:   []people.Profile{},
	}

	if err := s.db.Model(&feed.Post{}).
		Where("content ILIKE ?", pattern).
		Order("created_at DESC").
		Limit(limit).
		Find(&results.Posts).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&shop.Listing{}).
		Where("status = ?", shop.ListingActive).
		Where("title ILIKE ? OR description ILIKE ?", pattern, pattern).
		Order("created_at DESC").
		Limit(limit).
		Find(&results.Listings).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&people.Profile{}).
		Where("display_name ILIKE ? OR bio ILIKE ?", pattern, pattern).
		Order("display_name ASC").
		Limit(limit).
		Find(&results.People).Error; err != nil {
		return nil, err
	}

	return results, nil
}
