package shop

import (
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/looplineapp/loopline-backend/internal/services"
)

var (
	ErrListingNotFound = errors.New("listing not found")
	ErrNotSeller       = errors.New("not the listing owner")
)

// ShopService handles listing CRUD and browsing.
type ShopService struct {
	db         *gorm.DB
	moderation *services.ModerationService
}

func NewShopService(db *gorm.DB, moderation *services.ModerationService) *ShopService {
	return &ShopService{db: db, moderation: moderation}
}

func validCategory(category string) bool {
	for _, c := range ListingCategories {
		if c == category {
			return true
		}
	}
	return false
}

func (s *ShopService) CreateListing(sellerID uuid.UUID, title, description string, priceCents int64, currency, category string, images []string) (*Listing, error) {
	if len(title) == 0 || len(title) > 120 {
		return nil, errors.New("title is required and must be under 120 characters")
	}
	if priceCents < 0 {
		return nil, errors.New("price cannot be negative")
	}
	if !validCategory(category) {
		return nil, errors.New("invalid category")
	}
	if ok, reason := s.moderation.FilterContent(title + " " + description); !ok {
		return nil, errors.New(s.moderation.GetRejectionMessage(reason))
	}
	if currency == "" {
		currency = "USD"
	}

	imagesJSON, err := json.Marshal(images)
	if err != nil {
		return nil, err
	}

	listing := &Listing{
		ID:          uuid.New(),
		SellerID:    sellerID,
		Title:       title,
		Description: description,
		PriceCents:  priceCents,
		Currency:    currency,
		Category:    category,
		Images:      datatypes.JSON(imagesJSON),
		Status:      ListingActive,
	}

	if err := s.db.Create(listing).Error; err != nil {
		return nil, err
	}
	return listing, nil
}

// Browse returns active listings, newest first, optionally filtered by
// category and maximum price.
func (s *ShopService) Browse(category string, maxPriceCents int64, page, limit int) ([]Listing, int64, error) {
	var listings []Listing
	var total int64

	offset := (page - 1) * limit

	query := s.db.Model(&Listing{}).Where("status = ?", ListingActive)
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if maxPriceCents > 0 {
		query = query.Where("price_cents <= ?", maxPriceCents)
	}
	query.Count(&total)

	err := query.Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&listings).Error

	return listings, total, err
}

func (s *ShopService) GetListing(listingID uuid.UUID) (*Listing, error) {
	var listing Listing
	if err := s.db.First(&listing, "id = ?", listingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	return &listing, nil
}

func (s *ShopService) MarkSold(sellerID, listingID uuid.UUID) error {
	var listing Listing
	if err := s.db.First(&listing, "id = ?", listingID).Error; err != nil {
		return ErrListingNotFound
	}
	if listing.SellerID != sellerID {
		return ErrNotSeller
	}
	return s.db.Model(&listing).Update("status", ListingSold).Error
}

func (s *ShopService) DeleteListing(sellerID, listingID uuid.UUID) error {
	var listing Listing
	if err := s.db.First(&listing, "id = ?", listingID).Error; err != nil {
		return ErrListingNotFound
	}
	if listing.SellerID != sellerID {
		return ErrNotSeller
	}
	return s.db.Delete(&listing).Error
}

// AdminDeleteListing removes a listing regardless of ownership, used for
// moderation takedowns.
func (s *ShopService) AdminDeleteListing(listingID uuid.UUID) error {
	result := s.db.Delete(&Listing{}, "id = ?", listingID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrListingNotFound
	}
	return nil
}
