package shop

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Listing statuses.
const (
	ListingActive = "active"
	ListingSold   = "sold"
)

// Listing is a shop item offered by a user.
type Listing struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SellerID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"seller_id"`
	Title       string         `gorm:"size:120;not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	PriceCents  int64          `gorm:"not null" json:"price_cents"`
	Currency    string         `gorm:"size:3;default:'USD'" json:"currency"`
	Category    string         `gorm:"size:50;index" json:"category"`
	Images      datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"images"`
	Status      string         `gorm:"size:20;default:'active';index" json:"status"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// Category constants shown in the shop tab.
var ListingCategories = []string{
	"electronics", "clothing", "home", "books",
	"sports", "toys", "handmade", "other",
}
