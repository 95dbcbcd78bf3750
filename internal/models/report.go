package models

import (
	"time"

	"github.com/google/uuid"
)

// Report is a user-filed flag against a piece of content. Status moves only
// forward (pending -> reviewed -> resolved/dismissed); rows are never deleted
// by the moderation workflow.
type Report struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ReporterID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"reporter_id"`
	ContentType string     `gorm:"not null;size:50" json:"content_type"`
	ContentID   string     `gorm:"not null;size:255;index" json:"content_id"`
	Reason      string     `gorm:"not null;size:50" json:"reason"`
	Description string     `gorm:"size:1000" json:"description,omitempty"`
	Status      string     `gorm:"not null;default:'pending';size:20;index" json:"status"`
	Resolution  string     `gorm:"size:1000" json:"resolution,omitempty"`
	ReviewedBy  *uuid.UUID `gorm:"type:uuid" json:"reviewed_by,omitempty"`
	ReviewedAt  *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	Reporter    User       `gorm:"foreignKey:ReporterID" json:"-"`
}
