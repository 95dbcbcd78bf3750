package people

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the public face of a user in the people directory.
type Profile struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	DisplayName string    `gorm:"size:60;not null;index" json:"display_name"`
	Bio         string    `gorm:"size:500" json:"bio,omitempty"`
	AvatarURL   string    `gorm:"size:512" json:"avatar_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Follow is a directed follower edge.
type Follow struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FollowerID uuid.UUID `gorm:"type:uuid;not null;index" json:"follower_id"`
	FolloweeID uuid.UUID `gorm:"type:uuid;not null;index" json:"followee_id"`
	CreatedAt  time.Time `json:"created_at"`
}
