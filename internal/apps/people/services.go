package people

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/looplineapp/loopline-backend/internal/services"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrSelfFollow      = errors.New("cannot follow yourself")
)

// ProfileView is a directory entry with follow counts.
type ProfileView struct {
	Profile
	Followers int64 `json:"followers"`
	Following int64 `json:"following"`
}

// PeopleService handles profiles and the follow graph.
type PeopleService struct {
	db         *gorm.DB
	moderation *services.ModerationService
}

func NewPeopleService(db *gorm.DB, moderation *services.ModerationService) *PeopleService {
	return &PeopleService{db: db, moderation: moderation}
}

// UpsertProfile creates or updates the caller's own profile.
func (s *PeopleService) UpsertProfile(userID uuid.UUID, displayName, bio, avatarURL string) (*Profile, error) {
	displayName = strings.TrimSpace(displayName)
	if len(displayName) == 0 || len(displayName) > 60 {
		return nil, errors.New("display name is required and must be under 60 characters")
	}
	if ok, reason := s.moderation.FilterContent(displayName + " " + bio); !ok {
		return nil, errors.New(s.moderation.GetRejectionMessage(reason))
	}

	var profile Profile
	err := s.db.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = Profile{
			ID:          uuid.New(),
			UserID:      userID,
			DisplayName: displayName,
			Bio:         bio,
			AvatarURL:   avatarURL,
		}
		if err := s.db.Create(&profile).Error; err != nil {
			return nil, err
		}
		return &profile, nil
	}
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"display_name": displayName,
		"bio":          bio,
		"avatar_url":   avatarURL,
	}
	if err := s.db.Model(&profile).Updates(updates).Error; err != nil {
		return nil, err
	}
	profile.DisplayName = displayName
	profile.Bio = bio
	profile.AvatarURL = avatarURL
	return &profile, nil
}

// Directory lists profiles, optionally filtered by a name search, excluding
// users the caller has blocked.
func (s *PeopleService) Directory(callerID uuid.UUID, search string, page, limit int) ([]Profile, int64, error) {
	var profiles []Profile
	var total int64

	offset := (page - 1) * limit

	blockedIDs, err := s.moderation.GetBlockedIDs(callerID)
	if err != nil {
		return nil, 0, err
	}

	query := s.db.Model(&Profile{})
	if search != "" {
		query = query.Where("display_name ILIKE ?", "%"+search+"%")
	}
	if len(blockedIDs) > 0 {
		query = query.Where("user_id NOT IN ?", blockedIDs)
	}
	query.Count(&total)

	err = query.Order("display_name ASC").
		Offset(offset).
		Limit(limit).
		Find(&profiles).Error

	return profiles, total, err
}

func (s *PeopleService) GetProfile(userID uuid.UUID) (*ProfileView, error) {
	var profile Profile
	if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	var followers, following int64
	s.db.Model(&Follow{}).Where("followee_id = ?", userID).Count(&followers)
	s.db.Model(&Follow{}).Where("follower_id = ?", userID).Count(&following)

	return &ProfileView{
		Profile:   profile,
		Followers: followers,
		Following: following,
	}, nil
}

// Follow toggles the follow edge from follower to followee.
func (s *PeopleService) Follow(followerID, followeeID uuid.UUID) (bool, error) {
	if followerID == followeeID {
		return false, ErrSelfFollow
	}

	var existing Follow
	if err := s.db.Where("follower_id = ? AND followee_id = ?", followerID, followeeID).First(&existing).Error; err == nil {
		s.db.Delete(&existing)
		return false, nil
	}

	follow := &Follow{
		ID:         uuid.New(),
		FollowerID: followerID,
		FolloweeID: followeeID,
	}
	if err := s.db.Create(follow).Error; err != nil {
		return false, err
	}
	return true, nil
}
