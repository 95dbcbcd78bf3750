package feed

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/looplineapp/loopline-backend/internal/services"
)

var (
	ErrPostNotFound = errors.New("post not found")
	ErrNotPostOwner = errors.New("not the post owner")
)

// FeedService handles post CRUD and engagement.
type FeedService struct {
	db         *gorm.DB
	moderation *services.ModerationService
}

func NewFeedService(db *gorm.DB, moderation *services.ModerationService) *FeedService {
	return &FeedService{db: db, moderation: moderation}
}

func (s *FeedService) CreatePost(userID uuid.UUID, content, imageURL string) (*Post, error) {
	if len(content) == 0 {
		return nil, errors.New("post content is required")
	}
	if len(content) > 2000 {
		return nil, errors.New("post must be under 2000 characters")
	}
	if ok, reason := s.moderation.FilterContent(content); !ok {
		return nil, errors.New(s.moderation.GetRejectionMessage(reason))
	}

	post := &Post{
		ID:       uuid.New(),
		UserID:   userID,
		Content:  content,
		ImageURL: imageURL,
	}

	if err := s.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// GetFeed returns the reverse-chronological feed for userID, excluding posts
// from authors the user has blocked.
func (s *FeedService) GetFeed(userID uuid.UUID, page, limit int) ([]Post, int64, error) {
	var posts []Post
	var total int64

	offset := (page - 1) * limit

	blockedIDs, err := s.moderation.GetBlockedIDs(userID)
	if err != nil {
		return nil, 0, err
	}

	query := s.db.Model(&Post{})
	if len(blockedIDs) > 0 {
		query = query.Where("user_id NOT IN ?", blockedIDs)
	}
	query.Count(&total)

	err = query.Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error

	return posts, total, err
}

func (s *FeedService) GetPost(postID uuid.UUID) (*Post, error) {
	var post Post
	if err := s.db.First(&post, "id = ?", postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (s *FeedService) GetComments(postID uuid.UUID, page, limit int) ([]PostComment, int64, error) {
	var comments []PostComment
	var total int64

	offset := (page - 1) * limit

	query := s.db.Model(&PostComment{}).Where("post_id = ?", postID)
	query.Count(&total)

	err := query.Order("created_at ASC").
		Offset(offset).
		Limit(limit).
		Find(&comments).Error

	return comments, total, err
}

// LikePost toggles userID's like on a post.
func (s *FeedService) LikePost(userID, postID uuid.UUID) (bool, error) {
	var post Post
	if err := s.db.First(&post, "id = ?", postID).Error; err != nil {
		return false, ErrPostNotFound
	}

	var existing PostLike
	if err := s.db.Where("user_id = ? AND post_id = ?", userID, postID).First(&existing).Error; err == nil {
		s.db.Delete(&existing)
		s.db.Model(&Post{}).Where("id = ?", postID).
			Update("like_count", gorm.Expr("like_count - 1"))
		return false, nil
	}

	like := &PostLike{
		ID:     uuid.New(),
		UserID: userID,
		PostID: postID,
	}
	if err := s.db.Create(like).Error; err != nil {
		return false, err
	}

	s.db.Model(&Post{}).Where("id = ?", postID).
		Update("like_count", gorm.Expr("like_count + 1"))
	return true, nil
}

func (s *FeedService) AddComment(userID, postID uuid.UUID, content string) (*PostComment, error) {
	if len(content) == 0 {
		return nil, errors.New("comment content is required")
	}
	if len(content) > 500 {
		return nil, errors.New("comment must be under 500 characters")
	}
	if ok, reason := s.moderation.FilterContent(content); !ok {
		return nil, errors.New(s.moderation.GetRejectionMessage(reason))
	}

	var post Post
	if err := s.db.First(&post, "id = ?", postID).Error; err != nil {
		return nil, ErrPostNotFound
	}

	comment := &PostComment{
		ID:      uuid.New(),
		UserID:  userID,
		PostID:  postID,
		Content: content,
	}

	if err := s.db.Create(comment).Error; err != nil {
		return nil, err
	}

	s.db.Model(&Post{}).Where("id = ?", postID).
		Update("comment_count", gorm.Expr("comment_count + 1"))
	return comment, nil
}

func (s *FeedService) DeletePost(userID, postID uuid.UUID) error {
	var post Post
	if err := s.db.First(&post, "id = ?", postID).Error; err != nil {
		return ErrPostNotFound
	}
	if post.UserID != userID {
		return ErrNotPostOwner
	}
	return s.db.Delete(&post).Error
}

// AdminDeletePost removes a post regardless of ownership. Used by moderators
// as the takedown step after resolving a report against the post.
func (s *FeedService) AdminDeletePost(postID uuid.UUID) error {
	result := s.db.Delete(&Post{}, "id = ?", postID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPostNotFound
	}
	return nil
}
