package service

import (
	"errors"
	"strings"

	"github.com/postline/internal/db"
	"gorm.io/gorm"
)

var ErrCommentNotFound = errors.New("comment not found")

// CommentService wraps comment related database operations.
type CommentService struct {
	db *gorm.DB
}

// CommentInput holds a validated comment submission.
type CommentInput struct {
	Name  string
	Email string
	Body  string
}

// NewCommentService creates a CommentService instance.
func NewCommentService(gdb *gorm.DB) *CommentService {
	return &CommentService{db: gdb}
}

// ListActive returns the active comments of a post, oldest first.
func (s *CommentService) ListActive(postID uint) ([]db.Comment, error) {
	var comments []db.Comment
	if err := s.db.Scopes(db.ActiveComments).
		Where("post_id = ?", postID).
		Order("created_at asc").
		Order("id asc").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// Create stores a new active comment on the post.
func (s *CommentService) Create(postID uint, input CommentInput) (*db.Comment, error) {
	comment := db.Comment{
		PostID: postID,
		Name:   strings.TrimSpace(input.Name),
		Email:  strings.TrimSpace(input.Email),
		Body:   strings.TrimSpace(input.Body),
		Active: true,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// SetActive shows or hides a comment without deleting it.
func (s *CommentService) SetActive(id uint, active bool) error {
	result := s.db.Model(&db.Comment{}).Where("id = ?", id).Update("active", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCommentNotFound
	}
	return nil
}

// Count returns how many comments, active or not, belong to the post.
func (s *CommentService) Count(postID uint) (int64, error) {
	var count int64
	if err := s.db.Model(&db.Comment{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
