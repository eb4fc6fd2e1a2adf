package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/postline/internal/db"
	"gorm.io/gorm"
)

var (
	ErrPostNotFound  = errors.New("post not found")
	ErrTitleRequired = errors.New("post title is required")
	ErrSlugRequired  = errors.New("post slug is required")
	ErrSlugTaken     = errors.New("slug already used for this publish date")
	ErrInvalidStatus = errors.New("post status must be draft or published")
)

// PostService wraps post related database operations.
type PostService struct {
	db  *gorm.DB
	now func() time.Time
}

// PostListResult is one page of published posts.
type PostListResult struct {
	Posts []db.Post
	Page  Page
}

// PostInput represents fields accepted when creating a post.
type PostInput struct {
	Title    string
	Slug     string
	Body     string
	Status   string
	Publish  time.Time
	AuthorID *uint
	TagNames []string
}

// NewPostService creates a PostService instance.
func NewPostService(gdb *gorm.DB) *PostService {
	return &PostService{db: gdb, now: time.Now}
}

func (s *PostService) published() *gorm.DB {
	return s.db.Model(&db.Post{}).Scopes(db.Published(s.now()))
}

// ListPublished returns the requested page of published posts, newest first.
func (s *PostService) ListPublished(rawPage string) (*PostListResult, error) {
	return s.listPage(rawPage, func(tx *gorm.DB) *gorm.DB { return tx })
}

// ListPublishedByTag returns the requested page of published posts carrying tag.
func (s *PostService) ListPublishedByTag(tag *db.Tag, rawPage string) (*PostListResult, error) {
	return s.listPage(rawPage, func(tx *gorm.DB) *gorm.DB {
		return tx.Joins("JOIN post_tags ON post_tags.post_id = posts.id").
			Where("post_tags.tag_id = ?", tag.ID)
	})
}

func (s *PostService) listPage(rawPage string, filter func(*gorm.DB) *gorm.DB) (*PostListResult, error) {
	var total int64
	if err := s.published().Scopes(filter).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("count posts: %w", err)
	}

	page, err := Paginate(rawPage, total, PostsPerPage)
	if err != nil {
		return nil, err
	}

	var posts []db.Post
	if err := s.published().Scopes(filter).
		Preload("Tags", func(tx *gorm.DB) *gorm.DB { return tx.Order("tags.name asc") }).
		Preload("Author").
		Order("posts.publish desc, posts.id desc").
		Limit(page.PerPage).
		Offset(page.Offset()).
		Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	return &PostListResult{Posts: posts, Page: page}, nil
}

// GetPublishedByDate fetches a published post by slug whose publish time falls on year/month/day (UTC).
func (s *PostService) GetPublishedByDate(year, month, day int, slug string) (*db.Post, error) {
	if !validDate(year, month, day) {
		return nil, ErrPostNotFound
	}

	var post db.Post
	err := s.published().
		Scopes(db.PublishedOn(year, month, day)).
		Where("posts.slug = ?", slug).
		Preload("Tags", func(tx *gorm.DB) *gorm.DB { return tx.Order("tags.name asc") }).
		Preload("Author").
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// GetPublished fetches a published post by id.
func (s *PostService) GetPublished(id uint) (*db.Post, error) {
	var post db.Post
	if err := s.published().Preload("Tags").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// Create persists a post and associates tags (created on demand) in a transaction.
func (s *PostService) Create(input PostInput) (*db.Post, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	slug := Slugify(input.Slug)
	if slug == "" {
		slug = Slugify(title)
	}
	if slug == "" {
		return nil, ErrSlugRequired
	}

	status := strings.TrimSpace(input.Status)
	if status == "" {
		status = db.StatusDraft
	}
	if status != db.StatusDraft && status != db.StatusPublished {
		return nil, ErrInvalidStatus
	}

	publish := input.Publish
	if publish.IsZero() {
		publish = s.now()
	}
	publish = publish.UTC()

	post := db.Post{
		Title:       title,
		Slug:        slug,
		Body:        input.Body,
		Status:      status,
		Publish:     publish,
		AuthorID:    input.AuthorID,
		ReadingTime: calculateReadingTime(input.Body),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var taken int64
		if err := tx.Model(&db.Post{}).
			Scopes(db.PublishedOn(publish.Year(), int(publish.Month()), publish.Day())).
			Where("posts.slug = ?", slug).
			Count(&taken).Error; err != nil {
			return err
		}
		if taken > 0 {
			return ErrSlugTaken
		}

		if err := tx.Create(&post).Error; err != nil {
			return err
		}

		tags := make([]db.Tag, 0, len(input.TagNames))
		seen := make(map[uint]struct{}, len(input.TagNames))
		for _, name := range input.TagNames {
			tag, err := findOrCreateTag(tx, name)
			if err != nil {
				if errors.Is(err, ErrTagNameRequired) {
					continue
				}
				return err
			}
			if _, ok := seen[tag.ID]; ok {
				continue
			}
			seen[tag.ID] = struct{}{}
			tags = append(tags, *tag)
		}

		if len(tags) > 0 {
			if err := tx.Model(&post).Association("Tags").Replace(tags); err != nil {
				return err
			}
		}

		return tx.Preload("Tags").First(&post, post.ID).Error
	})
	if err != nil {
		return nil, err
	}

	return &post, nil
}

func validDate(year, month, day int) bool {
	if year < 1 || month < 1 || month > 12 || day < 1 {
		return false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}

func calculateReadingTime(content string) int {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return 0
	}

	words := len(strings.Fields(trimmed))
	minutes := words / 200
	if words%200 != 0 {
		minutes++
	}
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
