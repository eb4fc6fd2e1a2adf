package service

import (
	"errors"
	"strings"

	"github.com/postline/internal/db"
	"gorm.io/gorm"
)

var (
	ErrTagNotFound     = errors.New("tag not found")
	ErrTagNameRequired = errors.New("tag name is required")
)

// TagService wraps tag related operations.
type TagService struct {
	db *gorm.DB
}

// NewTagService creates a TagService instance.
func NewTagService(gdb *gorm.DB) *TagService {
	return &TagService{db: gdb}
}

// GetBySlug fetches a tag by its unique slug.
func (s *TagService) GetBySlug(slug string) (*db.Tag, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, ErrTagNotFound
	}

	var tag db.Tag
	if err := s.db.Where("slug = ?", slug).First(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTagNotFound
		}
		return nil, err
	}
	return &tag, nil
}

// List returns all tags ordered by name.
func (s *TagService) List() ([]db.Tag, error) {
	var tags []db.Tag
	if err := s.db.Order("name asc").Order("id asc").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// FindOrCreate returns the tag called name, creating it with a derived slug when missing.
func (s *TagService) FindOrCreate(name string) (*db.Tag, error) {
	return findOrCreateTag(s.db, name)
}

func findOrCreateTag(tx *gorm.DB, name string) (*db.Tag, error) {
	name = strings.TrimSpace(name)
	slug := Slugify(name)
	if name == "" || slug == "" {
		return nil, ErrTagNameRequired
	}

	var tag db.Tag
	err := tx.Where("name = ? OR slug = ?", name, slug).First(&tag).Error
	if err == nil {
		return &tag, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	tag = db.Tag{Name: name, Slug: slug}
	if err := tx.Create(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}
