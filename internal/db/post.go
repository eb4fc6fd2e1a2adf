package db

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

const (
	// StatusDraft 草稿，读者不可见
	StatusDraft = "draft"
	// StatusPublished 已发布
	StatusPublished = "published"
)

// Post 定义了文章模型
type Post struct {
	gorm.Model
	Title       string    `gorm:"size:250;not null"`
	Slug        string    `gorm:"size:250;not null;index"`
	Body        string    `gorm:"type:text"`
	ReadingTime int
	AuthorID    *uint     `gorm:"index"`
	Author      *User     `gorm:"constraint:OnDelete:SET NULL"`
	Publish     time.Time `gorm:"not null;index"`
	Status      string    `gorm:"size:10;not null;default:draft;index"`
	Tags        []Tag     `gorm:"many2many:post_tags;"`
	Comments    []Comment `gorm:"constraint:OnDelete:CASCADE"`
}

// IsPublished reports whether readers may see the post at now.
func (p Post) IsPublished(now time.Time) bool {
	return p.Status == StatusPublished && !p.Publish.After(now)
}

// AbsolutePath returns the canonical detail path built from the publish date.
func (p Post) AbsolutePath() string {
	publish := p.Publish.UTC()
	return fmt.Sprintf("/posts/%04d/%02d/%02d/%s/", publish.Year(), int(publish.Month()), publish.Day(), p.Slug)
}

// SharePath returns the path of the share form for the post.
func (p Post) SharePath() string {
	return fmt.Sprintf("/posts/%d/share/", p.ID)
}

// Published limits a query to posts visible to readers at now.
func Published(now time.Time) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where("posts.status = ? AND posts.publish <= ?", StatusPublished, now.UTC())
	}
}

// PublishedOn limits a query to posts whose publish time falls on the given UTC calendar day.
func PublishedOn(year, month, day int) func(*gorm.DB) *gorm.DB {
	start := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where("posts.publish >= ? AND posts.publish < ?", start, end)
	}
}
