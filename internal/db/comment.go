package db

import "gorm.io/gorm"

// Comment 读者在文章详情页提交的评论
// Active 为 false 的评论不在前台展示，但保留在表中
type Comment struct {
	gorm.Model
	PostID uint   `gorm:"index;not null"`
	Name   string `gorm:"size:80;not null"`
	Email  string `gorm:"size:254;not null"`
	Body   string `gorm:"type:text;not null"`
	Active bool   `gorm:"not null;default:true"`
}

// ActiveComments limits a query to comments eligible for display.
func ActiveComments(tx *gorm.DB) *gorm.DB {
	return tx.Where("comments.active = ?", true)
}
