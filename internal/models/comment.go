package models

import "gorm.io/gorm"

// Comment is a reply attached to a post. Deleting the parent post removes its
// comments (cascaded by the content handlers, see DeletePost).
type Comment struct {
	gorm.Model
	AuthorID uint   `gorm:"not null;index"`
	PostID   uint   `gorm:"not null;index"`
	Content  string `gorm:"type:text;not null"`

	Author User `gorm:"foreignKey:AuthorID"`
	Post   Post `gorm:"foreignKey:PostID"`
}
