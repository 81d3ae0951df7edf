package models

import "gorm.io/gorm"

// Post represents a post authored by a user. Only the author may mutate it.
type Post struct {
	gorm.Model
	AuthorID uint   `gorm:"not null;index"`
	Title    string `gorm:"size:255;not null"`
	Content  string `gorm:"type:text"`

	Author User `gorm:"foreignKey:AuthorID"`
}
