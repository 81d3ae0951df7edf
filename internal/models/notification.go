package models

import "gorm.io/gorm"

// Notification records an action (comment, like) taken by Actor on a post owned
// by Recipient. Rows are plain inserts; repeated identical actions produce
// repeated notifications.
type Notification struct {
	gorm.Model
	RecipientID uint   `gorm:"not null;index"`
	ActorID     uint   `gorm:"not null"`
	Verb        string `gorm:"size:255;not null"`
	PostID      uint   `gorm:"not null"`

	Recipient User `gorm:"foreignKey:RecipientID"`
	Actor     User `gorm:"foreignKey:ActorID"`
	Post      Post `gorm:"foreignKey:PostID"`
}
