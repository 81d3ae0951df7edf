package models

import "time"

// Like marks a post as liked by a user. The composite unique index enforces at
// most one like per (user, post) pair; inserts race on it rather than on a
// read-then-write check. No soft delete: an unliked row must free the index so
// the post can be liked again.
type Like struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_likes_user_post"`
	PostID    uint `gorm:"not null;uniqueIndex:idx_likes_user_post;index"`
	CreatedAt time.Time

	User User `gorm:"foreignKey:UserID"`
	Post Post `gorm:"foreignKey:PostID"`
}
