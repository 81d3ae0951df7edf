package notify

import (
	"fmt"
	"time"

	"socialnet/backend/internal/hub"
	"socialnet/backend/internal/models"
	"socialnet/backend/internal/monitoring"

	"gorm.io/gorm"
)

// Payload is the wire shape of a notification event, shared by the list endpoint
// and the SSE stream.
type Payload struct {
	ID        uint      `json:"id"`
	ActorID   uint      `json:"actor_id"`
	Actor     string    `json:"actor"`
	Verb      string    `json:"verb"`
	PostID    uint      `json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}

// PostLiked records a "liked your post" notification for the post's author.
// Callers must have already checked that actor != recipient.
func PostLiked(db *gorm.DB, post models.Post, actor models.User) error {
	verb := fmt.Sprintf("liked your post %s", post.Title)
	return create(db, "like", post.AuthorID, actor, verb, post.ID)
}

// PostCommented records a "commented on your post" notification for the post's
// author. Callers must have already checked that actor != recipient.
func PostCommented(db *gorm.DB, post models.Post, actor models.User) error {
	verb := fmt.Sprintf("commented on your post %s", post.Title)
	return create(db, "comment", post.AuthorID, actor, verb, post.ID)
}

// create is a pure insert: repeated identical actions produce repeated rows.
// On success the event is also pushed to the recipient's open streams.
func create(db *gorm.DB, kind string, recipientID uint, actor models.User, verb string, postID uint) error {
	notification := models.Notification{
		RecipientID: recipientID,
		ActorID:     actor.ID,
		Verb:        verb,
		PostID:      postID,
	}

	if err := db.Create(&notification).Error; err != nil {
		return err
	}

	monitoring.NotificationsCreated.WithLabelValues(kind).Inc()

	hub.GlobalHub.Broadcast(recipientID, hub.Event{
		Type: "notification",
		Payload: Payload{
			ID:        notification.ID,
			ActorID:   actor.ID,
			Actor:     actor.Username,
			Verb:      verb,
			PostID:    postID,
			CreatedAt: notification.CreatedAt,
		},
	})

	return nil
}
