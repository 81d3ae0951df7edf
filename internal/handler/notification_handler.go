package handler

import (
	"io"
	"net/http"

	"socialnet/backend/internal/database"
	"socialnet/backend/internal/hub"
	"socialnet/backend/internal/models"
	"socialnet/backend/internal/notify"

	"github.com/gin-gonic/gin"
)

// GetNotifications godoc
// @Summary      List notifications
// @Description  Retrieves the authenticated user's notifications, newest first.
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   notify.Payload
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /notifications [get]
func GetNotifications(c *gin.Context) {
	viewerID, _ := c.Get("userID")

	var notifications []models.Notification
	err := database.DB.Preload("Actor").
		Where("recipient_id = ?", viewerID).
		Order("created_at DESC, id DESC").
		Find(&notifications).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve notifications"})
		return
	}

	response := make([]notify.Payload, 0, len(notifications))
	for _, n := range notifications {
		response = append(response, notify.Payload{
			ID:        n.ID,
			ActorID:   n.ActorID,
			Actor:     n.Actor.Username,
			Verb:      n.Verb,
			PostID:    n.PostID,
			CreatedAt: n.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, response)
}

// StreamNotifications godoc
// @Summary      Stream notifications
// @Description  Server-sent event stream of notifications created while connected.
// @Tags         notifications
// @Produce      text/event-stream
// @Security     BearerAuth
// @Success      200  {string}  string  "event stream"
// @Failure      401  {object}  ErrorResponse
// @Router       /notifications/stream [get]
func StreamNotifications(c *gin.Context) {
	viewerID, _ := c.Get("userID")
	userID := viewerID.(uint)

	// Buffered so a burst of notifications doesn't stall the hub broadcast.
	client := make(hub.Client, 16)
	hub.GlobalHub.Subscribe(userID, client)
	defer hub.GlobalHub.Unsubscribe(userID, client)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case message, ok := <-client:
			if !ok {
				return false
			}
			c.SSEvent("notification", string(message))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
