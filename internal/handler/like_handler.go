package handler

import (
	"net/http"
	"strconv"

	"socialnet/backend/internal/database"
	"socialnet/backend/internal/models"
	"socialnet/backend/internal/notify"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm/clause"
)

// LikePost godoc
// @Summary      Like a post
// @Description  Likes a post. A second like by the same user is rejected, not duplicated. Notifies the post author unless they are the liker.
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Post ID"
// @Success      201 {object} map[string]string "{"message": "Post liked successfully"}"
// @Failure      400 {object} ErrorResponse "You have already liked this post"
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Post not found"
// @Router       /posts/{id}/like [post]
func LikePost(c *gin.Context) {
	viewerID, _ := c.Get("userID")
	postID, _ := strconv.Atoi(c.Param("id"))

	var post models.Post
	if err := database.DB.First(&post, postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	like := models.Like{
		UserID: viewerID.(uint),
		PostID: post.ID,
	}

	// Insert-if-absent against the (user_id, post_id) unique index. Concurrent
	// duplicate likes resolve at the database; exactly one insert wins.
	result := database.DB.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "post_id"}},
			DoNothing: true,
		}).
		Create(&like)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to like post"})
		return
	}

	if result.RowsAffected == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You have already liked this post"})
		return
	}

	// Liking your own post does not notify you.
	if post.AuthorID != viewerID.(uint) {
		var actor models.User
		if err := database.DB.First(&actor, viewerID.(uint)).Error; err == nil {
			if err := notify.PostLiked(database.DB, post, actor); err != nil {
				logrus.Warnf("Failed to record like notification: %v", err)
			}
		}
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Post liked successfully"})
}

// UnlikePost godoc
// @Summary      Unlike a post
// @Description  Removes the authenticated user's like from a post.
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Post ID"
// @Success      200 {object} map[string]string "{"message": "Post unliked successfully"}"
// @Failure      400 {object} ErrorResponse "You haven't liked this post"
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Post not found"
// @Router       /posts/{id}/unlike [post]
func UnlikePost(c *gin.Context) {
	viewerID, _ := c.Get("userID")
	postID, _ := strconv.Atoi(c.Param("id"))

	var post models.Post
	if err := database.DB.First(&post, postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	result := database.DB.
		Where("user_id = ? AND post_id = ?", viewerID, post.ID).
		Delete(&models.Like{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unlike post"})
		return
	}

	if result.RowsAffected == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You haven't liked this post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post unliked successfully"})
}
