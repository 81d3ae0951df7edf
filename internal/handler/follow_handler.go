package handler

import (
	"net/http"
	"strconv"

	"socialnet/backend/internal/database"
	"socialnet/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// FollowUser godoc
// @Summary      Follow a user
// @Description  Adds a directed follow edge from the authenticated user to the target.
// @Tags         follow
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Target User ID"
// @Success      201  {object}  map[string]string "{"message": "Now following user"}"
// @Failure      400  {object}  ErrorResponse "Cannot follow yourself"
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Target user not found"
// @Failure      409  {object}  ErrorResponse "Already following"
// @Router       /follow/{id} [post]
func FollowUser(c *gin.Context) {
	viewerID, _ := c.Get("userID")
	targetUserID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid target user ID"})
		return
	}

	if viewerID.(uint) == uint(targetUserID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot follow yourself"})
		return
	}

	var target models.User
	if err := database.DB.First(&target, uint(targetUserID)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Target user not found"})
		return
	}

	follow := models.Follow{
		FollowerID: viewerID.(uint),
		FolloweeID: uint(targetUserID),
	}

	// The composite primary key rejects a duplicate edge at the database, so two
	// concurrent follows cannot both succeed.
	if err := database.DB.Create(&follow).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Already following this user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Now following user"})
}

// UnfollowUser godoc
// @Summary      Unfollow a user
// @Description  Removes the follow edge to the target. Succeeds even if no edge exists.
// @Tags         follow
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Target User ID"
// @Success      200  {object}  map[string]string "{"message": "Unfollowed user"}"
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Target user not found"
// @Router       /unfollow/{id} [post]
func UnfollowUser(c *gin.Context) {
	viewerID, _ := c.Get("userID")
	targetUserID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid target user ID"})
		return
	}

	var target models.User
	if err := database.DB.First(&target, uint(targetUserID)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Target user not found"})
		return
	}

	result := database.DB.
		Where("follower_id = ? AND followee_id = ?", viewerID, targetUserID).
		Delete(&models.Follow{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unfollow user"})
		return
	}

	// Deleting an absent edge is a no-op, not an error.
	if result.RowsAffected == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "Not following this user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Unfollowed user"})
}
