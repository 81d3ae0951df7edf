package handler

import (
	"net/http"

	"socialnet/backend/internal/database"
	"socialnet/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// GetFeed godoc
// @Summary      Get the personal feed
// @Description  Retrieves posts authored by users the authenticated user follows, newest first.
// @Tags         feed
// @Produce      json
// @Security     BearerAuth
// @Param        page  query int false "Page number" default(1)
// @Param        limit query int false "Items per page" default(10)
// @Success      200  {object}  PaginatedPostResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /feed [get]
func GetFeed(c *gin.Context) {
	viewerID, _ := c.Get("userID")
	page, limit := pageParams(c)
	offset := (page - 1) * limit

	// Authors the viewer follows; an empty set yields an empty feed, not an error.
	followedAuthors := database.DB.Model(&models.Follow{}).
		Select("followee_id").
		Where("follower_id = ?", viewerID)

	dbQuery := database.DB.Model(&models.Post{}).
		Where("author_id IN (?)", followedAuthors)

	var totalItems int64
	if err := dbQuery.Count(&totalItems).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count feed posts"})
		return
	}

	var posts []models.Post
	err := dbQuery.Preload("Author").
		Order("created_at DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&posts).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve feed"})
		return
	}

	response := make([]PostResponse, 0, len(posts))
	for _, post := range posts {
		response = append(response, newPostResponse(post))
	}

	c.JSON(http.StatusOK, NewPaginatedResponse(response, totalItems, page, limit))
}
