package handler

import (
	"net/http"
	"strconv"
	"time"

	"socialnet/backend/internal/database"
	"socialnet/backend/internal/models"
	"socialnet/backend/internal/notify"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// CommentInput defines the structure for creating a comment.
type CommentInput struct {
	PostID  uint   `json:"post_id" binding:"required" example:"1"`
	Content string `json:"content" binding:"required" example:"Nice post!"`
}

// CommentUpdateInput defines the structure for updating a comment. The parent
// post cannot be changed.
type CommentUpdateInput struct {
	Content string `json:"content" binding:"required" example:"Nice post!"`
}

// CommentResponse defines the structure for a comment.
type CommentResponse struct {
	ID        uint      `json:"id" example:"1"`
	PostID    uint      `json:"post_id" example:"1"`
	AuthorID  uint      `json:"author_id" example:"2"`
	Author    string    `json:"author" example:"bob"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func newCommentResponse(comment models.Comment) CommentResponse {
	return CommentResponse{
		ID:        comment.ID,
		PostID:    comment.PostID,
		AuthorID:  comment.AuthorID,
		Author:    comment.Author.Username,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}
}

// PaginatedCommentResponse defines the structure for a paginated list of comments.
type PaginatedCommentResponse struct {
	Data []CommentResponse `json:"data"`
	Meta PaginationMeta    `json:"meta"`
}

// CreateComment godoc
// @Summary      Create a comment
// @Description  Adds a comment to a post. Notifies the post author unless they are the commenter.
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body CommentInput true "Comment Info"
// @Success      201  {object}  CommentResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Post not found"
// @Router       /comments [post]
func CreateComment(c *gin.Context) {
	viewerID, _ := c.Get("userID")

	var input CommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var post models.Post
	if err := database.DB.First(&post, input.PostID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	comment := models.Comment{
		AuthorID: viewerID.(uint),
		PostID:   post.ID,
		Content:  input.Content,
	}

	if err := database.DB.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment"})
		return
	}

	database.DB.Preload("Author").First(&comment, comment.ID)

	// Commenting on your own post does not notify you.
	if post.AuthorID != comment.AuthorID {
		if err := notify.PostCommented(database.DB, post, comment.Author); err != nil {
			logrus.Warnf("Failed to record comment notification: %v", err)
		}
	}

	c.JSON(http.StatusCreated, newCommentResponse(comment))
}

// GetComments godoc
// @Summary      List comments
// @Description  Retrieves a paginated list of comments, optionally scoped to one post. Public.
// @Tags         comments
// @Produce      json
// @Param        post_id query    int  false  "Filter by post ID"
// @Param        page    query    int  false  "Page number" default(1)
// @Param        limit   query    int  false  "Items per page" default(10)
// @Success      200  {object}  PaginatedCommentResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /comments [get]
func GetComments(c *gin.Context) {
	page, limit := pageParams(c)
	offset := (page - 1) * limit

	dbQuery := database.DB.Model(&models.Comment{})
	if postIDStr := c.Query("post_id"); postIDStr != "" {
		postID, err := strconv.ParseUint(postIDStr, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
			return
		}
		dbQuery = dbQuery.Where("post_id = ?", uint(postID))
	}

	var totalItems int64
	if err := dbQuery.Count(&totalItems).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count comments"})
		return
	}

	var comments []models.Comment
	err := dbQuery.Preload("Author").
		Order("created_at DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&comments).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve comments"})
		return
	}

	response := make([]CommentResponse, 0, len(comments))
	for _, comment := range comments {
		response = append(response, newCommentResponse(comment))
	}

	c.JSON(http.StatusOK, NewPaginatedResponse(response, totalItems, page, limit))
}

// GetCommentByID godoc
// @Summary      Get a single comment
// @Description  Retrieves a comment by ID. Public.
// @Tags         comments
// @Produce      json
// @Param        id path int true "Comment ID"
// @Success      200  {object}  CommentResponse
// @Failure      404  {object}  ErrorResponse "Comment not found"
// @Router       /comments/{id} [get]
func GetCommentByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var comment models.Comment
	if err := database.DB.Preload("Author").First(&comment, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	c.JSON(http.StatusOK, newCommentResponse(comment))
}

// UpdateComment godoc
// @Summary      Update a comment
// @Description  Updates a comment's content. Only the author may do this.
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "Comment ID"
// @Param        input body      CommentUpdateInput true  "New Content"
// @Success      200   {object}  CommentResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse "Not the author"
// @Failure      404   {object}  ErrorResponse "Comment not found"
// @Router       /comments/{id} [put]
func UpdateComment(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var comment models.Comment
	if err := database.DB.First(&comment, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	if !requireAuthor(c, comment.AuthorID) {
		return
	}

	var input CommentUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment.Content = input.Content
	if err := database.DB.Save(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update comment"})
		return
	}

	database.DB.Preload("Author").First(&comment, comment.ID)

	c.JSON(http.StatusOK, newCommentResponse(comment))
}

// DeleteComment godoc
// @Summary      Delete a comment
// @Description  Deletes a comment. Only the author may do this.
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Comment ID"
// @Success      200 {object} map[string]string "{"message": "Comment deleted"}"
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse "Not the author"
// @Failure      404 {object} ErrorResponse "Comment not found"
// @Router       /comments/{id} [delete]
func DeleteComment(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var comment models.Comment
	if err := database.DB.First(&comment, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	if !requireAuthor(c, comment.AuthorID) {
		return
	}

	if err := database.DB.Delete(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete comment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted"})
}
