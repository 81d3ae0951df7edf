package handler

import (
	"net/http"
	"strconv"
	"time"

	"socialnet/backend/internal/database"
	"socialnet/backend/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// region --- DTOs ---

// PostInput defines the structure for creating or updating a post.
type PostInput struct {
	Title   string `json:"title" binding:"required" example:"Hello"`
	Content string `json:"content" example:"My first post"`
}

// PostResponse defines the structure for a post.
type PostResponse struct {
	ID        uint      `json:"id" example:"1"`
	AuthorID  uint      `json:"author_id" example:"1"`
	Author    string    `json:"author" example:"alice"`
	Title     string    `json:"title" example:"Hello"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newPostResponse(post models.Post) PostResponse {
	return PostResponse{
		ID:        post.ID,
		AuthorID:  post.AuthorID,
		Author:    post.Author.Username,
		Title:     post.Title,
		Content:   post.Content,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}

// PaginatedPostResponse defines the structure for a paginated list of posts.
type PaginatedPostResponse struct {
	Data []PostResponse `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

// endregion

// region --- Handlers ---

// CreatePost godoc
// @Summary      Create a new post
// @Description  Creates a post authored by the authenticated user.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body PostInput true "Post Info"
// @Success      201  {object}  PostResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /posts [post]
func CreatePost(c *gin.Context) {
	viewerID, _ := c.Get("userID")

	var input PostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post := models.Post{
		AuthorID: viewerID.(uint),
		Title:    input.Title,
		Content:  input.Content,
	}

	if err := database.DB.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	database.DB.Preload("Author").First(&post, post.ID)

	c.JSON(http.StatusCreated, newPostResponse(post))
}

// GetPosts godoc
// @Summary      List posts
// @Description  Retrieves a paginated list of posts, filterable by title and searchable over title and content. Public.
// @Tags         posts
// @Produce      json
// @Param        title  query     string  false  "Filter by title (case-insensitive)"
// @Param        search query     string  false  "Search over title and content"
// @Param        page   query     int     false  "Page number" default(1)
// @Param        limit  query     int     false  "Items per page" default(10)
// @Success      200  {object}  PaginatedPostResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /posts [get]
func GetPosts(c *gin.Context) {
	page, limit := pageParams(c)
	offset := (page - 1) * limit

	titleFilter := c.Query("title")
	searchQuery := c.Query("search")

	// lower(...) LIKE keeps the query portable across postgres and sqlite.
	dbQuery := database.DB.Model(&models.Post{})
	if titleFilter != "" {
		dbQuery = dbQuery.Where("lower(title) = lower(?)", titleFilter)
	}
	if searchQuery != "" {
		pattern := "%" + searchQuery + "%"
		dbQuery = dbQuery.Where("lower(title) LIKE lower(?) OR lower(content) LIKE lower(?)", pattern, pattern)
	}

	var totalItems int64
	if err := dbQuery.Count(&totalItems).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count posts"})
		return
	}

	var posts []models.Post
	err := dbQuery.Preload("Author").
		Order("created_at DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&posts).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve posts"})
		return
	}

	response := make([]PostResponse, 0, len(posts))
	for _, post := range posts {
		response = append(response, newPostResponse(post))
	}

	c.JSON(http.StatusOK, NewPaginatedResponse(response, totalItems, page, limit))
}

// GetPostByID godoc
// @Summary      Get a single post
// @Description  Retrieves a post by ID. Public.
// @Tags         posts
// @Produce      json
// @Param        id path int true "Post ID"
// @Success      200  {object}  PostResponse
// @Failure      404  {object}  ErrorResponse "Post not found"
// @Router       /posts/{id} [get]
func GetPostByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var post models.Post
	if err := database.DB.Preload("Author").First(&post, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	c.JSON(http.StatusOK, newPostResponse(post))
}

// UpdatePost godoc
// @Summary      Update a post
// @Description  Updates a post. Only the author may do this.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int       true  "Post ID"
// @Param        input body      PostInput true  "New Post Info"
// @Success      200   {object}  PostResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse "Not the author"
// @Failure      404   {object}  ErrorResponse "Post not found"
// @Router       /posts/{id} [put]
func UpdatePost(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var post models.Post
	if err := database.DB.First(&post, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	if !requireAuthor(c, post.AuthorID) {
		return
	}

	var input PostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post.Title = input.Title
	post.Content = input.Content

	if err := database.DB.Save(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
		return
	}

	database.DB.Preload("Author").First(&post, post.ID)

	c.JSON(http.StatusOK, newPostResponse(post))
}

// DeletePost godoc
// @Summary      Delete a post
// @Description  Deletes a post and its comments, likes and notifications. Only the author may do this.
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Post ID"
// @Success      200 {object} map[string]string "{"message": "Post deleted"}"
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse "Not the author"
// @Failure      404 {object} ErrorResponse "Post not found"
// @Router       /posts/{id} [delete]
func DeletePost(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var post models.Post
	if err := database.DB.First(&post, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	if !requireAuthor(c, post.AuthorID) {
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		for _, del := range []error{
			tx.Where("post_id = ?", post.ID).Delete(&models.Comment{}).Error,
			tx.Where("post_id = ?", post.ID).Delete(&models.Like{}).Error,
			tx.Where("post_id = ?", post.ID).Delete(&models.Notification{}).Error,
		} {
			if del != nil {
				return del
			}
		}
		return tx.Delete(&post).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}

// endregion

// requireAuthor enforces the author-only mutation policy: reads are public, but
// update/delete need the requester to own the resource. Writes the error response
// and returns false when the check fails.
func requireAuthor(c *gin.Context, authorID uint) bool {
	viewerID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return false
	}
	if viewerID.(uint) != authorID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the author can modify this resource"})
		return false
	}
	return true
}
