package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"socialnet/backend/internal/handler"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateComment(t *testing.T) {
	r := setupTest(t)
	aliceToken := registerUser(t, r, "alice")
	bobToken := registerUser(t, r, "bob")
	postID := createPost(t, r, aliceToken, "Hello", "first post")

	t.Run("requires auth", func(t *testing.T) {
		rr := performRequest(r, http.MethodPost, "/api/v1/comments", "", gin.H{
			"post_id": postID,
			"content": "Nice post!",
		})
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("unknown post", func(t *testing.T) {
		rr := performRequest(r, http.MethodPost, "/api/v1/comments", bobToken, gin.H{
			"post_id": 999,
			"content": "Nice post!",
		})
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("comment notifies the post author", func(t *testing.T) {
		rr := performRequest(r, http.MethodPost, "/api/v1/comments", bobToken, gin.H{
			"post_id": postID,
			"content": "Nice post!",
		})
		require.Equal(t, http.StatusCreated, rr.Code)

		var comment handler.CommentResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &comment))
		assert.Equal(t, "bob", comment.Author)
		assert.Equal(t, postID, comment.PostID)

		notifications := getNotifications(t, r, aliceToken)
		require.Len(t, notifications, 1)
		assert.Contains(t, notifications[0].Verb, "commented on your post Hello")
	})

	t.Run("commenting on your own post does not notify", func(t *testing.T) {
		before := len(getNotifications(t, r, aliceToken))

		rr := performRequest(r, http.MethodPost, "/api/v1/comments", aliceToken, gin.H{
			"post_id": postID,
			"content": "thanks everyone",
		})
		require.Equal(t, http.StatusCreated, rr.Code)

		assert.Len(t, getNotifications(t, r, aliceToken), before)
	})

	t.Run("repeated comments produce repeated notifications", func(t *testing.T) {
		before := len(getNotifications(t, r, aliceToken))

		for i := 0; i < 2; i++ {
			rr := performRequest(r, http.MethodPost, "/api/v1/comments", bobToken, gin.H{
				"post_id": postID,
				"content": "again!",
			})
			require.Equal(t, http.StatusCreated, rr.Code)
		}

		assert.Len(t, getNotifications(t, r, aliceToken), before+2)
	})
}

func TestComments_PublicReadAndScoping(t *testing.T) {
	r := setupTest(t)
	aliceToken := registerUser(t, r, "alice")
	first := createPost(t, r, aliceToken, "First", "one")
	second := createPost(t, r, aliceToken, "Second", "two")

	for _, target := range []uint{first, first, second} {
		rr := performRequest(r, http.MethodPost, "/api/v1/comments", aliceToken, gin.H{
			"post_id": target,
			"content": "a comment",
		})
		require.Equal(t, http.StatusCreated, rr.Code)
	}

	rr := performRequest(r, http.MethodGet, "/api/v1/comments?post_id=1", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var resp handler.PaginatedCommentResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 2)
	assert.EqualValues(t, 2, resp.Meta.TotalItems)

	rr = performRequest(r, http.MethodGet, "/api/v1/comments", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 3)

	rr = performRequest(r, http.MethodGet, "/api/v1/comments/1", "", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestComment_AuthorOnlyMutation(t *testing.T) {
	r := setupTest(t)
	aliceToken := registerUser(t, r, "alice")
	bobToken := registerUser(t, r, "bob")
	postID := createPost(t, r, aliceToken, "Hello", "first post")

	rr := performRequest(r, http.MethodPost, "/api/v1/comments", bobToken, gin.H{
		"post_id": postID,
		"content": "Nice post!",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	t.Run("non-author update forbidden", func(t *testing.T) {
		rr := performRequest(r, http.MethodPut, "/api/v1/comments/1", aliceToken, gin.H{
			"content": "edited by alice",
		})
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("author update succeeds", func(t *testing.T) {
		rr := performRequest(r, http.MethodPut, "/api/v1/comments/1", bobToken, gin.H{
			"content": "edited by bob",
		})
		require.Equal(t, http.StatusOK, rr.Code)

		var comment handler.CommentResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &comment))
		assert.Equal(t, "edited by bob", comment.Content)
	})

	t.Run("non-author delete forbidden", func(t *testing.T) {
		rr := performRequest(r, http.MethodDelete, "/api/v1/comments/1", aliceToken, nil)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("author delete succeeds", func(t *testing.T) {
		rr := performRequest(r, http.MethodDelete, "/api/v1/comments/1", bobToken, nil)
		require.Equal(t, http.StatusOK, rr.Code)

		rr = performRequest(r, http.MethodGet, "/api/v1/comments/1", "", nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
