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

func getFeed(t *testing.T, r *gin.Engine, token string) handler.PaginatedPostResponse {
	t.Helper()

	rr := performRequest(r, http.MethodGet, "/api/v1/feed", token, nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp handler.PaginatedPostResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

func TestFollow(t *testing.T) {
	r := setupTest(t)
	registerUser(t, r, "alice")
	bobToken := registerUser(t, r, "bob")

	t.Run("follow succeeds", func(t *testing.T) {
		rr := performRequest(r, http.MethodPost, "/api/v1/follow/1", bobToken, nil)
		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("duplicate follow conflicts", func(t *testing.T) {
		rr := performRequest(r, http.MethodPost, "/api/v1/follow/1", bobToken, nil)
		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("self follow rejected", func(t *testing.T) {
		rr := performRequest(r, http.MethodPost, "/api/v1/follow/2", bobToken, nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unknown target", func(t *testing.T) {
		rr := performRequest(r, http.MethodPost, "/api/v1/follow/999", bobToken, nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("requires auth", func(t *testing.T) {
		rr := performRequest(r, http.MethodPost, "/api/v1/follow/1", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestFollow_IsDirected(t *testing.T) {
	r := setupTest(t)
	registerUser(t, r, "alice")
	bobToken := registerUser(t, r, "bob")

	rr := performRequest(r, http.MethodPost, "/api/v1/follow/1", bobToken, nil)
	require.Equal(t, http.StatusCreated, rr.Code)

	// Following is asymmetric: bob->alice says nothing about alice->bob.
	rr = performRequest(r, http.MethodGet, "/api/v1/users/1", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var alice handler.ProfileResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &alice))
	assert.EqualValues(t, 1, alice.FollowersCount)
	assert.EqualValues(t, 0, alice.FollowingCount)

	rr = performRequest(r, http.MethodGet, "/api/v1/users/2", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var bob handler.ProfileResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &bob))
	assert.EqualValues(t, 0, bob.FollowersCount)
	assert.EqualValues(t, 1, bob.FollowingCount)
}

func TestUnfollow_NoOpSafe(t *testing.T) {
	r := setupTest(t)
	registerUser(t, r, "alice")
	bobToken := registerUser(t, r, "bob")

	// Unfollowing someone never followed is not an error.
	rr := performRequest(r, http.MethodPost, "/api/v1/unfollow/1", bobToken, nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = performRequest(r, http.MethodPost, "/api/v1/follow/1", bobToken, nil)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = performRequest(r, http.MethodPost, "/api/v1/unfollow/1", bobToken, nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	// The edge can be recreated after removal.
	rr = performRequest(r, http.MethodPost, "/api/v1/follow/1", bobToken, nil)
	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestFeed(t *testing.T) {
	r := setupTest(t)
	aliceToken := registerUser(t, r, "alice")
	bobToken := registerUser(t, r, "bob")
	carolToken := registerUser(t, r, "carol")

	createPost(t, r, aliceToken, "First", "alice one")
	createPost(t, r, carolToken, "Noise", "carol post")
	createPost(t, r, aliceToken, "Second", "alice two")

	t.Run("empty following set yields empty feed", func(t *testing.T) {
		resp := getFeed(t, r, bobToken)
		assert.Empty(t, resp.Data)
		assert.Zero(t, resp.Meta.TotalItems)
	})

	rr := performRequest(r, http.MethodPost, "/api/v1/follow/1", bobToken, nil)
	require.Equal(t, http.StatusCreated, rr.Code)

	t.Run("feed contains followed authors newest first", func(t *testing.T) {
		resp := getFeed(t, r, bobToken)
		require.Len(t, resp.Data, 2)
		assert.Equal(t, "Second", resp.Data[0].Title)
		assert.Equal(t, "First", resp.Data[1].Title)
		for _, post := range resp.Data {
			assert.Equal(t, "alice", post.Author)
		}
	})

	t.Run("unfollow removes the author's posts", func(t *testing.T) {
		rr := performRequest(r, http.MethodPost, "/api/v1/unfollow/1", bobToken, nil)
		require.Equal(t, http.StatusOK, rr.Code)

		resp := getFeed(t, r, bobToken)
		assert.Empty(t, resp.Data)
	})

	t.Run("requires auth", func(t *testing.T) {
		rr := performRequest(r, http.MethodGet, "/api/v1/feed", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
