package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEndToEndScenario walks the basic lifecycle: alice posts, bob follows her,
// sees her post in his feed, likes it (once), and alice gets notified.
func TestEndToEndScenario(t *testing.T) {
	r := setupTest(t)

	aliceToken := registerUser(t, r, "alice")
	postID := createPost(t, r, aliceToken, "Hello", "alice's first post")

	bobToken := registerUser(t, r, "bob")

	rr := performRequest(r, http.MethodPost, "/api/v1/follow/1", bobToken, nil)
	require.Equal(t, http.StatusCreated, rr.Code)

	feed := getFeed(t, r, bobToken)
	require.Len(t, feed.Data, 1)
	assert.Equal(t, postID, feed.Data[0].ID)
	assert.Equal(t, "Hello", feed.Data[0].Title)

	rr = performRequest(r, http.MethodPost, "/api/v1/posts/1/like", bobToken, nil)
	assert.Equal(t, http.StatusCreated, rr.Code)

	rr = performRequest(r, http.MethodPost, "/api/v1/posts/1/like", bobToken, nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "already liked")

	notifications := getNotifications(t, r, aliceToken)
	require.Len(t, notifications, 1)
	assert.Contains(t, notifications[0].Verb, "liked your post Hello")
}
