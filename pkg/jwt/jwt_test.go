package jwt_test

import (
	"testing"

	"socialnet/backend/internal/config"
	"socialnet/backend/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}

	token, err := jwt.GenerateToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := jwt.ParseToken(token)
	require.NoError(t, err)
	assert.EqualValues(t, 42, userID)
}

func TestParseToken_RejectsGarbage(t *testing.T) {
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}

	_, err := jwt.ParseToken("not.a.token")
	assert.Error(t, err)
}

func TestParseToken_RejectsWrongSecret(t *testing.T) {
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}
	token, err := jwt.GenerateToken(7)
	require.NoError(t, err)

	config.AppConfig = &config.Config{JWTSecret: "another-secret"}
	_, err = jwt.ParseToken(token)
	assert.Error(t, err)
}
