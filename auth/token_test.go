package auth

import (
	"testing"
	"time"

	"github.com/Handsol/nbc-final-project/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := models.User{ID: "user-1", Name: "Alice", Picture: "https://example.com/a.png"}
	token, err := GenerateToken(user, time.Hour)
	require.NoError(t, err)

	session, err := ParseSession(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", session.UserID)
	assert.Equal(t, "Alice", session.Name)
	assert.Equal(t, "https://example.com/a.png", session.Picture)
}

func TestExpiredTokenRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken(models.User{ID: "user-1"}, -time.Minute)
	require.NoError(t, err)

	_, err = ParseSession(token)
	assert.Error(t, err)
}

func TestTokenWithoutSubjectRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken(models.User{}, time.Hour)
	require.NoError(t, err)

	_, err = ParseSession(token)
	assert.Error(t, err)
}

func TestTokenWrongSecretRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := GenerateToken(models.User{ID: "user-1"}, time.Hour)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "other-secret")
	_, err = ParseSession(token)
	assert.Error(t, err)
}

func TestGenerateTokenPair(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	access, refresh, err := GenerateTokenPair(models.User{ID: "user-1"})
	require.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)

	for _, token := range []string{access, refresh} {
		session, err := ParseSession(token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", session.UserID)
	}
}
