package auth

import (
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/kusk24/restyle-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerifyToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := models.User{ID: "user-1", Email: "a@x.com"}
	token, err := IssueToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, email, err := VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "a@x.com", email)
}

func TestVerifyTokenMissing(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	_, _, err := VerifyToken("")
	assert.Error(t, err)
}

func TestVerifyTokenTampered(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := IssueToken(models.User{ID: "user-1", Email: "a@x.com"})
	require.NoError(t, err)

	_, _, err = VerifyToken(token + "x")
	assert.Error(t, err)
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := IssueToken(models.User{ID: "user-1", Email: "a@x.com"})
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "another-secret")
	_, _, err = VerifyToken(token)
	assert.Error(t, err)
}

func TestVerifyTokenExpired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	claims := jwt.MapClaims{
		"user_id": "user-1",
		"email":   "a@x.com",
		"exp":     time.Now().Add(-time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(os.Getenv("JWT_SECRET")))
	require.NoError(t, err)

	_, _, err = VerifyToken(expired)
	assert.Error(t, err)
}
