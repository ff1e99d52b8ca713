package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kusk24/restyle-api/auth"
)

// ValidateSession guards routes that require a signed-in user. The token is
// read from the auth cookie or a bearer header; on success the verified
// user_id and email are placed on the context for handlers.
func ValidateSession(c *gin.Context) {
	token := auth.TokenFromRequest(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		c.Abort()
		return
	}

	userID, email, err := auth.VerifyToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
		c.Abort()
		return
	}

	c.Set("user_id", userID)
	c.Set("email", email)

	c.Next()
}
