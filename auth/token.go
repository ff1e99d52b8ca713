package auth

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/kusk24/restyle-api/models"
)

// CookieName is the HTTP-only session cookie set on login/registration.
const CookieName = "auth-token"

// Sessions live for 7 days; there is no refresh or revocation, logout just
// clears the cookie.
const sessionTTL = 7 * 24 * time.Hour

// IssueToken signs a session token for a user.
func IssueToken(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(sessionTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// VerifyToken checks a session token and returns its claims. A missing,
// malformed or expired token is an ordinary "not signed in", never a panic.
func VerifyToken(tokenString string) (userID, email string, err error) {
	if tokenString == "" {
		return "", "", errors.New("missing token")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return "", "", errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", errors.New("invalid token claims")
	}

	userID, _ = claims["user_id"].(string)
	email, _ = claims["email"].(string)
	if userID == "" {
		return "", "", errors.New("invalid token claims")
	}
	return userID, email, nil
}

// TokenFromRequest pulls the session token out of the auth cookie, falling
// back to an "Authorization: Bearer" header for cookie-less clients.
func TokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(CookieName); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

// SetSessionCookie attaches the session cookie to the response.
// Secure is only set in production so local HTTP development keeps working.
func SetSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, int(sessionTTL.Seconds()), "/", "", isProduction(), true)
}

// ClearSessionCookie expires the session cookie.
func ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", isProduction(), true)
}

func isProduction() bool {
	return os.Getenv("APP_ENV") == "production"
}
