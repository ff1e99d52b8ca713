package authControllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kusk24/restyle-api/auth"
	"github.com/kusk24/restyle-api/models"
	"gorm.io/gorm"
)

// -------- Request Structs --------

type RegisterRequest struct {
	Name     string         `json:"name" binding:"required"`
	Email    string         `json:"email" binding:"required,email"`
	Password string         `json:"password" binding:"required"`
	Phone    string         `json:"phone"`
	Address  models.Address `json:"address"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// -------- Handlers --------

// POST /auth/register
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if len(req.Password) < auth.MinPasswordLength {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 6 characters"})
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))

		// Duplicate check is case-insensitive because emails are stored lowered
		var existing models.User
		err := db.Where("email = ?", email).First(&existing).Error
		if err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}

		user := models.User{
			ID:           uuid.NewString(),
			Name:         req.Name,
			Email:        email,
			PasswordHash: hash,
			Phone:        req.Phone,
			Address:      req.Address,
		}

		if err := db.Create(&user).Error; err != nil {
			// A concurrent register can slip past the pre-check and hit
			// the unique index instead; that is still a duplicate, not a
			// server fault.
			if isUniqueViolation(err) {
				c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}

		issueSession(c, user, http.StatusCreated)
	}
}

// POST /auth/login
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))

		// Unknown email and wrong password get the same generic response
		var user models.User
		if err := db.Where("email = ?", email).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		if !auth.CheckPassword(user.PasswordHash, req.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}

		issueSession(c, user, http.StatusOK)
	}
}

// POST /auth/logout
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth.ClearSessionCookie(c)
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}

// GET /auth/session (behind ValidateSession)
func Session(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			// Token is valid but the account is gone (deleted)
			auth.ClearSessionCookie(c)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": user})
	}
}

// isUniqueViolation reports whether err is a unique-index violation. gorm only
// translates these to ErrDuplicatedKey when the dialector supports it, so the
// driver messages (sqlite, postgres) are matched as well.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "SQLSTATE 23505")
}

// issueSession signs a token, sets the cookie and writes the auth response.
func issueSession(c *gin.Context, user models.User, status int) {
	token, err := auth.IssueToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
		return
	}

	auth.SetSessionCookie(c, token)
	c.JSON(status, gin.H{
		"user":  user,
		"token": token,
	})
}
