package userControllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kusk24/restyle-api/auth"
	"github.com/kusk24/restyle-api/models"
	"gorm.io/gorm"
)

type UpdateUserInput struct {
	Name            *string         `json:"name"`
	Email           *string         `json:"email"`
	Phone           *string         `json:"phone"`
	Address         *models.Address `json:"address"`
	CurrentPassword *string         `json:"current_password"`
	NewPassword     *string         `json:"new_password"`
}

// PATCH /users
func UpdateUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		var input UpdateUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.Phone != nil {
			updates["phone"] = *input.Phone
		}
		if input.Address != nil {
			updates["street"] = input.Address.Street
			updates["city"] = input.Address.City
			updates["state"] = input.Address.State
			updates["postal_code"] = input.Address.PostalCode
			updates["country"] = input.Address.Country
		}

		if input.Email != nil {
			email := strings.ToLower(strings.TrimSpace(*input.Email))
			if email != user.Email {
				var existing models.User
				err := db.Where("email = ? AND id <> ?", email, user.ID).First(&existing).Error
				if err == nil {
					c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
					return
				}
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
					return
				}
				updates["email"] = email
			}
		}

		// Password change requires proving knowledge of the current one
		if input.NewPassword != nil {
			if input.CurrentPassword == nil || !auth.CheckPassword(user.PasswordHash, *input.CurrentPassword) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Current password is incorrect"})
				return
			}
			if len(*input.NewPassword) < auth.MinPasswordLength {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 6 characters"})
				return
			}
			hash, err := auth.HashPassword(*input.NewPassword)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
				return
			}
			updates["password_hash"] = hash
		}

		if len(updates) > 0 {
			if err := db.Model(&user).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
				return
			}
			db.First(&user, "id = ?", user.ID)
		}

		c.JSON(http.StatusOK, user)
	}
}

// DELETE /users
// Removes the account together with the user's listings. Sales are kept:
// their item rows are snapshots and buyers keep their history.
func DeleteUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("user_id = ?", user.ID).Delete(&models.Cloth{}).Error; err != nil {
				return err
			}
			return tx.Delete(&user).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete account"})
			return
		}

		auth.ClearSessionCookie(c)
		c.JSON(http.StatusOK, gin.H{"message": "Account deleted"})
	}
}
