package clothControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kusk24/restyle-api/models"
	"gorm.io/gorm"
)

// UpdateClothInput is the allow-list of mutable fields. Anything else in the
// request body is ignored.
type UpdateClothInput struct {
	Name          *string   `json:"name"`
	Description   *string   `json:"description"`
	Price         *float64  `json:"price"`
	OriginalPrice *float64  `json:"original_price"`
	Category      *string   `json:"category"`
	Sizes         *[]string `json:"sizes"`
	Condition     *string   `json:"condition"`
	Brand         *string   `json:"brand"`
	Image         *string   `json:"image"`
	Status        *string   `json:"status"`
	Sale          *bool     `json:"sale"`
	InStock       *bool     `json:"in_stock"`
}

// PATCH /clothes/:id
func UpdateCloth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cloth, ok := loadOwnedCloth(c, db)
		if !ok {
			return
		}

		var input UpdateClothInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if input.Name != nil {
			cloth.Name = *input.Name
		}
		if input.Description != nil {
			cloth.Description = *input.Description
		}
		if input.Price != nil {
			if *input.Price <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be positive"})
				return
			}
			cloth.Price = *input.Price
		}
		if input.OriginalPrice != nil {
			cloth.OriginalPrice = input.OriginalPrice
		}
		if input.Category != nil {
			category, err := models.ParseCategory(*input.Category)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
				return
			}
			cloth.Category = category
		}
		if input.Sizes != nil {
			cloth.Sizes = *input.Sizes
		}
		if input.Condition != nil {
			cloth.Condition = *input.Condition
		}
		if input.Brand != nil {
			cloth.Brand = *input.Brand
		}
		if input.Image != nil {
			cloth.Image = *input.Image
		}
		if input.Sale != nil {
			cloth.Sale = *input.Sale
		}
		if input.InStock != nil {
			cloth.InStock = *input.InStock
		}

		if input.Status != nil {
			if cloth.UserID == nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Shop items have no listing status"})
				return
			}
			status, err := models.ParseStatus(*input.Status)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid listing status"})
				return
			}
			// Once sold, a listing only returns to active through order
			// cancellation, never through the toggle.
			if cloth.Status != nil && *cloth.Status == models.StatusSold && status == models.StatusActive {
				c.JSON(http.StatusBadRequest, gin.H{"error": "A sold listing cannot be relisted"})
				return
			}
			// Unlisting after a sale leaves the listing indistinguishable
			// from any other unlisted one, so relisting also checks whether
			// an order still holds the item. Cancellation deletes the order's
			// items before reactivating, so a cancelled purchase clears this.
			if status == models.StatusActive && (cloth.Status == nil || *cloth.Status != models.StatusActive) {
				var held int64
				if err := db.Model(&models.SaleItem{}).Where("cloth_id = ?", cloth.ID).Count(&held).Error; err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cloth"})
					return
				}
				if held > 0 {
					c.JSON(http.StatusBadRequest, gin.H{"error": "Listing is held by an order and cannot be relisted"})
					return
				}
			}
			cloth.Status = &status
		}

		if err := db.Save(&cloth).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cloth"})
			return
		}

		c.JSON(http.StatusOK, cloth)
	}
}

// DELETE /clothes/:id
func DeleteCloth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cloth, ok := loadOwnedCloth(c, db)
		if !ok {
			return
		}

		if err := db.Delete(&cloth).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete cloth"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cloth deleted"})
	}
}

// loadOwnedCloth fetches the cloth from the URL and enforces ownership: a
// listing with an owner may only be touched by that owner. It writes the
// error response itself when returning ok=false.
func loadOwnedCloth(c *gin.Context, db *gorm.DB) (models.Cloth, bool) {
	var cloth models.Cloth

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cloth ID"})
		return cloth, false
	}

	if err := db.First(&cloth, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cloth not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve cloth"})
		}
		return cloth, false
	}

	userID, _ := c.Get("user_id")
	if cloth.UserID != nil && *cloth.UserID != userID.(string) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not own this listing"})
		return cloth, false
	}

	return cloth, true
}
