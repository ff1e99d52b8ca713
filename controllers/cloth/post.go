package clothControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kusk24/restyle-api/models"
	"gorm.io/gorm"
)

type CreateClothInput struct {
	Name          string   `json:"name" binding:"required"`
	Price         float64  `json:"price" binding:"required,gt=0"`
	OriginalPrice *float64 `json:"original_price"`
	Description   string   `json:"description"`
	Image         string   `json:"image"`
	Category      string   `json:"category" binding:"required"`
	Sizes         []string `json:"sizes"`
	Condition     string   `json:"condition"`
	Brand         string   `json:"brand"`
	Sale          bool     `json:"sale"`
	Status        string   `json:"status"`
}

// POST /clothes
// Creates a marketplace listing owned by the caller. A listing always has a
// status; it defaults to active.
func CreateCloth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, _ := c.Get("user_id")
		userID := userIDVal.(string)

		var input CreateClothInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		category, err := models.ParseCategory(input.Category)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
			return
		}

		status := models.StatusActive
		if input.Status != "" {
			status, err = models.ParseStatus(input.Status)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid listing status"})
				return
			}
			if status == models.StatusSold {
				c.JSON(http.StatusBadRequest, gin.H{"error": "A new listing cannot start as sold"})
				return
			}
		}

		cloth := models.Cloth{
			Name:          input.Name,
			Price:         input.Price,
			OriginalPrice: input.OriginalPrice,
			Description:   input.Description,
			Image:         input.Image,
			Category:      category,
			Sizes:         input.Sizes,
			Condition:     input.Condition,
			Brand:         input.Brand,
			Sale:          input.Sale,
			InStock:       true,
			UserID:        &userID,
			Status:        &status,
		}

		if err := db.Create(&cloth).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create listing"})
			return
		}

		c.JSON(http.StatusCreated, cloth)
	}
}
