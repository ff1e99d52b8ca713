package clothControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kusk24/restyle-api/models"
	"gorm.io/gorm"
)

// GET /clothes/:id
// Viewing a user listing counts as a "listing was viewed" event and bumps the
// view counter; shop items are not counted.
func GetClothByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cloth ID"})
			return
		}

		var cloth models.Cloth
		if err := db.First(&cloth, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cloth not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve cloth"})
			}
			return
		}

		if cloth.UserID != nil {
			if err := db.Model(&cloth).UpdateColumn("views", gorm.Expr("views + 1")).Error; err == nil {
				cloth.Views++
			}
		}

		c.JSON(http.StatusOK, cloth)
	}
}
