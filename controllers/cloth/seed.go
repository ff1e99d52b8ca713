package clothControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kusk24/restyle-api/catalog"
	"gorm.io/gorm"
)

// POST /clothes/seed (admin API key)
// Upserts the built-in shop catalog. Safe to call repeatedly.
func SeedCloths(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		created, err := catalog.Seed(catalog.NewStore(db))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to seed catalog"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Catalog seeded",
			"created": created,
		})
	}
}
