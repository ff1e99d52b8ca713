package clothControllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kusk24/restyle-api/auth"
	"github.com/kusk24/restyle-api/models"
	"gorm.io/gorm"
)

var sortableColumns = map[string]bool{
	"created_at": true,
	"price":      true,
	"rating":     true,
	"views":      true,
	"name":       true,
}

// GET /clothes
//
// Query params: category, search, min_price, max_price, sale,
// marketplace=true (user listings that are active), owner=me (the caller's
// own listings in any status, session required), sort_by, order.
func GetCloths(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := c.Query("search")
		category := c.Query("category")
		minPriceStr := c.Query("min_price")
		maxPriceStr := c.Query("max_price")
		sortBy := c.DefaultQuery("sort_by", "created_at")
		sortOrder := strings.ToLower(c.DefaultQuery("order", "desc"))
		if sortOrder != "asc" && sortOrder != "desc" {
			sortOrder = "desc"
		}
		if !sortableColumns[sortBy] {
			sortBy = "created_at"
		}

		query := db.Model(&models.Cloth{})

		switch {
		case c.Query("marketplace") == "true":
			// Marketplace view: user listings currently active
			query = query.Where("user_id IS NOT NULL AND status = ?", models.StatusActive)
		case c.Query("owner") == "me":
			userID, _, err := auth.VerifyToken(auth.TokenFromRequest(c))
			if err != nil {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
				return
			}
			query = query.Where("user_id = ?", userID)
		default:
			// Catalog view: shop items plus active user listings
			query = query.Where("user_id IS NULL OR status = ?", models.StatusActive)
		}

		if search != "" {
			likePattern := "%" + strings.ToLower(search) + "%"
			query = query.Where(
				"LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(brand) LIKE ?",
				likePattern, likePattern, likePattern,
			)
		}

		if category != "" {
			cat, err := models.ParseCategory(category)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
				return
			}
			query = query.Where("category = ?", cat)
		}

		if minPriceStr != "" {
			if mp, err := strconv.ParseFloat(minPriceStr, 64); err == nil {
				query = query.Where("price >= ?", mp)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
		}
		if maxPriceStr != "" {
			if mp, err := strconv.ParseFloat(maxPriceStr, 64); err == nil {
				query = query.Where("price <= ?", mp)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
		}

		if c.Query("sale") == "true" {
			query = query.Where("sale = ?", true)
		}

		var cloths []models.Cloth
		if err := query.Order(fmt.Sprintf("%s %s", sortBy, sortOrder)).Find(&cloths).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cloths"})
			return
		}

		c.JSON(http.StatusOK, cloths)
	}
}
