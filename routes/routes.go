package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up every route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public auth routes + session endpoint
	SetupAuthRoutes(r, db)

	// Account routes (session-protected)
	SetupUserRoutes(r, db)

	// Catalog + marketplace listings
	SetupClothRoutes(r, db)

	// Orders, the bearer-token /sales alias and payment-proof uploads
	SetupSaleRoutes(r, db)

	// Admin routes (API-key-protected)
	SetupAdminRoutes(r, db)
}
