package routes

import (
	"github.com/gin-gonic/gin"
	clothControllers "github.com/kusk24/restyle-api/controllers/cloth"
	"github.com/kusk24/restyle-api/middleware"
	"gorm.io/gorm"
)

// SetupClothRoutes registers all "/clothes/*" endpoints. Browsing is public;
// creating, editing and deleting listings require a session; catalog seeding
// is admin-key only.
func SetupClothRoutes(r *gin.Engine, db *gorm.DB) {
	clothGroup := r.Group("/clothes")
	{
		// ──────────────── Browse ────────────────
		clothGroup.GET("", clothControllers.GetCloths(db))        // GET /clothes
		clothGroup.GET("/:id", clothControllers.GetClothByID(db)) // GET /clothes/:id

		// ──────────────── Listings ────────────────
		clothGroup.POST("", middleware.ValidateSession, clothControllers.CreateCloth(db))       // POST /clothes
		clothGroup.PATCH("/:id", middleware.ValidateSession, clothControllers.UpdateCloth(db))  // PATCH /clothes/:id
		clothGroup.DELETE("/:id", middleware.ValidateSession, clothControllers.DeleteCloth(db)) // DELETE /clothes/:id

		// ──────────────── Catalog Seed ────────────────
		clothGroup.POST("/seed", middleware.ValidateAPIKey, clothControllers.SeedCloths(db)) // POST /clothes/seed
	}
}
