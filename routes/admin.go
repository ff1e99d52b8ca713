package routes

import (
	"github.com/gin-gonic/gin"
	adminController "github.com/kusk24/restyle-api/controllers/admin"
	"github.com/kusk24/restyle-api/middleware"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers the API-key-protected admin endpoints.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		adminGroup.GET("/export/sales", adminController.ExportSalesToExcel(db)) // GET /admin/export/sales
	}
}
