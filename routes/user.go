package routes

import (
	"github.com/gin-gonic/gin"
	userControllers "github.com/kusk24/restyle-api/controllers/user"
	"github.com/kusk24/restyle-api/middleware"
	"gorm.io/gorm"
)

// SetupUserRoutes registers the account endpoints. Requires a session.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/users")
	userGroup.Use(middleware.ValidateSession)
	{
		userGroup.PATCH("", userControllers.UpdateUser(db))  // PATCH /users
		userGroup.DELETE("", userControllers.DeleteUser(db)) // DELETE /users
	}
}
