package routes

import (
	"github.com/gin-gonic/gin"
	authControllers "github.com/kusk24/restyle-api/controllers/auth"
	"github.com/kusk24/restyle-api/middleware"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authControllers.Register(db))
		authGroup.POST("/login", authControllers.Login(db))
		authGroup.POST("/logout", authControllers.Logout())
		authGroup.GET("/session", middleware.ValidateSession, authControllers.Session(db))
	}
}
