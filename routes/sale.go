package routes

import (
	"os"

	"github.com/gin-gonic/gin"
	saleControllers "github.com/kusk24/restyle-api/controllers/sale"
	uploadController "github.com/kusk24/restyle-api/controllers/upload"
	"github.com/kusk24/restyle-api/middleware"
	"gorm.io/gorm"
)

// SetupSaleRoutes registers the order endpoints twice: under "/orders" for
// the cookie-based storefront and under "/sales" for bearer-header clients.
// Both families share one handler set.
func SetupSaleRoutes(r *gin.Engine, db *gorm.DB) {
	for _, prefix := range []string{"/orders", "/sales"} {
		group := r.Group(prefix)
		group.Use(middleware.ValidateSession)
		{
			group.POST("", saleControllers.PlaceOrderHandler(db))
			group.GET("", saleControllers.GetUserOrdersHandler(db))

			// websocket endpoint for real-time order updates
			group.GET("/ws", saleControllers.OrderWebSocketHandler)

			group.GET("/:id", saleControllers.GetOrderByIDHandler(db))
			group.PATCH("/:id", saleControllers.UpdateOrderHandler(db))
			group.PUT("/:id", saleControllers.UpdateOrderHandler(db))
			group.DELETE("/:id", saleControllers.DeleteOrderHandler(db))
		}
	}

	// Payment proof uploads referenced by PATCH /orders/:id
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	publicBaseURL := os.Getenv("PUBLIC_BASE_URL")
	if publicBaseURL == "" {
		publicBaseURL = "http://localhost:8080"
	}
	r.POST("/uploads/payment-proof", middleware.ValidateSession,
		uploadController.HandlePaymentProofUpload(uploadDir+"/proofs", publicBaseURL))
}
