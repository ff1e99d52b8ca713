package saleControllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kusk24/restyle-api/models"
	"gorm.io/gorm"
)

// Unpaid orders may be cancelled until this long after checkout; uploading a
// payment proof clears the deadline.
const cancelWindow = 24 * time.Hour

// Delivery estimate attached when a payment proof arrives.
const deliveryLeadTime = 5 * 24 * time.Hour

// -------- Request Structs --------

type OrderItemInput struct {
	ClothID  uint    `json:"cloth_id" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity" binding:"required,min=1"`
	Image    string  `json:"image"`
}

type PlaceOrderRequest struct {
	Items   []OrderItemInput `json:"items" binding:"required,min=1,dive"`
	Total   float64          `json:"total" binding:"required,gt=0"`
	Name    string           `json:"name"`
	Email   string           `json:"email"`
	Phone   string           `json:"phone"`
	Address models.Address   `json:"address"`
}

type UpdateOrderInput struct {
	Status           *string    `json:"status"`
	PaymentProof     *string    `json:"payment_proof"`
	DeliveryEstimate *time.Time `json:"delivery_estimate"`
	CancelDeadline   *time.Time `json:"cancel_deadline"`
}

// -------- Helpers --------

func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch models.OrderStatus(strings.ToLower(status)) {
	case models.OrderStatusPending, models.OrderStatusShipped, models.OrderStatusDelivered, models.OrderStatusCancelled:
		return models.OrderStatus(strings.ToLower(status)), nil
	default:
		return "", errors.New("invalid order status")
	}
}

// Generate unique order reference, e.g. 20250908130500-<uuid4>
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// -------- Core Logic --------

// PlaceOrder creates an order from the request's denormalized items and marks
// every referenced user listing sold, all in one transaction. The contact
// email is forced to the session's verified email so the snapshot cannot be
// spoofed.
func PlaceOrder(db *gorm.DB, userID, sessionEmail string, req PlaceOrderRequest) (models.Sale, error) {
	items := make([]models.SaleItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, models.SaleItem{
			ClothID:  item.ClothID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
			Image:    item.Image,
		})
	}

	deadline := time.Now().Add(cancelWindow)
	sale := models.Sale{
		OrderRef:        generateOrderRef(),
		UserID:          userID,
		CustomerName:    req.Name,
		CustomerEmail:   sessionEmail,
		CustomerPhone:   req.Phone,
		ShippingAddress: req.Address,
		Items:           items,
		Total:           req.Total,
		Status:          models.OrderStatusPending,
		PaymentStatus:   models.PaymentStatusUnpaid,
		CancelDeadline:  &deadline,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&sale).Error; err != nil {
			return err
		}

		// Mark purchased user listings sold. A missing cloth is fine: the
		// order keeps its snapshot, there is just nothing to flip.
		for _, item := range req.Items {
			var cloth models.Cloth
			if err := tx.First(&cloth, item.ClothID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					continue
				}
				return err
			}
			if cloth.UserID == nil {
				continue
			}
			if err := tx.Model(&cloth).Update("status", models.StatusSold).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return models.Sale{}, err
	}

	return sale, nil
}

// CancelOrder deletes the order and reactivates every listing it sold, as a
// single transaction so a failure cannot strand listings in sold.
func CancelOrder(db *gorm.DB, sale models.Sale) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, item := range sale.Items {
			var cloth models.Cloth
			if err := tx.First(&cloth, item.ClothID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					continue
				}
				return err
			}
			if cloth.UserID == nil || cloth.Status == nil || *cloth.Status != models.StatusSold {
				continue
			}
			if err := tx.Model(&cloth).Update("status", models.StatusActive).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("sale_id = ?", sale.ID).Delete(&models.SaleItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Sale{}, sale.ID).Error
	})
}

// -------- Handlers --------

// POST /orders
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, _ := c.Get("user_id")
		emailVal, _ := c.Get("email")

		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		sale, err := PlaceOrder(db, userIDVal.(string), emailVal.(string), req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}

		broadcastOrderEvent("order_created", sale)
		c.JSON(http.StatusCreated, sale)
	}
}

// GET /orders
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")

		var sales []models.Sale
		if err := db.
			Where("user_id = ?", userID).
			Preload("Items").
			Order("created_at DESC").
			Find(&sales).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, sales)
	}
}

// GET /orders/:id
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sale, ok := loadOwnOrder(c, db)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, sale)
	}
}

// PATCH /orders/:id (PUT accepted for older clients)
func UpdateOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sale, ok := loadOwnOrder(c, db)
		if !ok {
			return
		}

		var input UpdateOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if input.Status != nil {
			status, err := mapOrderStatus(*input.Status)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			updates["status"] = status
		}
		if input.DeliveryEstimate != nil {
			updates["delivery_estimate"] = *input.DeliveryEstimate
		}
		if input.CancelDeadline != nil {
			updates["cancel_deadline"] = *input.CancelDeadline
		}
		if input.PaymentProof != nil {
			// Proof upload settles the order: mark it paid, schedule
			// delivery and close the cancellation window.
			updates["payment_proof"] = *input.PaymentProof
			updates["payment_status"] = models.PaymentStatusPaid
			if input.DeliveryEstimate == nil {
				updates["delivery_estimate"] = time.Now().Add(deliveryLeadTime)
			}
			updates["cancel_deadline"] = nil
		}

		if len(updates) > 0 {
			if err := db.Model(&sale).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
				return
			}
			if err := db.Preload("Items").First(&sale, sale.ID).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
				return
			}
		}

		broadcastOrderEvent("order_updated", sale)
		c.JSON(http.StatusOK, sale)
	}
}

// DELETE /orders/:id — cancellation
func DeleteOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sale, ok := loadOwnOrder(c, db)
		if !ok {
			return
		}

		if err := CancelOrder(db, sale); err != nil {
			log.Printf("❌ Failed to cancel order %s: %v", sale.OrderRef, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel order"})
			return
		}

		broadcastOrderEvent("order_cancelled", sale)
		c.JSON(http.StatusOK, gin.H{"message": "Order cancelled"})
	}
}

// loadOwnOrder fetches the order from the URL (numeric id or order_ref) and
// hides other users' orders behind a 404.
func loadOwnOrder(c *gin.Context, db *gorm.DB) (models.Sale, bool) {
	var sale models.Sale

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order ID is required"})
		return sale, false
	}

	userID, _ := c.Get("user_id")

	// Postgres will not compare a non-numeric string against the integer
	// primary key, so pick the lookup column up front.
	query := db.Preload("Items").Where("user_id = ?", userID)
	if numericID, convErr := strconv.ParseUint(id, 10, 64); convErr == nil {
		query = query.Where("id = ?", numericID)
	} else {
		query = query.Where("order_ref = ?", id)
	}

	err := query.First(&sale).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
		}
		return sale, false
	}

	return sale, true
}
