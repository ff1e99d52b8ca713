package models

import "time"

type OrderStatus string
type PaymentStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // order placed, awaiting payment/shipping
	OrderStatusShipped   OrderStatus = "shipped"   // out for delivery
	OrderStatusDelivered OrderStatus = "delivered" // customer received the items
	OrderStatusCancelled OrderStatus = "cancelled" // cancelled before shipping

	PaymentStatusUnpaid PaymentStatus = "unpaid" // no payment proof yet
	PaymentStatusPaid   PaymentStatus = "paid"   // proof uploaded, manually reconciled
)

// Sale is an order. Contact info is snapshotted at order time and items are
// denormalized copies, so a sale survives later edits to the user or cloths.
type Sale struct {
	ID               uint          `gorm:"primaryKey" json:"id"`
	OrderRef         string        `gorm:"uniqueIndex" json:"order_ref"`
	UserID           string        `gorm:"index;not null" json:"user_id"`
	CustomerName     string        `json:"customer_name"`
	CustomerEmail    string        `json:"customer_email"`
	CustomerPhone    string        `json:"customer_phone"`
	ShippingAddress  Address       `gorm:"embedded;embeddedPrefix:ship_" json:"shipping_address"`
	Items            []SaleItem    `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE" json:"items"`
	Total            float64       `json:"total"`
	Status           OrderStatus   `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	PaymentStatus    PaymentStatus `gorm:"type:VARCHAR(10);default:'unpaid'" json:"payment_status"`
	PaymentProof     string        `json:"payment_proof,omitempty"`
	DeliveryEstimate *time.Time    `json:"delivery_estimate,omitempty"`
	CancelDeadline   *time.Time    `json:"cancel_deadline,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

type SaleItem struct {
	ID       uint    `gorm:"primaryKey" json:"-"`
	SaleID   uint    `gorm:"index" json:"-"`
	ClothID  uint    `json:"cloth_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image"`
}
