package models

import (
	"errors"
	"strings"
	"time"
)

type ClothCategory string
type ClothStatus string

const (
	CategoryTops        ClothCategory = "tops"
	CategoryBottoms     ClothCategory = "bottoms"
	CategoryDresses     ClothCategory = "dresses"
	CategoryOuterwear   ClothCategory = "outerwear"
	CategoryShoes       ClothCategory = "shoes"
	CategoryAccessories ClothCategory = "accessories"

	// Listing statuses (user-owned cloths only; shop items carry none)
	StatusActive   ClothStatus = "active"   // visible on the marketplace
	StatusUnlisted ClothStatus = "unlisted" // hidden by the owner
	StatusSold     ClothStatus = "sold"     // purchased; only order cancellation reactivates
)

// Cloth is a single clothing item. Shop-seeded items have no owner and no
// status; user listings always carry both.
type Cloth struct {
	ID            uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string        `gorm:"not null" json:"name"`
	Price         float64       `gorm:"not null" json:"price"`
	OriginalPrice *float64      `json:"original_price,omitempty"`
	Description   string        `json:"description"`
	Image         string        `json:"image"`
	Category      ClothCategory `gorm:"type:VARCHAR(20);index" json:"category"`
	Sizes         []string      `gorm:"serializer:json" json:"sizes"`
	Condition     string        `json:"condition,omitempty"`
	Brand         string        `json:"brand,omitempty"`
	Sale          bool          `json:"sale"`
	Rating        float64       `json:"rating"`
	Reviews       int           `json:"reviews"`
	InStock       bool          `gorm:"default:true" json:"in_stock"`
	UserID        *string       `gorm:"index" json:"user_id,omitempty"`
	Status        *ClothStatus  `gorm:"type:VARCHAR(10)" json:"status,omitempty"`
	Views         int           `json:"views"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// ParseCategory maps a request string to a ClothCategory.
func ParseCategory(s string) (ClothCategory, error) {
	switch ClothCategory(strings.ToLower(s)) {
	case CategoryTops, CategoryBottoms, CategoryDresses, CategoryOuterwear, CategoryShoes, CategoryAccessories:
		return ClothCategory(strings.ToLower(s)), nil
	default:
		return "", errors.New("invalid category")
	}
}

// ParseStatus maps a request string to a ClothStatus.
func ParseStatus(s string) (ClothStatus, error) {
	switch ClothStatus(strings.ToLower(s)) {
	case StatusActive, StatusUnlisted, StatusSold:
		return ClothStatus(strings.ToLower(s)), nil
	default:
		return "", errors.New("invalid listing status")
	}
}
