package models

import "time"

type User struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"` // always stored lower-cased
	PasswordHash string    `gorm:"not null" json:"-"`
	Phone        string    `json:"phone"`
	Address      Address   `gorm:"embedded" json:"address"`
	Cloths       []Cloth   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"cloths,omitempty"`
	Sales        []Sale    `gorm:"foreignKey:UserID" json:"sales,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Address model embedded in User and in the Sale contact snapshot
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}
