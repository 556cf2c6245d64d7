package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Restaurant struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"not null"`
	Category    string          `json:"category"`
	Address     string          `json:"address"`
	Phone       string          `json:"phone"`
	DeliveryFee decimal.Decimal `json:"delivery_fee" gorm:"type:decimal(10,2)"`
	Rating      float64         `json:"rating" gorm:"default:0"`
	Active      bool            `json:"active" gorm:"default:true"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Product belongs to exactly one restaurant for its whole life; RestaurantID
// never changes after creation. Rows are never deleted, availability is toggled.
type Product struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	RestaurantID uint            `json:"restaurant_id" gorm:"not null"`
	Name         string          `json:"name" gorm:"not null"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Category     string          `json:"category"`
	Available    bool            `json:"available" gorm:"default:true"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
