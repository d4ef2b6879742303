package models

import "time"

type Product struct {
	ID              uint              `json:"id" gorm:"primaryKey"`
	Name            string            `json:"name" gorm:"not null"`
	Description     string            `json:"description" gorm:"not null"`
	Price           int               `json:"price" gorm:"not null"` // whole Rupiah
	Category        string            `json:"category" gorm:"not null;index"`
	Image           string            `json:"image"`
	IsPopular       bool              `json:"is_popular" gorm:"default:false"`
	IsNew           bool              `json:"is_new" gorm:"default:false"`
	AverageRating   float64           `json:"average_rating" gorm:"default:0"`
	ReviewCount     int               `json:"review_count" gorm:"default:0"`
	DiscountPercent *int              `json:"discount_percent"`
	Modifiers       []ProductModifier `json:"modifiers,omitempty" gorm:"foreignKey:ProductID"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// ProductModifier is a per-product add-on (extra shot, oat milk, ...)
type ProductModifier struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	ProductID  uint   `json:"product_id" gorm:"not null;index"`
	Name       string `json:"name" gorm:"not null"`
	PriceDelta int    `json:"price_delta" gorm:"default:0"`
	SortOrder  int    `json:"sort_order" gorm:"default:0"`
}
