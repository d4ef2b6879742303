package models

import "time"

// Wishlist is a plain user-product join row
type Wishlist struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_user_product_wish"`
	ProductID uint      `json:"product_id" gorm:"not null;uniqueIndex:idx_user_product_wish"`
	Product   Product   `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	CreatedAt time.Time `json:"created_at"`
}
