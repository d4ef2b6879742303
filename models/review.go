package models

import "time"

type Review struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_user_product_review"`
	User       User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	ProductID  uint      `json:"product_id" gorm:"not null;uniqueIndex:idx_user_product_review"`
	OrderID    *uint     `json:"order_id"`
	Rating     int       `json:"rating" gorm:"not null"`
	Comment    string    `json:"comment"`
	IsVerified bool      `json:"is_verified" gorm:"default:false"`
	CreatedAt  time.Time `json:"created_at"`
}
