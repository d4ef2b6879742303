package models

import "time"

// Notification is written when an order's status changes and streamed to the
// owning user until read.
type Notification struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	OrderID   uint      `json:"order_id"`
	Title     string    `json:"title" gorm:"not null"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`
}
