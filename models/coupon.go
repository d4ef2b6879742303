package models

import "time"

// Coupon is a percent-discount code with a validity window, optional usage
// cap and optional minimum-purchase gate. Codes are stored uppercase.
type Coupon struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Code        string    `json:"code" gorm:"uniqueIndex;not null"`
	Discount    int       `json:"discount" gorm:"not null"` // percent
	MinPurchase *int      `json:"min_purchase"`
	ValidFrom   time.Time `json:"valid_from" gorm:"not null"`
	ValidUntil  time.Time `json:"valid_until" gorm:"not null"`
	MaxUses     *int      `json:"max_uses"`
	UsedCount   int       `json:"used_count" gorm:"default:0"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
