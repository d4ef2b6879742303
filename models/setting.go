package models

import "time"

// SiteSetting is static storefront configuration (opening hours, contact
// info, footer text), editable from the admin panel.
type SiteSetting struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Key       string    `json:"key" gorm:"uniqueIndex;not null"`
	Value     string    `json:"value"`
	Label     string    `json:"label"`
	Group     string    `json:"group" gorm:"index"`
	Type      string    `json:"type" gorm:"default:'text'"`
	UpdatedAt time.Time `json:"updated_at"`
}
