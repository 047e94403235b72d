package models

import "time"

// GuestUser lets anonymous shoppers keep a cart until ExpiresAt.
type GuestUser struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
