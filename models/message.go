package models

import "time"

// Message is a support-inbox message between a customer and the shop admins.
type Message struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FromUserID string    `gorm:"index;not null" json:"from_user_id"`
	From       User      `gorm:"foreignKey:FromUserID" json:"from"`
	ToUserID   string    `gorm:"index" json:"to_user_id"` // empty = addressed to the shop
	Subject    string    `json:"subject"`
	Body       string    `gorm:"not null" json:"body"`
	Read       bool      `gorm:"default:false" json:"read"`
	CreatedAt  time.Time `json:"created_at"`
}
