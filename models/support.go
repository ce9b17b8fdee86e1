package models

import "time"

// SupportTicket is a contact-form submission from the storefront,
// available to anonymous visitors as well as logged-in users.
type SupportTicket struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Phone     string    `json:"phone"`
	Body      string    `gorm:"not null" json:"body"`
	Resolved  bool      `gorm:"default:false" json:"resolved"`
	CreatedAt time.Time `json:"created_at"`
}
