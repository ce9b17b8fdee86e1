package models

import "time"

type User struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	Email         string    `gorm:"unique;not null" json:"email"`
	Password      string    `gorm:"not null" json:"-"`
	Phone         string    `json:"phone"`
	Name          string    `json:"name"`
	Role          string    `gorm:"type:VARCHAR(10);default:'user'" json:"role"` // "user" or "admin"
	LoyaltyPoints float64   `gorm:"default:0" json:"loyalty_points"`
	Locale        string    `gorm:"type:VARCHAR(2);default:'ar'" json:"locale"` // "en" or "ar"
	Address       Address   `gorm:"embedded" json:"address"`
	Cart          Cart      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"cart"`
	Orders        []Order   `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"orders"`
	CreatedAt     time.Time `json:"created_at"`
}

// Address model embedded in User
type Address struct {
	Country    string `json:"country"`
	State      string `json:"state"`
	City       string `json:"city"`
	Street     string `json:"street"`
	PostalCode string `json:"postal_code"`
}
