package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID            uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	EName         string     `gorm:"not null" json:"ename"` // English Name
	ARName        string     `json:"arname"`                // Arabic Name
	EDescription  string     `json:"edescription"`
	ARDescription string     `json:"ardescription"`
	SalePrice     float64    `gorm:"not null" json:"sale_price"`
	RegularPrice  float64    `json:"regular_price"`
	BaseCost      float64    `json:"base_cost"` // cost of goods, maintained by procurement
	LoyaltyRate   float64    `gorm:"default:0" json:"loyalty_rate"` // points earned per unit sold
	Image         string     `json:"image"`
	Categories    []Category `gorm:"many2many:product_categories;" json:"categories"`
	Stock         int        `json:"stock"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
