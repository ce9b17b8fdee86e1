package models

import (
	"time"

	"gorm.io/gorm"
)

// Recipe is a published mix of shop products (e.g. a skincare routine).
// Each ingredient references a sellable product and a required quantity,
// so availability can be checked against current stock.
type Recipe struct {
	ID            uint               `gorm:"primaryKey;autoIncrement" json:"id"`
	EName         string             `gorm:"not null" json:"ename"`
	ARName        string             `json:"arname"`
	EDescription  string             `json:"edescription"`
	ARDescription string             `json:"ardescription"`
	Image         string             `json:"image"`
	Ingredients   []RecipeIngredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"ingredients"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	DeletedAt     gorm.DeletedAt     `gorm:"index" json:"-"`
}

type RecipeIngredient struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	RecipeID  uint    `gorm:"index" json:"recipe_id"`
	ProductID uint    `gorm:"not null" json:"product_id"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product"`
	Quantity  int     `gorm:"default:1" json:"quantity"`
}

// RecipeAvailable reports whether every ingredient of the recipe is in
// stock at the required quantity. stockByProduct maps product id to the
// currently available units.
func RecipeAvailable(ingredients []RecipeIngredient, stockByProduct map[uint]int) bool {
	for _, ing := range ingredients {
		if stockByProduct[ing.ProductID] < ing.Quantity {
			return false
		}
	}
	return true
}
