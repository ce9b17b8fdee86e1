package models

import (
	"time"

	"gorm.io/gorm"
)

// LoyaltySettings is a single-row table controlling the loyalty shop.
// The shop unlocks for a user once their balance reaches MinPoints.
type LoyaltySettings struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Enabled   bool    `gorm:"default:true" json:"enabled"`
	MinPoints float64 `gorm:"default:0" json:"min_points"`
}

// LoyaltyProduct is a catalog item exchangeable for points only.
type LoyaltyProduct struct {
	ID         uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	EName      string         `gorm:"not null" json:"ename"`
	ARName     string         `json:"arname"`
	Image      string         `json:"image"`
	PointsCost float64        `gorm:"not null" json:"points_cost"`
	Stock      int            `json:"stock"`
	CreatedAt  time.Time      `json:"created_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

type RedemptionStatus string

const (
	RedemptionStatusPending   RedemptionStatus = "pending"
	RedemptionStatusFulfilled RedemptionStatus = "fulfilled"
	RedemptionStatusRejected  RedemptionStatus = "rejected" // points refunded
)

type Redemption struct {
	ID               uint             `gorm:"primaryKey" json:"id"`
	UserID           string           `gorm:"index;not null" json:"user_id"`
	User             User             `gorm:"foreignKey:UserID" json:"user"`
	LoyaltyProductID uint             `gorm:"not null" json:"loyalty_product_id"`
	LoyaltyProduct   LoyaltyProduct   `gorm:"foreignKey:LoyaltyProductID" json:"loyalty_product"`
	PointsSpent      float64          `json:"points_spent"`
	Status           RedemptionStatus `gorm:"type:VARCHAR(10);default:'pending'" json:"status"`
	CreatedAt        time.Time        `json:"created_at"`
}
