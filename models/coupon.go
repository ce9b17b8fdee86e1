package models

import "time"

type CouponType string

const (
	CouponTypeFixed   CouponType = "fixed"   // absolute amount off
	CouponTypePercent CouponType = "percent" // percentage of subtotal
)

type Coupon struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Code        string     `gorm:"uniqueIndex;not null" json:"code"`
	Type        CouponType `gorm:"type:VARCHAR(10);default:'fixed'" json:"type"`
	Value       float64    `gorm:"not null" json:"value"`
	MinPurchase float64    `json:"min_purchase"`
	MaxUses     int        `json:"max_uses"` // 0 = unlimited
	UsedCount   int        `json:"used_count"`
	Active      bool       `gorm:"default:true" json:"active"`
	ExpiresAt   *time.Time `json:"expires_at"`
	CreatedAt   time.Time  `json:"created_at"`
}
