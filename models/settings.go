package models

// DefaultDeliveryFee is charged on every order when no fee is configured.
// Delivery zones exist as a lookup but checkout charges this flat fee.
const DefaultDeliveryFee = 3000

// SiteSettings is a single-row table of storefront configuration.
type SiteSettings struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	StoreEName   string  `json:"store_ename"`
	StoreARName  string  `json:"store_arname"`
	Banner       string  `json:"banner"`
	DeliveryFee  float64 `gorm:"default:3000" json:"delivery_fee"`
	SupportEmail string  `json:"support_email"`
	SupportPhone string  `json:"support_phone"`
}
