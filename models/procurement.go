package models

import "time"

type ProcurementStatus string

const (
	ProcurementStatusDraft    ProcurementStatus = "draft"
	ProcurementStatusOrdered  ProcurementStatus = "ordered"
	ProcurementStatusReceived ProcurementStatus = "received" // stock applied
)

// ProcurementOrder is an admin-entered stock-in batch from a supplier,
// distinct from customer sales orders. Receiving it increments product
// stock and updates each product's base cost.
type ProcurementOrder struct {
	ID         uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	Supplier   string            `gorm:"not null" json:"supplier"`
	Reference  string            `json:"reference"`
	Status     ProcurementStatus `gorm:"type:VARCHAR(10);default:'draft'" json:"status"`
	Items      []ProcurementItem `gorm:"foreignKey:ProcurementOrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalCost  float64           `json:"total_cost"`
	ReceivedAt *time.Time        `json:"received_at"`
	CreatedAt  time.Time         `json:"created_at"`
}

type ProcurementItem struct {
	ID                 uint    `gorm:"primaryKey" json:"id"`
	ProcurementOrderID uint    `gorm:"index" json:"procurement_order_id"`
	ProductID          uint    `gorm:"not null" json:"product_id"`
	ProductEName       string  `json:"product_ename"`
	Quantity           int     `gorm:"not null" json:"quantity"`
	UnitCost           float64 `gorm:"not null" json:"unit_cost"`
}
