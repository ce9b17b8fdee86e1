package models

import "time"

type OrderStatus string
type PaymentStatus string

const (
	// Order statuses (typical e-commerce flow)
	OrderStatusPending   OrderStatus = "pending"   // Order placed, awaiting confirmation
	OrderStatusConfirmed OrderStatus = "confirmed" // Confirmed by admin
	OrderStatusShipped   OrderStatus = "shipped"   // Out for delivery
	OrderStatusDelivered OrderStatus = "delivered" // Customer received the items
	OrderStatusReturned  OrderStatus = "returned"  // Customer returned the items
	OrderStatusCancelled OrderStatus = "cancelled" // Cancelled before shipping

	// Payment statuses for manual bank transfer
	PaymentStatusPending     PaymentStatus = "pending"      // Awaiting transfer
	PaymentStatusUnderReview PaymentStatus = "under_review" // Proof uploaded, awaiting admin check
	PaymentStatusPaid        PaymentStatus = "paid"         // Transfer confirmed by admin
	PaymentStatusRejected    PaymentStatus = "rejected"     // Proof rejected
	PaymentStatusRefunded    PaymentStatus = "refunded"     // Money returned to customer
)

type Order struct {
	ID              uint          `gorm:"primaryKey" json:"id"`
	OrderRef        string        `gorm:"uniqueIndex" json:"order_ref"`
	UserID          string        `gorm:"not null" json:"user_id"`
	User            User          `gorm:"foreignKey:UserID" json:"user"`
	Items           []OrderItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Subtotal        float64       `json:"subtotal"`
	DeliveryFee     float64       `json:"delivery_fee"`
	CouponCode      string        `json:"coupon_code"`
	CouponDiscount  float64       `json:"coupon_discount"`
	LoyaltyDiscount float64       `json:"loyalty_discount"`
	LoyaltyEarned   float64       `json:"loyalty_earned"`
	TotalAmount     float64       `json:"total_amount"`
	Status          OrderStatus   `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	PaymentStatus   PaymentStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"payment_status"`
	PaymentMethod   string        `gorm:"default:'bank_transfer'" json:"payment_method"`
	BankAccountID   *uint         `json:"bank_account_id"`
	PaymentProof    string        `json:"payment_proof"` // uploaded transfer screenshot URL
	CreatedAt       time.Time     `json:"created_at"`
}

type OrderItem struct {
	ID                  uint    `gorm:"primaryKey" json:"id"`
	OrderID             uint    `gorm:"index" json:"order_id"`
	ProductID           uint    `json:"product_id"`
	ProductEName        string  `json:"product_ename"`
	ProductArName       string  `json:"product_arname"`
	ProductImage        string  `json:"product_image"`
	ProductSalePrice    float64 `json:"product_sale_price"`
	ProductRegularPrice float64 `json:"product_regular_price"`
	ProductBaseCost     float64 `json:"product_base_cost"`
	Quantity            int     `json:"quantity"`
}
