// Package pricing computes the amounts shown at checkout. It is pure:
// coupon validation, stock checks and order creation are network/DB
// concerns handled by the callers.
package pricing

import "github.com/mayanshop/mayan-api/models"

// Quote is the full checkout breakdown for one cart.
type Quote struct {
	Subtotal        float64 `json:"subtotal"`
	DeliveryFee     float64 `json:"delivery_fee"`
	CouponDiscount  float64 `json:"coupon_discount"`
	LoyaltyDiscount float64 `json:"loyalty_discount"`
	GrandTotal      float64 `json:"grand_total"`
}

// Subtotal sums unit price times quantity over the cart lines.
func Subtotal(items []models.CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.ProductSalePrice * float64(item.Quantity)
	}
	return total
}

// Compute derives the checkout quote from the cart lines, the delivery
// fee, the already-validated coupon discount and the user's loyalty
// balance (1 point = 1 currency unit).
//
// The loyalty discount never exceeds the balance nor the amount still
// payable after the coupon, and the grand total is never negative.
func Compute(items []models.CartItem, deliveryFee, couponDiscount float64, useLoyalty bool, loyaltyPoints float64) Quote {
	subtotal := Subtotal(items)

	payable := subtotal + deliveryFee - couponDiscount
	if payable < 0 {
		payable = 0
	}

	var loyaltyDiscount float64
	if useLoyalty {
		loyaltyDiscount = loyaltyPoints
		if loyaltyDiscount > payable {
			loyaltyDiscount = payable
		}
		if loyaltyDiscount < 0 {
			loyaltyDiscount = 0
		}
	}

	grandTotal := subtotal + deliveryFee - couponDiscount - loyaltyDiscount
	if grandTotal < 0 {
		grandTotal = 0
	}

	return Quote{
		Subtotal:        subtotal,
		DeliveryFee:     deliveryFee,
		CouponDiscount:  couponDiscount,
		LoyaltyDiscount: loyaltyDiscount,
		GrandTotal:      grandTotal,
	}
}

// CouponDiscount resolves a coupon's value against a subtotal: fixed
// coupons take their value as-is, percent coupons a share of the
// subtotal. The discount is capped at the subtotal.
func CouponDiscount(coupon models.Coupon, subtotal float64) float64 {
	var discount float64
	switch coupon.Type {
	case models.CouponTypePercent:
		discount = subtotal * coupon.Value / 100
	default:
		discount = coupon.Value
	}
	if discount > subtotal {
		discount = subtotal
	}
	if discount < 0 {
		discount = 0
	}
	return discount
}

// LoyaltyEarned sums the points a paid order yields, at each product's
// configured rate per unit.
func LoyaltyEarned(items []models.OrderItem, rateByProduct map[uint]float64) float64 {
	var earned float64
	for _, item := range items {
		earned += rateByProduct[item.ProductID] * float64(item.Quantity)
	}
	return earned
}
