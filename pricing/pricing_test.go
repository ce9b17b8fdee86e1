package pricing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mayanshop/mayan-api/models"
)

func cartItem(price float64, qty int) models.CartItem {
	return models.CartItem{ProductSalePrice: price, Quantity: qty}
}

func TestCompute_NoDiscounts(t *testing.T) {
	items := []models.CartItem{cartItem(1000, 2)}

	q := Compute(items, 3000, 0, false, 0)

	require.Equal(t, 2000.0, q.Subtotal)
	require.Equal(t, 3000.0, q.DeliveryFee)
	require.Equal(t, 0.0, q.CouponDiscount)
	require.Equal(t, 0.0, q.LoyaltyDiscount)
	require.Equal(t, 5000.0, q.GrandTotal)
}

func TestCompute_CouponAndLoyalty(t *testing.T) {
	items := []models.CartItem{cartItem(1000, 2)}

	q := Compute(items, 3000, 500, true, 200)

	require.Equal(t, 200.0, q.LoyaltyDiscount)
	require.Equal(t, 4300.0, q.GrandTotal)
}

func TestCompute_LoyaltyCappedAtPayable(t *testing.T) {
	items := []models.CartItem{cartItem(1000, 2)}

	// 10000 points available but only 4300 payable after the coupon.
	q := Compute(items, 3000, 700, true, 10000)

	require.Equal(t, 4300.0, q.LoyaltyDiscount)
	require.Equal(t, 0.0, q.GrandTotal)
}

func TestCompute_LoyaltyDisabledIgnoresBalance(t *testing.T) {
	items := []models.CartItem{cartItem(500, 1)}

	q := Compute(items, 3000, 0, false, 99999)

	require.Equal(t, 0.0, q.LoyaltyDiscount)
	require.Equal(t, 3500.0, q.GrandTotal)
}

func TestCompute_NeverNegative(t *testing.T) {
	cases := []struct {
		name     string
		items    []models.CartItem
		delivery float64
		coupon   float64
		loyalty  float64
	}{
		{"coupon exceeds total", []models.CartItem{cartItem(100, 1)}, 0, 5000, 0},
		{"loyalty drains everything", []models.CartItem{cartItem(100, 3)}, 3000, 0, 100000},
		{"empty cart", nil, 3000, 3000, 50},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := Compute(tc.items, tc.delivery, tc.coupon, true, tc.loyalty)
			require.GreaterOrEqual(t, q.GrandTotal, 0.0)
			require.GreaterOrEqual(t, q.LoyaltyDiscount, 0.0)
			require.LessOrEqual(t, q.LoyaltyDiscount, tc.loyalty)
		})
	}
}

func TestCompute_Idempotent(t *testing.T) {
	items := []models.CartItem{cartItem(1250, 3), cartItem(400, 1)}

	first := Compute(items, 3000, 250, true, 800)
	second := Compute(items, 3000, 250, true, 800)

	require.Equal(t, first, second)
	// inputs are untouched
	require.Equal(t, 3, items[0].Quantity)
	require.Equal(t, 1250.0, items[0].ProductSalePrice)
}

func TestCouponDiscount(t *testing.T) {
	fixed := models.Coupon{Type: models.CouponTypeFixed, Value: 500}
	percent := models.Coupon{Type: models.CouponTypePercent, Value: 10}

	require.Equal(t, 500.0, CouponDiscount(fixed, 2000))
	require.Equal(t, 200.0, CouponDiscount(percent, 2000))

	// fixed coupon larger than the subtotal is capped
	require.Equal(t, 300.0, CouponDiscount(fixed, 300))
}

func TestLoyaltyEarned(t *testing.T) {
	items := []models.OrderItem{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 1},
		{ProductID: 3, Quantity: 4}, // no configured rate
	}
	rates := map[uint]float64{1: 10, 2: 25}

	require.Equal(t, 45.0, LoyaltyEarned(items, rates))
}

func TestCompute_SequentialBurnsNeverOverdraw(t *testing.T) {
	items := []models.CartItem{cartItem(100, 1)}
	balance := 200.0

	// Two checkouts in a row, each quoting against the balance left by
	// the previous one: the points burned in total can never exceed
	// what the user started with.
	var burned float64
	for i := 0; i < 2; i++ {
		q := Compute(items, 3000, 0, true, balance)
		require.LessOrEqual(t, q.LoyaltyDiscount, balance)
		balance -= q.LoyaltyDiscount
		burned += q.LoyaltyDiscount
	}

	require.Equal(t, 200.0, burned)
	require.Equal(t, 0.0, balance)
}
