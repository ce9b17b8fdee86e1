package orderControllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mayanshop/mayan-api/models"
)

func TestCheckCouponUsable(t *testing.T) {
	now := time.Now()
	expired := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	base := models.Coupon{
		Code:        "SAVE10",
		Type:        models.CouponTypeFixed,
		Value:       10,
		Active:      true,
		MinPurchase: 100,
		MaxUses:     3,
	}

	t.Run("valid", func(t *testing.T) {
		coupon := base
		coupon.UsedCount = 2
		coupon.ExpiresAt = &future
		require.NoError(t, checkCouponUsable(coupon, 150, now))
	})

	t.Run("inactive", func(t *testing.T) {
		coupon := base
		coupon.Active = false
		require.EqualError(t, checkCouponUsable(coupon, 150, now), "coupon is not active")
	})

	t.Run("expired", func(t *testing.T) {
		coupon := base
		coupon.ExpiresAt = &expired
		require.EqualError(t, checkCouponUsable(coupon, 150, now), "coupon expired")
	})

	t.Run("usage limit reached", func(t *testing.T) {
		coupon := base
		coupon.UsedCount = 3
		require.EqualError(t, checkCouponUsable(coupon, 150, now), "coupon usage limit reached")
	})

	t.Run("unlimited uses", func(t *testing.T) {
		coupon := base
		coupon.MaxUses = 0
		coupon.UsedCount = 9999
		require.NoError(t, checkCouponUsable(coupon, 150, now))
	})

	t.Run("below minimum purchase", func(t *testing.T) {
		coupon := base
		require.EqualError(t, checkCouponUsable(coupon, 99, now), "subtotal below coupon minimum purchase")
	})
}

func TestRestocksOnDelete(t *testing.T) {
	require.True(t, restocksOnDelete(models.OrderStatusPending))
	require.True(t, restocksOnDelete(models.OrderStatusConfirmed))
	require.True(t, restocksOnDelete(models.OrderStatusCancelled))
	require.False(t, restocksOnDelete(models.OrderStatusDelivered))
}

func TestMapOrderStatus(t *testing.T) {
	status, err := mapOrderStatus("shipped")
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusShipped, status)

	_, err = mapOrderStatus("teleported")
	require.Error(t, err)
}
