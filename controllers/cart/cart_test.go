package cartControllers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mayanshop/mayan-api/models"
)

func TestRemovesLine(t *testing.T) {
	cases := []struct {
		quantity int
		removed  bool
	}{
		{-5, true},
		{-1, true},
		{0, true},
		{1, false},
		{3, false},
	}
	for _, tc := range cases {
		require.Equal(t, tc.removed, removesLine(tc.quantity), "quantity %d", tc.quantity)
	}
}

func TestRefreshItemStock(t *testing.T) {
	items := []models.CartItem{
		{ProductID: 1, ProductStock: 10},
		{ProductID: 2, ProductStock: 4},
		{ProductID: 3, ProductStock: 7},
	}

	refreshItemStock(items, map[uint]int{
		1: 2, // sold down since the snapshot
		2: 9, // restocked
		// product 3 deleted
	})

	require.Equal(t, 2, items[0].ProductStock)
	require.Equal(t, 9, items[1].ProductStock)
	require.Equal(t, 0, items[2].ProductStock)
}
