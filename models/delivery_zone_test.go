package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatchZonePrice(t *testing.T) {
	zones := []DeliveryZone{
		{Country: "Iraq", State: "", Price: 4000, Active: true},
		{Country: "Iraq", State: "Baghdad", Price: 2500, Active: true},
		{Country: "Jordan", State: "", Price: 8000, Active: false},
	}

	price, ok := MatchZonePrice(zones, "Iraq", "Baghdad")
	require.True(t, ok)
	require.Equal(t, 2500.0, price)

	// state without its own zone falls back to the country-wide price
	price, ok = MatchZonePrice(zones, "iraq", "Basra")
	require.True(t, ok)
	require.Equal(t, 4000.0, price)

	// inactive zones never match
	_, ok = MatchZonePrice(zones, "Jordan", "")
	require.False(t, ok)

	_, ok = MatchZonePrice(zones, "Kuwait", "")
	require.False(t, ok)
}

func TestRecipeAvailable(t *testing.T) {
	ingredients := []RecipeIngredient{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 1},
	}

	require.True(t, RecipeAvailable(ingredients, map[uint]int{1: 5, 2: 1}))
	require.False(t, RecipeAvailable(ingredients, map[uint]int{1: 1, 2: 1}))
	require.False(t, RecipeAvailable(ingredients, map[uint]int{1: 5}))
	require.True(t, RecipeAvailable(nil, nil))
}
