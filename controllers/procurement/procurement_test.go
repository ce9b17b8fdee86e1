package procurementControllers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAverageCost(t *testing.T) {
	// 10 units at 100 plus 10 units at 200 averages to 150
	require.Equal(t, 150.0, averageCost(10, 100, 10, 200))

	// empty shelf takes the incoming cost as-is
	require.Equal(t, 200.0, averageCost(0, 0, 5, 200))
	require.Equal(t, 200.0, averageCost(0, 999, 5, 200))

	// negative stock (oversold) falls back to the incoming cost
	require.Equal(t, 80.0, averageCost(-3, 100, 3, 80))
}
