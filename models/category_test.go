package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func ptr(id uint) *uint { return &id }

func sampleCategories() []Category {
	// A ── B ── C
	// └─── D
	// E (separate root)
	return []Category{
		{ID: 1, EName: "A"},
		{ID: 2, EName: "B", ParentID: ptr(1)},
		{ID: 3, EName: "C", ParentID: ptr(2)},
		{ID: 4, EName: "D", ParentID: ptr(1)},
		{ID: 5, EName: "E"},
	}
}

func TestBuildCategoryTree(t *testing.T) {
	roots := BuildCategoryTree(sampleCategories())

	require.Len(t, roots, 2)
	require.Equal(t, "A", roots[0].EName)
	require.Equal(t, "E", roots[1].EName)

	require.Len(t, roots[0].Children, 2)
	require.Equal(t, "B", roots[0].Children[0].EName)
	require.Equal(t, "D", roots[0].Children[1].EName)

	require.Len(t, roots[0].Children[0].Children, 1)
	require.Equal(t, "C", roots[0].Children[0].Children[0].EName)

	require.Empty(t, roots[1].Children)
}

func TestBuildCategoryTree_OrphanBecomesRoot(t *testing.T) {
	flat := []Category{
		{ID: 7, EName: "orphan", ParentID: ptr(99)}, // parent not in list
	}

	roots := BuildCategoryTree(flat)

	require.Len(t, roots, 1)
	require.Equal(t, uint(7), roots[0].ID)
}

func TestDescendantIDs_IncludesSelfAndAllDescendants(t *testing.T) {
	excluded := DescendantIDs(1, sampleCategories())

	// Editing A must exclude A, B, C and D from selectable parents.
	require.True(t, excluded[1])
	require.True(t, excluded[2])
	require.True(t, excluded[3])
	require.True(t, excluded[4])
	require.False(t, excluded[5])
}

func TestDescendantIDs_LeafExcludesOnlyItself(t *testing.T) {
	excluded := DescendantIDs(3, sampleCategories())

	require.Equal(t, map[uint]bool{3: true}, excluded)
}
