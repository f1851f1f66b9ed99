package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/course-booking/internal/model"
)

func strp(s string) *string { return &s }

func TestAssembleDropsNullPositions(t *testing.T) {
	row := model.TreeRow{
		ParentID:   "d1",
		ParentName: "North",
		ChildIDs:   []*string{strp("a"), nil, strp("b")},
		ChildNames: []*string{strp("x"), nil, strp("y")},
	}

	n := Assemble(row)

	require.Len(t, n.Children, 2)
	assert.Equal(t, Child{ID: "a", Name: "x"}, n.Children[0])
	assert.Equal(t, Child{ID: "b", Name: "y"}, n.Children[1])
	assert.Equal(t, "d1", n.ID)
	assert.Equal(t, "North", n.Name)
}

func TestAssembleEmptyParent(t *testing.T) {
	// A district without cities arrives as a single all-NULL slot.
	row := model.TreeRow{
		ParentID:   "d2",
		ParentName: "South",
		ChildIDs:   []*string{nil},
		ChildNames: []*string{nil},
	}

	n := Assemble(row)

	assert.NotNil(t, n.Children)
	assert.Empty(t, n.Children)
}

func TestAssemblePreservesStoreOrder(t *testing.T) {
	row := model.TreeRow{
		ParentID:   "p",
		ParentName: "Crafts",
		ChildIDs:   []*string{strp("3"), strp("1"), nil, strp("2")},
		ChildNames: []*string{strp("c"), strp("a"), nil, strp("b")},
	}

	n := Assemble(row)

	require.Len(t, n.Children, 3)
	assert.Equal(t, []Child{
		{ID: "3", Name: "c"},
		{ID: "1", Name: "a"},
		{ID: "2", Name: "b"},
	}, n.Children)
}

func TestAssembleUnevenSequences(t *testing.T) {
	row := model.TreeRow{
		ParentID:   "p",
		ParentName: "Lang",
		ChildIDs:   []*string{strp("a"), strp("b")},
		ChildNames: []*string{strp("x")},
	}

	n := Assemble(row)

	require.Len(t, n.Children, 1)
	assert.Equal(t, Child{ID: "a", Name: "x"}, n.Children[0])
}

func TestAssembleAll(t *testing.T) {
	rows := []model.TreeRow{
		{ParentID: "1", ParentName: "one", ChildIDs: []*string{nil}, ChildNames: []*string{nil}},
		{ParentID: "2", ParentName: "two", ChildIDs: []*string{strp("c")}, ChildNames: []*string{strp("n")}},
	}

	nodes := AssembleAll(rows)

	require.Len(t, nodes, 2)
	assert.Equal(t, "1", nodes[0].ID)
	assert.Empty(t, nodes[0].Children)
	assert.Equal(t, "2", nodes[1].ID)
	assert.Len(t, nodes[1].Children, 1)
}
