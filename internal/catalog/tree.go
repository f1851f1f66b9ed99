// Package catalog assembles nested parent/children trees from the flat
// parallel-array rows produced by the store's hierarchy queries. It is
// pure: no I/O, no stored state.
package catalog

import "github.com/iliyamo/course-booking/internal/model"

// Node is an assembled parent with its surviving children. Both the
// location tree (district -> cities) and the category tree
// (category -> subcategories) use this one shape; handlers rename the
// fields into their endpoint-specific JSON types.
type Node struct {
	ID       string
	Name     string
	Children []Child
}

// Child is one (id, name) pair zipped from the parallel arrays.
type Child struct {
	ID   string
	Name string
}

// Assemble zips a tree row's child-id and child-name sequences into child
// records. Positions with a nil id are dropped entirely: they mean "no
// child at this slot" (an artifact of the LEFT JOIN), never "child with an
// unknown name". Survivor order follows the row's order; nothing is
// re-sorted. When the sequences differ in length, the shorter one bounds
// the zip, mirroring how the parallel arrays were produced.
func Assemble(row model.TreeRow) Node {
	n := Node{
		ID:       row.ParentID,
		Name:     row.ParentName,
		Children: make([]Child, 0, len(row.ChildIDs)),
	}
	limit := len(row.ChildIDs)
	if len(row.ChildNames) < limit {
		limit = len(row.ChildNames)
	}
	for i := 0; i < limit; i++ {
		if row.ChildIDs[i] == nil {
			continue
		}
		name := ""
		if row.ChildNames[i] != nil {
			name = *row.ChildNames[i]
		}
		n.Children = append(n.Children, Child{ID: *row.ChildIDs[i], Name: name})
	}
	return n
}

// AssembleAll maps Assemble over a slice of rows, preserving row order.
func AssembleAll(rows []model.TreeRow) []Node {
	out := make([]Node, 0, len(rows))
	for _, row := range rows {
		out = append(out, Assemble(row))
	}
	return out
}
