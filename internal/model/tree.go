package model

// TreeRow is one pre-joined row of either hierarchy view: a single parent
// plus all of its children encoded as two parallel, equal-length sequences.
// When a parent has no child at a given array slot, both the id and the
// name at that position are nil; the assembler drops such positions
// entirely instead of treating them as children with missing data.
type TreeRow struct {
	ParentID   string
	ParentName string
	ChildIDs   []*string
	ChildNames []*string
}
