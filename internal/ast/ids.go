package ast

// NodeID uniquely identifies a node within one crate. IDs are assigned by
// the parser phase and are stable for the lifetime of the tree.
type NodeID uint32

const (
	// NoNodeID marks a node that never carries buffered diagnostics.
	NoNodeID NodeID = 0
	// CrateNodeID is the reserved identity of the crate root.
	CrateNodeID NodeID = 1
)

func (id NodeID) IsValid() bool { return id != NoNodeID }
