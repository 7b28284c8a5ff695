package ast

import "cinder/internal/source"

// Crate is the root of a parsed tree. It is built once by the parser phase
// and never mutated afterwards; traversals only read it. Its file-level
// attributes scope the whole tree, and its identity is the reserved
// CrateNodeID.
//
// All node fields are exported: the structs double as the snapshot schema
// the parser phase serializes.
type Crate struct {
	ID    NodeID
	Attrs []Attr
	Items []*Item
	Span  source.Span
}

// Mod is the body of a module item.
type Mod struct {
	ID    NodeID
	Items []*Item
	Span  source.Span
}

// Block is a braced statement list.
type Block struct {
	ID    NodeID
	Stmts []*Stmt
	Span  source.Span
}

// Path is a (possibly qualified) name reference.
type Path struct {
	ID       NodeID
	Segments []Ident
	Span     source.Span
}

// Lifetime is a named lifetime reference.
type Lifetime struct {
	ID   NodeID
	Name string
	Span source.Span
}
