package ast

import "cinder/internal/source"

// TyKind discriminates type references.
type TyKind uint8

const (
	TyPath TyKind = iota + 1
	TyRef
	TyTuple
	TySlice
)

// Ty is a syntactic type reference.
type Ty struct {
	ID   NodeID
	Kind TyKind
	Span source.Span

	Path     *Path     // TyPath
	Elem     *Ty       // TyRef, TySlice
	Elems    []*Ty     // TyTuple
	Lifetime *Lifetime // TyRef (optional)
}
