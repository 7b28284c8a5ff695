package ast

import "cinder/internal/source"

// PatKind discriminates patterns.
type PatKind uint8

const (
	PatWild PatKind = iota + 1
	PatBind
	PatLit
	PatPath
	PatTuple
)

// Pat is a pattern. PatBind carries the bound name; PatTuple carries
// sub-patterns; PatPath and PatLit carry their payloads.
type Pat struct {
	ID   NodeID
	Kind PatKind
	Span source.Span

	Name Ident  // PatBind
	Lit  string // PatLit
	Path *Path  // PatPath
	Subs []*Pat // PatTuple
}
