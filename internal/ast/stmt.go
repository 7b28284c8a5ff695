package ast

import "cinder/internal/source"

// StmtKind discriminates statements.
type StmtKind uint8

const (
	StmtLocal StmtKind = iota + 1
	StmtItem
	StmtExpr
	StmtSemi
	StmtEmpty
	StmtMac
)

// Stmt is a statement. Exactly one payload field matching Kind is set
// (none for StmtEmpty).
type Stmt struct {
	ID   NodeID
	Kind StmtKind
	Span source.Span

	Local *Local   // StmtLocal
	Item  *Item    // StmtItem
	Expr  *Expr    // StmtExpr, StmtSemi
	Mac   *MacCall // StmtMac
}

// Local is a `let` binding.
type Local struct {
	ID    NodeID
	Attrs []Attr
	Pat   *Pat
	Ty    *Ty
	Init  *Expr
	Span  source.Span
}
