package ast

import "cinder/internal/source"

// ExprKind discriminates expressions.
type ExprKind uint8

const (
	ExprLit ExprKind = iota + 1
	ExprPath
	ExprCall
	ExprBinary
	ExprUnary
	ExprAssign
	ExprIf
	ExprWhile
	ExprLoop
	ExprMatch
	ExprBlock
	ExprReturn
	ExprMac
)

// Expr is an expression. Children are set according to Kind:
//
//	ExprLit     Lit
//	ExprPath    Path
//	ExprCall    Callee, Args
//	ExprBinary  Op, Lhs, Rhs
//	ExprUnary   Op, X
//	ExprAssign  Lhs, Rhs
//	ExprIf      X (condition), Blk (then), Else
//	ExprWhile   X (condition), Blk (body)
//	ExprLoop    Blk (body)
//	ExprMatch   X (scrutinee), Arms
//	ExprBlock   Blk
//	ExprReturn  X (optional)
//	ExprMac     Mac
type Expr struct {
	ID    NodeID
	Kind  ExprKind
	Attrs []Attr
	Span  source.Span

	Lit    string
	Op     string
	Path   *Path
	Callee *Expr
	Args   []*Expr
	Lhs    *Expr
	Rhs    *Expr
	X      *Expr
	Blk    *Block
	Else   *Expr
	Arms   []*Arm
	Mac    *MacCall
}

// Arm is a single match arm.
type Arm struct {
	Pat   *Pat
	Guard *Expr
	Body  *Expr
	Span  source.Span
}
