package lint

import (
	"cinder/internal/ast"
)

// Pass is one analysis run over the tree. It gets a pre-visit hook for
// every node kind and a matching post-visit hook for composite kinds, plus
// scope-entry notifications around attribute-carrying nodes. Hooks only
// report through the Context; they must not depend on any other pass's
// traversal order, and they never mutate the tree.
//
// Embed NopPass and override the hooks of interest; Name is the one method
// every pass must provide itself.
type Pass interface {
	Name() string

	CheckCrate(*Context, *ast.Crate)
	CheckCratePost(*Context, *ast.Crate)
	CheckMod(*Context, *ast.Mod)
	CheckModPost(*Context, *ast.Mod)
	CheckItem(*Context, *ast.Item)
	CheckItemPost(*Context, *ast.Item)
	CheckForeignItem(*Context, *ast.ForeignItem)
	CheckForeignItemPost(*Context, *ast.ForeignItem)
	CheckParam(*Context, *ast.Param)
	CheckPat(*Context, *ast.Pat)
	CheckPatPost(*Context, *ast.Pat)
	CheckExpr(*Context, *ast.Expr)
	CheckExprPost(*Context, *ast.Expr)
	CheckStmt(*Context, *ast.Stmt)
	CheckLocal(*Context, *ast.Local)
	CheckFn(*Context, *ast.Fn, ast.NodeID)
	CheckFnPost(*Context, *ast.Fn, ast.NodeID)
	CheckStructDef(*Context, *ast.StructDef)
	CheckStructDefPost(*Context, *ast.StructDef)
	CheckStructField(*Context, *ast.Field)
	CheckVariant(*Context, *ast.Variant)
	CheckVariantPost(*Context, *ast.Variant)
	CheckTy(*Context, *ast.Ty)
	CheckIdent(*Context, ast.Ident)
	CheckBlock(*Context, *ast.Block)
	CheckBlockPost(*Context, *ast.Block)
	CheckArm(*Context, *ast.Arm)
	CheckGenerics(*Context, *ast.Generics)
	CheckGenericParam(*Context, *ast.GenericParam)
	CheckTraitItem(*Context, *ast.AssocItem)
	CheckTraitItemPost(*Context, *ast.AssocItem)
	CheckImplItem(*Context, *ast.AssocItem)
	CheckImplItemPost(*Context, *ast.AssocItem)
	CheckLifetime(*Context, *ast.Lifetime)
	CheckPath(*Context, *ast.Path)
	CheckAttribute(*Context, *ast.Attr)
	CheckMacDef(*Context, *ast.MacroDef)
	CheckMac(*Context, *ast.MacCall)

	EnterLintAttrs(*Context, []ast.Attr)
	ExitLintAttrs(*Context, []ast.Attr)
}

// NopPass is an embeddable base providing a no-op for every hook.
type NopPass struct{}

func (NopPass) CheckCrate(*Context, *ast.Crate)              {}
func (NopPass) CheckCratePost(*Context, *ast.Crate)          {}
func (NopPass) CheckMod(*Context, *ast.Mod)                  {}
func (NopPass) CheckModPost(*Context, *ast.Mod)              {}
func (NopPass) CheckItem(*Context, *ast.Item)                {}
func (NopPass) CheckItemPost(*Context, *ast.Item)            {}
func (NopPass) CheckForeignItem(*Context, *ast.ForeignItem)     {}
func (NopPass) CheckForeignItemPost(*Context, *ast.ForeignItem) {}
func (NopPass) CheckParam(*Context, *ast.Param)                 {}
func (NopPass) CheckPat(*Context, *ast.Pat)                   {}
func (NopPass) CheckPatPost(*Context, *ast.Pat)               {}
func (NopPass) CheckExpr(*Context, *ast.Expr)                 {}
func (NopPass) CheckExprPost(*Context, *ast.Expr)             {}
func (NopPass) CheckStmt(*Context, *ast.Stmt)                 {}
func (NopPass) CheckLocal(*Context, *ast.Local)               {}
func (NopPass) CheckFn(*Context, *ast.Fn, ast.NodeID)         {}
func (NopPass) CheckFnPost(*Context, *ast.Fn, ast.NodeID)     {}
func (NopPass) CheckStructDef(*Context, *ast.StructDef)       {}
func (NopPass) CheckStructDefPost(*Context, *ast.StructDef)   {}
func (NopPass) CheckStructField(*Context, *ast.Field)         {}
func (NopPass) CheckVariant(*Context, *ast.Variant)           {}
func (NopPass) CheckVariantPost(*Context, *ast.Variant)       {}
func (NopPass) CheckTy(*Context, *ast.Ty)                     {}
func (NopPass) CheckIdent(*Context, ast.Ident)                {}
func (NopPass) CheckBlock(*Context, *ast.Block)               {}
func (NopPass) CheckBlockPost(*Context, *ast.Block)           {}
func (NopPass) CheckArm(*Context, *ast.Arm)                   {}
func (NopPass) CheckGenerics(*Context, *ast.Generics)         {}
func (NopPass) CheckGenericParam(*Context, *ast.GenericParam) {}
func (NopPass) CheckTraitItem(*Context, *ast.AssocItem)       {}
func (NopPass) CheckTraitItemPost(*Context, *ast.AssocItem)   {}
func (NopPass) CheckImplItem(*Context, *ast.AssocItem)        {}
func (NopPass) CheckImplItemPost(*Context, *ast.AssocItem)    {}
func (NopPass) CheckLifetime(*Context, *ast.Lifetime)         {}
func (NopPass) CheckPath(*Context, *ast.Path)                 {}
func (NopPass) CheckAttribute(*Context, *ast.Attr)            {}
func (NopPass) CheckMacDef(*Context, *ast.MacroDef)           {}
func (NopPass) CheckMac(*Context, *ast.MacCall)               {}
func (NopPass) EnterLintAttrs(*Context, []ast.Attr)           {}
func (NopPass) ExitLintAttrs(*Context, []ast.Attr)            {}

// group is the aggregate pass: it forwards every hook to its members in
// registration order, so diagnostics from different passes on the same
// node appear in that order.
type group struct {
	passes []Pass
}

// Passes combines passes into a single aggregate. A single pass is
// returned as-is.
func Passes(ps ...Pass) Pass {
	if len(ps) == 1 {
		return ps[0]
	}
	return &group{passes: ps}
}

func (g *group) Name() string { return "aggregate" }

func (g *group) CheckCrate(cx *Context, n *ast.Crate) {
	for _, p := range g.passes {
		p.CheckCrate(cx, n)
	}
}

func (g *group) CheckCratePost(cx *Context, n *ast.Crate) {
	for _, p := range g.passes {
		p.CheckCratePost(cx, n)
	}
}

func (g *group) CheckMod(cx *Context, n *ast.Mod) {
	for _, p := range g.passes {
		p.CheckMod(cx, n)
	}
}

func (g *group) CheckModPost(cx *Context, n *ast.Mod) {
	for _, p := range g.passes {
		p.CheckModPost(cx, n)
	}
}

func (g *group) CheckItem(cx *Context, n *ast.Item) {
	for _, p := range g.passes {
		p.CheckItem(cx, n)
	}
}

func (g *group) CheckItemPost(cx *Context, n *ast.Item) {
	for _, p := range g.passes {
		p.CheckItemPost(cx, n)
	}
}

func (g *group) CheckForeignItem(cx *Context, n *ast.ForeignItem) {
	for _, p := range g.passes {
		p.CheckForeignItem(cx, n)
	}
}

func (g *group) CheckForeignItemPost(cx *Context, n *ast.ForeignItem) {
	for _, p := range g.passes {
		p.CheckForeignItemPost(cx, n)
	}
}

func (g *group) CheckParam(cx *Context, n *ast.Param) {
	for _, p := range g.passes {
		p.CheckParam(cx, n)
	}
}

func (g *group) CheckPat(cx *Context, n *ast.Pat) {
	for _, p := range g.passes {
		p.CheckPat(cx, n)
	}
}

func (g *group) CheckPatPost(cx *Context, n *ast.Pat) {
	for _, p := range g.passes {
		p.CheckPatPost(cx, n)
	}
}

func (g *group) CheckExpr(cx *Context, n *ast.Expr) {
	for _, p := range g.passes {
		p.CheckExpr(cx, n)
	}
}

func (g *group) CheckExprPost(cx *Context, n *ast.Expr) {
	for _, p := range g.passes {
		p.CheckExprPost(cx, n)
	}
}

func (g *group) CheckStmt(cx *Context, n *ast.Stmt) {
	for _, p := range g.passes {
		p.CheckStmt(cx, n)
	}
}

func (g *group) CheckLocal(cx *Context, n *ast.Local) {
	for _, p := range g.passes {
		p.CheckLocal(cx, n)
	}
}

func (g *group) CheckFn(cx *Context, n *ast.Fn, id ast.NodeID) {
	for _, p := range g.passes {
		p.CheckFn(cx, n, id)
	}
}

func (g *group) CheckFnPost(cx *Context, n *ast.Fn, id ast.NodeID) {
	for _, p := range g.passes {
		p.CheckFnPost(cx, n, id)
	}
}

func (g *group) CheckStructDef(cx *Context, n *ast.StructDef) {
	for _, p := range g.passes {
		p.CheckStructDef(cx, n)
	}
}

func (g *group) CheckStructDefPost(cx *Context, n *ast.StructDef) {
	for _, p := range g.passes {
		p.CheckStructDefPost(cx, n)
	}
}

func (g *group) CheckStructField(cx *Context, n *ast.Field) {
	for _, p := range g.passes {
		p.CheckStructField(cx, n)
	}
}

func (g *group) CheckVariant(cx *Context, n *ast.Variant) {
	for _, p := range g.passes {
		p.CheckVariant(cx, n)
	}
}

func (g *group) CheckVariantPost(cx *Context, n *ast.Variant) {
	for _, p := range g.passes {
		p.CheckVariantPost(cx, n)
	}
}

func (g *group) CheckTy(cx *Context, n *ast.Ty) {
	for _, p := range g.passes {
		p.CheckTy(cx, n)
	}
}

func (g *group) CheckIdent(cx *Context, n ast.Ident) {
	for _, p := range g.passes {
		p.CheckIdent(cx, n)
	}
}

func (g *group) CheckBlock(cx *Context, n *ast.Block) {
	for _, p := range g.passes {
		p.CheckBlock(cx, n)
	}
}

func (g *group) CheckBlockPost(cx *Context, n *ast.Block) {
	for _, p := range g.passes {
		p.CheckBlockPost(cx, n)
	}
}

func (g *group) CheckArm(cx *Context, n *ast.Arm) {
	for _, p := range g.passes {
		p.CheckArm(cx, n)
	}
}

func (g *group) CheckGenerics(cx *Context, n *ast.Generics) {
	for _, p := range g.passes {
		p.CheckGenerics(cx, n)
	}
}

func (g *group) CheckGenericParam(cx *Context, n *ast.GenericParam) {
	for _, p := range g.passes {
		p.CheckGenericParam(cx, n)
	}
}

func (g *group) CheckTraitItem(cx *Context, n *ast.AssocItem) {
	for _, p := range g.passes {
		p.CheckTraitItem(cx, n)
	}
}

func (g *group) CheckTraitItemPost(cx *Context, n *ast.AssocItem) {
	for _, p := range g.passes {
		p.CheckTraitItemPost(cx, n)
	}
}

func (g *group) CheckImplItem(cx *Context, n *ast.AssocItem) {
	for _, p := range g.passes {
		p.CheckImplItem(cx, n)
	}
}

func (g *group) CheckImplItemPost(cx *Context, n *ast.AssocItem) {
	for _, p := range g.passes {
		p.CheckImplItemPost(cx, n)
	}
}

func (g *group) CheckLifetime(cx *Context, n *ast.Lifetime) {
	for _, p := range g.passes {
		p.CheckLifetime(cx, n)
	}
}

func (g *group) CheckPath(cx *Context, n *ast.Path) {
	for _, p := range g.passes {
		p.CheckPath(cx, n)
	}
}

func (g *group) CheckAttribute(cx *Context, n *ast.Attr) {
	for _, p := range g.passes {
		p.CheckAttribute(cx, n)
	}
}

func (g *group) CheckMacDef(cx *Context, n *ast.MacroDef) {
	for _, p := range g.passes {
		p.CheckMacDef(cx, n)
	}
}

func (g *group) CheckMac(cx *Context, n *ast.MacCall) {
	for _, p := range g.passes {
		p.CheckMac(cx, n)
	}
}

func (g *group) EnterLintAttrs(cx *Context, attrs []ast.Attr) {
	for _, p := range g.passes {
		p.EnterLintAttrs(cx, attrs)
	}
}

func (g *group) ExitLintAttrs(cx *Context, attrs []ast.Attr) {
	for _, p := range g.passes {
		p.ExitLintAttrs(cx, attrs)
	}
}
