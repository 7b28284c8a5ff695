package lint

import (
	"fmt"

	"cinder/internal/ast"
	"cinder/internal/trace"
)

// walker drives one pass (or an aggregate) over the tree in a fixed,
// deterministic pre-order. Nodes that can carry attributes get the full
// scope dance: push levels, flush buffered findings, notify the pass of
// scope entry, pre hook, children, post hook, scope exit, pop. Kinds
// without attributes only flush and run their hooks.
type walker struct {
	cx   *Context
	pass Pass
}

// checkID flushes every finding buffered against id through the scope
// currently in effect.
func (w *walker) checkID(id ast.NodeID) {
	if !id.IsValid() {
		return
	}
	for _, bl := range w.cx.buffer.Take(id) {
		w.cx.Emit(bl.Lint, bl.Span, bl.Msg, bl.Notes...)
	}
}

// withLintAttrs merges the node's lint attributes into the current scope,
// runs f, then restores the previous state. The deferred pop keeps the
// stack balanced on every exit path, including a panicking hook.
func (w *walker) withLintAttrs(id ast.NodeID, attrs []ast.Attr, f func()) {
	tok := w.cx.Levels.Push(attrs)
	defer w.cx.Levels.Pop(tok)

	w.checkID(id)
	w.enterAttrs(attrs)
	f()
	w.exitAttrs(attrs)
}

func (w *walker) enterAttrs(attrs []ast.Attr) {
	if w.cx.Tracer.Enabled() && len(attrs) > 0 {
		w.cx.Tracer.Emit(trace.Point(trace.ScopeNode, "enter-lint-attrs", fmt.Sprintf("%d attrs", len(attrs))))
	}
	w.pass.EnterLintAttrs(w.cx, attrs)
}

func (w *walker) exitAttrs(attrs []ast.Attr) {
	if w.cx.Tracer.Enabled() && len(attrs) > 0 {
		w.cx.Tracer.Emit(trace.Point(trace.ScopeNode, "exit-lint-attrs", fmt.Sprintf("%d attrs", len(attrs))))
	}
	w.pass.ExitLintAttrs(w.cx, attrs)
}

// visitCrate is the traversal entry point. The crate root is not reached
// via any parent's child-walk, so it is visited explicitly here; its
// file-level attributes scope the whole tree and its hooks are the
// whole-program checks.
func (w *walker) visitCrate(c *ast.Crate) {
	w.withLintAttrs(c.ID, c.Attrs, func() {
		w.pass.CheckCrate(w.cx, c)
		w.walkAttrs(c.Attrs)
		for _, it := range c.Items {
			w.visitItem(it)
		}
		w.pass.CheckCratePost(w.cx, c)
	})
}

func (w *walker) visitItem(it *ast.Item) {
	w.withLintAttrs(it.ID, it.Attrs, func() {
		w.pass.CheckItem(w.cx, it)
		w.walkItem(it)
		w.pass.CheckItemPost(w.cx, it)
	})
}

func (w *walker) walkItem(it *ast.Item) {
	w.walkAttrs(it.Attrs)
	if it.Name.Name != "" {
		w.pass.CheckIdent(w.cx, it.Name)
	}
	w.visitGenerics(it.Generics)

	switch it.Kind {
	case ast.ItemMod:
		w.visitMod(it.Mod)
	case ast.ItemFn:
		w.visitFn(it.Fn, it.ID)
	case ast.ItemStruct:
		w.visitStructDef(it.Struct)
	case ast.ItemEnum:
		if it.Enum != nil {
			for _, v := range it.Enum.Variants {
				w.visitVariant(v)
			}
		}
	case ast.ItemTrait:
		if it.Trait != nil {
			for _, ti := range it.Trait.Items {
				w.visitTraitItem(ti)
			}
		}
	case ast.ItemImpl:
		if it.Impl != nil {
			w.visitTy(it.Impl.SelfTy)
			w.visitPath(it.Impl.TraitRef)
			for _, ii := range it.Impl.Items {
				w.visitImplItem(ii)
			}
		}
	case ast.ItemForeignMod:
		for _, fi := range it.ForeignItems {
			w.visitForeignItem(fi)
		}
	case ast.ItemMacroDef:
		w.visitMacDef(it.MacroDef)
	}
}

// Kinds without attributes (mod, block, stmt, pat, ty, lifetime, path)
// run their pre hook before the flush. The node cannot change the levels
// in effect, so flushed findings resolve identically either way.
func (w *walker) visitMod(m *ast.Mod) {
	if m == nil {
		return
	}
	w.pass.CheckMod(w.cx, m)
	w.checkID(m.ID)
	for _, it := range m.Items {
		w.visitItem(it)
	}
	w.pass.CheckModPost(w.cx, m)
}

// visitFn handles both free functions and trait/impl methods; id is the
// identity of the owning item.
func (w *walker) visitFn(fn *ast.Fn, id ast.NodeID) {
	if fn == nil {
		return
	}
	w.pass.CheckFn(w.cx, fn, id)
	w.checkID(id)
	if fn.Sig != nil {
		for _, p := range fn.Sig.Params {
			w.visitParam(p)
		}
		w.visitTy(fn.Sig.Ret)
	}
	w.visitBlock(fn.Body)
	w.pass.CheckFnPost(w.cx, fn, id)
}

func (w *walker) visitForeignItem(fi *ast.ForeignItem) {
	if fi == nil {
		return
	}
	w.withLintAttrs(fi.ID, fi.Attrs, func() {
		w.pass.CheckForeignItem(w.cx, fi)
		w.walkAttrs(fi.Attrs)
		w.pass.CheckIdent(w.cx, fi.Name)
		if fi.Sig != nil {
			for _, p := range fi.Sig.Params {
				w.visitParam(p)
			}
			w.visitTy(fi.Sig.Ret)
		}
		w.pass.CheckForeignItemPost(w.cx, fi)
	})
}

func (w *walker) visitParam(p *ast.Param) {
	if p == nil {
		return
	}
	w.withLintAttrs(p.ID, p.Attrs, func() {
		w.pass.CheckParam(w.cx, p)
		w.walkAttrs(p.Attrs)
		w.visitPat(p.Pat)
		w.visitTy(p.Ty)
	})
}

func (w *walker) visitPat(p *ast.Pat) {
	if p == nil {
		return
	}
	w.pass.CheckPat(w.cx, p)
	w.checkID(p.ID)
	switch p.Kind {
	case ast.PatBind:
		w.pass.CheckIdent(w.cx, p.Name)
	case ast.PatPath:
		w.visitPath(p.Path)
	case ast.PatTuple:
		for _, sub := range p.Subs {
			w.visitPat(sub)
		}
	}
	w.pass.CheckPatPost(w.cx, p)
}

func (w *walker) visitExpr(e *ast.Expr) {
	if e == nil {
		return
	}
	w.withLintAttrs(e.ID, e.Attrs, func() {
		w.pass.CheckExpr(w.cx, e)
		w.walkAttrs(e.Attrs)
		w.walkExpr(e)
		w.pass.CheckExprPost(w.cx, e)
	})
}

func (w *walker) walkExpr(e *ast.Expr) {
	switch e.Kind {
	case ast.ExprPath:
		w.visitPath(e.Path)
	case ast.ExprCall:
		w.visitExpr(e.Callee)
		for _, arg := range e.Args {
			w.visitExpr(arg)
		}
	case ast.ExprBinary, ast.ExprAssign:
		w.visitExpr(e.Lhs)
		w.visitExpr(e.Rhs)
	case ast.ExprUnary, ast.ExprReturn:
		w.visitExpr(e.X)
	case ast.ExprIf:
		w.visitExpr(e.X)
		w.visitBlock(e.Blk)
		w.visitExpr(e.Else)
	case ast.ExprWhile:
		w.visitExpr(e.X)
		w.visitBlock(e.Blk)
	case ast.ExprLoop, ast.ExprBlock:
		w.visitBlock(e.Blk)
	case ast.ExprMatch:
		w.visitExpr(e.X)
		for _, arm := range e.Arms {
			w.visitArm(arm)
		}
	case ast.ExprMac:
		w.visitMac(e.Mac)
	}
}

func (w *walker) visitStmt(s *ast.Stmt) {
	if s == nil {
		return
	}
	w.pass.CheckStmt(w.cx, s)
	w.checkID(s.ID)
	switch s.Kind {
	case ast.StmtLocal:
		w.visitLocal(s.Local)
	case ast.StmtItem:
		w.visitItem(s.Item)
	case ast.StmtExpr, ast.StmtSemi:
		w.visitExpr(s.Expr)
	case ast.StmtMac:
		w.visitMac(s.Mac)
	}
}

func (w *walker) visitLocal(l *ast.Local) {
	if l == nil {
		return
	}
	w.withLintAttrs(l.ID, l.Attrs, func() {
		w.pass.CheckLocal(w.cx, l)
		w.walkAttrs(l.Attrs)
		w.visitPat(l.Pat)
		w.visitTy(l.Ty)
		w.visitExpr(l.Init)
	})
}

func (w *walker) visitBlock(b *ast.Block) {
	if b == nil {
		return
	}
	w.pass.CheckBlock(w.cx, b)
	w.checkID(b.ID)
	for _, s := range b.Stmts {
		w.visitStmt(s)
	}
	w.pass.CheckBlockPost(w.cx, b)
}

func (w *walker) visitArm(a *ast.Arm) {
	if a == nil {
		return
	}
	w.pass.CheckArm(w.cx, a)
	w.visitPat(a.Pat)
	w.visitExpr(a.Guard)
	w.visitExpr(a.Body)
}

func (w *walker) visitStructDef(sd *ast.StructDef) {
	if sd == nil {
		return
	}
	w.pass.CheckStructDef(w.cx, sd)
	w.checkID(sd.ID)
	for _, f := range sd.Fields {
		w.visitField(f)
	}
	w.pass.CheckStructDefPost(w.cx, sd)
}

func (w *walker) visitField(f *ast.Field) {
	if f == nil {
		return
	}
	w.withLintAttrs(f.ID, f.Attrs, func() {
		w.pass.CheckStructField(w.cx, f)
		w.walkAttrs(f.Attrs)
		w.pass.CheckIdent(w.cx, f.Name)
		w.visitTy(f.Ty)
	})
}

func (w *walker) visitVariant(v *ast.Variant) {
	if v == nil {
		return
	}
	w.withLintAttrs(v.ID, v.Attrs, func() {
		w.pass.CheckVariant(w.cx, v)
		w.walkAttrs(v.Attrs)
		w.pass.CheckIdent(w.cx, v.Name)
		w.visitStructDef(v.Data)
		w.pass.CheckVariantPost(w.cx, v)
	})
}

func (w *walker) visitTy(t *ast.Ty) {
	if t == nil {
		return
	}
	w.pass.CheckTy(w.cx, t)
	w.checkID(t.ID)
	switch t.Kind {
	case ast.TyPath:
		w.visitPath(t.Path)
	case ast.TyRef:
		w.visitLifetime(t.Lifetime)
		w.visitTy(t.Elem)
	case ast.TySlice:
		w.visitTy(t.Elem)
	case ast.TyTuple:
		for _, el := range t.Elems {
			w.visitTy(el)
		}
	}
}

func (w *walker) visitLifetime(lt *ast.Lifetime) {
	if lt == nil {
		return
	}
	w.pass.CheckLifetime(w.cx, lt)
	w.checkID(lt.ID)
}

func (w *walker) visitPath(p *ast.Path) {
	if p == nil {
		return
	}
	w.pass.CheckPath(w.cx, p)
	w.checkID(p.ID)
	for _, seg := range p.Segments {
		w.pass.CheckIdent(w.cx, seg)
	}
}

func (w *walker) visitGenerics(g *ast.Generics) {
	if g == nil {
		return
	}
	w.pass.CheckGenerics(w.cx, g)
	for _, gp := range g.Params {
		w.pass.CheckGenericParam(w.cx, gp)
	}
}

func (w *walker) visitTraitItem(ti *ast.AssocItem) {
	if ti == nil {
		return
	}
	w.withLintAttrs(ti.ID, ti.Attrs, func() {
		w.pass.CheckTraitItem(w.cx, ti)
		w.walkAssocItem(ti)
		w.pass.CheckTraitItemPost(w.cx, ti)
	})
}

func (w *walker) visitImplItem(ii *ast.AssocItem) {
	if ii == nil {
		return
	}
	w.withLintAttrs(ii.ID, ii.Attrs, func() {
		w.pass.CheckImplItem(w.cx, ii)
		w.walkAssocItem(ii)
		w.pass.CheckImplItemPost(w.cx, ii)
	})
}

func (w *walker) walkAssocItem(ai *ast.AssocItem) {
	w.walkAttrs(ai.Attrs)
	w.pass.CheckIdent(w.cx, ai.Name)
	switch ai.Kind {
	case ast.AssocFn:
		w.visitFn(ai.Fn, ai.ID)
	case ast.AssocConst, ast.AssocType:
		w.visitTy(ai.Ty)
	}
}

func (w *walker) visitMacDef(md *ast.MacroDef) {
	if md == nil {
		return
	}
	w.pass.CheckMacDef(w.cx, md)
	w.checkID(md.ID)
}

// visitMac walks the invocation path before running the hook, so path
// checks fire for macro paths too.
func (w *walker) visitMac(m *ast.MacCall) {
	if m == nil {
		return
	}
	w.visitPath(m.Path)
	w.pass.CheckMac(w.cx, m)
}

func (w *walker) walkAttrs(attrs []ast.Attr) {
	for i := range attrs {
		w.pass.CheckAttribute(w.cx, &attrs[i])
	}
}
