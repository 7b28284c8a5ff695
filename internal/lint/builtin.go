package lint

import (
	"fmt"
	"unicode"

	"cinder/internal/ast"
)

// DefaultRegistry returns the registry with the built-in lint set. The
// buffered-lint names emitted by earlier phases are registered here too,
// so their levels can be configured the same way.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&Lint{
		Name:    "while-true",
		Default: LevelWarn,
		Desc:    "suggest `loop { }` for infinite loops spelled `while true { }`",
	})
	r.Register(&Lint{
		Name:    "non-camel-case-types",
		Default: LevelWarn,
		Desc:    "types, traits and enums should have CamelCase names",
	})
	r.Register(&Lint{
		Name:    "non-snake-case",
		Default: LevelWarn,
		Desc:    "functions, parameters and bindings should have snake_case names",
	})
	r.Register(&Lint{
		Name:    "unused-doc-comment",
		Default: LevelWarn,
		Desc:    "doc comment attached to a node that ignores documentation",
	})
	// Diagnosed by earlier phases and handed to the traversal as
	// buffered findings.
	r.Register(&Lint{
		Name:    "unused-binding",
		Default: LevelWarn,
		Desc:    "local binding is never used",
	})
	r.Register(&Lint{
		Name:    "unreachable-code",
		Default: LevelWarn,
		Desc:    "code after a diverging expression is never executed",
	})
	r.RegisterGroup("style", "non-camel-case-types", "non-snake-case")
	r.RegisterGroup("unused", "unused-binding", "unused-doc-comment")
	return r
}

// BuiltinPasses returns the aggregate of the always-run pass set.
func BuiltinPasses() Pass {
	return Passes(
		&WhileTruePass{},
		&NonCamelCaseTypesPass{},
		&NonSnakeCasePass{},
		&UnusedDocCommentPass{},
	)
}

// WhileTruePass flags `while true { ... }` loops.
type WhileTruePass struct{ NopPass }

func (*WhileTruePass) Name() string { return "while-true" }

func (*WhileTruePass) CheckExpr(cx *Context, e *ast.Expr) {
	if e.Kind != ast.ExprWhile || e.X == nil {
		return
	}
	if e.X.Kind == ast.ExprLit && e.X.Lit == "true" {
		cx.Emit("while-true", e.Span, "denote infinite loops with `loop { ... }`")
	}
}

// NonCamelCaseTypesPass flags type-like items whose names are not CamelCase.
type NonCamelCaseTypesPass struct{ NopPass }

func (*NonCamelCaseTypesPass) Name() string { return "non-camel-case-types" }

func (*NonCamelCaseTypesPass) CheckItem(cx *Context, it *ast.Item) {
	switch it.Kind {
	case ast.ItemStruct, ast.ItemEnum, ast.ItemTrait:
	default:
		return
	}
	if it.Name.Name == "" || isCamelCase(it.Name.Name) {
		return
	}
	cx.Emit("non-camel-case-types", it.Name.Span,
		fmt.Sprintf("%s `%s` should have a CamelCase name", it.Kind, it.Name.Name))
}

func (p *NonCamelCaseTypesPass) CheckVariant(cx *Context, v *ast.Variant) {
	if v.Name.Name == "" || isCamelCase(v.Name.Name) {
		return
	}
	cx.Emit("non-camel-case-types", v.Name.Span,
		fmt.Sprintf("variant `%s` should have a CamelCase name", v.Name.Name))
}

// NonSnakeCasePass flags value-level names that are not snake_case.
type NonSnakeCasePass struct{ NopPass }

func (*NonSnakeCasePass) Name() string { return "non-snake-case" }

func (p *NonSnakeCasePass) CheckItem(cx *Context, it *ast.Item) {
	if it.Kind != ast.ItemFn {
		return
	}
	p.check(cx, "function", it.Name)
}

func (p *NonSnakeCasePass) CheckLocal(cx *Context, l *ast.Local) {
	if l.Pat != nil && l.Pat.Kind == ast.PatBind {
		p.check(cx, "binding", l.Pat.Name)
	}
}

func (p *NonSnakeCasePass) CheckParam(cx *Context, prm *ast.Param) {
	if prm.Pat != nil && prm.Pat.Kind == ast.PatBind {
		p.check(cx, "parameter", prm.Pat.Name)
	}
}

func (*NonSnakeCasePass) check(cx *Context, what string, name ast.Ident) {
	if name.Name == "" || isSnakeCase(name.Name) {
		return
	}
	cx.Emit("non-snake-case", name.Span,
		fmt.Sprintf("%s `%s` should have a snake_case name", what, name.Name))
}

// UnusedDocCommentPass flags doc comments attached to nodes that cannot
// carry documentation.
type UnusedDocCommentPass struct{ NopPass }

func (*UnusedDocCommentPass) Name() string { return "unused-doc-comment" }

func (p *UnusedDocCommentPass) CheckLocal(cx *Context, l *ast.Local) {
	p.check(cx, l.Attrs)
}

func (p *UnusedDocCommentPass) CheckExpr(cx *Context, e *ast.Expr) {
	p.check(cx, e.Attrs)
}

func (*UnusedDocCommentPass) check(cx *Context, attrs []ast.Attr) {
	for _, attr := range attrs {
		if attr.IsDoc() {
			cx.Emit("unused-doc-comment", attr.Span, "doc comment has no effect here")
			return
		}
	}
}

// isCamelCase accepts names like `Foo`, `FooBar`, `Utf8Decoder`.
func isCamelCase(name string) bool {
	runes := []rune(name)
	if len(runes) == 0 || !unicode.IsUpper(runes[0]) {
		return false
	}
	for _, r := range runes {
		if r == '_' {
			return false
		}
	}
	return true
}

// isSnakeCase accepts names like `foo`, `foo_bar`, `_unused`, `buf2`.
func isSnakeCase(name string) bool {
	for _, r := range name {
		if unicode.IsUpper(r) {
			return false
		}
	}
	return true
}
