package lint

import (
	"testing"

	"cinder/internal/ast"
	"cinder/internal/diag"
	"cinder/internal/source"
)

func lintNames(bag *diag.Bag) []string {
	var names []string
	for _, d := range bag.Items() {
		if d.Lint != "" {
			names = append(names, d.Lint)
		}
	}
	return names
}

func TestWhileTruePass(t *testing.T) {
	tb := newTreeBuilder()
	itemID, itemSpan := tb.node()
	whileID, whileSpan := tb.node()
	condID, condSpan := tb.node()
	blkID, blkSpan := tb.node()
	bodyID, bodySpan := tb.node()
	stmtID, stmtSpan := tb.node()

	crate := &ast.Crate{
		ID: ast.CrateNodeID,
		Items: []*ast.Item{{
			ID:   itemID,
			Kind: ast.ItemFn,
			Name: ast.Ident{Name: "spin", Span: itemSpan},
			Span: itemSpan,
			Fn: &ast.Fn{
				Sig: &ast.FnSig{},
				Body: &ast.Block{
					ID: bodyID,
					Stmts: []*ast.Stmt{{
						ID:   stmtID,
						Kind: ast.StmtExpr,
						Expr: &ast.Expr{
							ID:   whileID,
							Kind: ast.ExprWhile,
							X:    &ast.Expr{ID: condID, Kind: ast.ExprLit, Lit: "true", Span: condSpan},
							Blk:  &ast.Block{ID: blkID, Span: blkSpan},
							Span: whileSpan,
						},
						Span: stmtSpan,
					}},
					Span: bodySpan,
				},
			},
		}},
		Span: source.Span{File: 1, End: 1000},
	}

	bag := diag.NewBag(16)
	CheckCrate(crate, nil, Options{Reporter: diag.BagReporter{Bag: bag}})

	names := lintNames(bag)
	if len(names) != 1 || names[0] != "while-true" {
		t.Errorf("lints = %v, want [while-true]", names)
	}
}

func TestCaseLints(t *testing.T) {
	tb := newTreeBuilder()
	structID, structSpan := tb.node()
	sdID, _ := tb.node()

	crate := &ast.Crate{
		ID: ast.CrateNodeID,
		Items: []*ast.Item{
			{
				ID:     structID,
				Kind:   ast.ItemStruct,
				Name:   ast.Ident{Name: "lower_struct", Span: structSpan},
				Span:   structSpan,
				Struct: &ast.StructDef{ID: sdID, Span: structSpan},
			},
			tb.fn("BadFn", nil),
		},
		Span: source.Span{File: 1, End: 1000},
	}

	bag := diag.NewBag(16)
	CheckCrate(crate, nil, Options{Reporter: diag.BagReporter{Bag: bag}})

	want := map[string]int{"non-camel-case-types": 1, "non-snake-case": 1}
	got := map[string]int{}
	for _, name := range lintNames(bag) {
		got[name]++
	}
	for name, n := range want {
		if got[name] != n {
			t.Errorf("%s fired %d times, want %d (all: %v)", name, got[name], n, got)
		}
	}
}

func TestUnusedDocCommentPass(t *testing.T) {
	tb := newTreeBuilder()
	item := tb.fn("f", nil)
	local := item.Fn.Body.Stmts[0].Local
	local.Attrs = []ast.Attr{{Name: "doc", Args: []string{"docs on a let"}, Span: local.Span}}

	crate := &ast.Crate{
		ID:    ast.CrateNodeID,
		Items: []*ast.Item{item},
		Span:  source.Span{File: 1, End: 1000},
	}

	bag := diag.NewBag(16)
	CheckCrate(crate, nil, Options{Reporter: diag.BagReporter{Bag: bag}})

	found := false
	for _, name := range lintNames(bag) {
		if name == "unused-doc-comment" {
			found = true
		}
	}
	if !found {
		t.Error("expected an unused-doc-comment finding on the local")
	}
}

func TestCamelSnakeHelpers(t *testing.T) {
	cases := []struct {
		name  string
		camel bool
		snake bool
	}{
		{"FooBar", true, false},
		{"Utf8Decoder", true, false},
		{"foo_bar", false, true},
		{"_unused", false, true},
		{"Foo_Bar", false, false},
		{"buf2", false, true},
	}
	for _, tc := range cases {
		if got := isCamelCase(tc.name); got != tc.camel {
			t.Errorf("isCamelCase(%q) = %v, want %v", tc.name, got, tc.camel)
		}
		if got := isSnakeCase(tc.name); got != tc.snake {
			t.Errorf("isSnakeCase(%q) = %v, want %v", tc.name, got, tc.snake)
		}
	}
}
