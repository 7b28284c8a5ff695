package lint

import (
	"testing"

	"cinder/internal/ast"
	"cinder/internal/source"
)

func attr(name string, args ...string) ast.Attr {
	return ast.Attr{Name: name, Args: args, Span: source.Span{File: 1}}
}

func TestLevelBuilderNesting(t *testing.T) {
	reg := DefaultRegistry()
	b := NewLevelBuilder(reg, nil)

	if level, ok := b.Query("while-true"); !ok || level != LevelWarn {
		t.Fatalf("default = %v/%v, want warn/true", level, ok)
	}

	outer := b.Push([]ast.Attr{attr("deny", "while-true")})
	if level, _ := b.Query("while-true"); level != LevelDeny {
		t.Errorf("after deny: %v, want deny", level)
	}

	inner := b.Push([]ast.Attr{attr("allow", "while-true")})
	if level, _ := b.Query("while-true"); level != LevelAllow {
		t.Errorf("nearest scope should win: %v, want allow", level)
	}

	b.Pop(inner)
	if level, _ := b.Query("while-true"); level != LevelDeny {
		t.Errorf("after inner pop: %v, want deny", level)
	}

	b.Pop(outer)
	if level, _ := b.Query("while-true"); level != LevelWarn {
		t.Errorf("after outer pop: %v, want default warn", level)
	}
	if b.Depth() != 0 {
		t.Errorf("depth = %d, want 0", b.Depth())
	}
}

func TestLevelBuilderGroupExpansion(t *testing.T) {
	reg := DefaultRegistry()
	b := NewLevelBuilder(reg, nil)

	tok := b.Push([]ast.Attr{attr("allow", "style")})
	defer b.Pop(tok)

	for _, name := range []string{"non-camel-case-types", "non-snake-case"} {
		if level, _ := b.Query(name); level != LevelAllow {
			t.Errorf("%s = %v, want allow via group", name, level)
		}
	}
	// Lints outside the group keep their defaults.
	if level, _ := b.Query("while-true"); level != LevelWarn {
		t.Errorf("while-true = %v, want warn", level)
	}
}

func TestLevelBuilderUnknownName(t *testing.T) {
	reg := DefaultRegistry()
	var reported []string
	b := NewLevelBuilder(reg, func(name string, _ source.Span) {
		reported = append(reported, name)
	})

	tok := b.Push([]ast.Attr{attr("allow", "definitely-not-a-lint", "while-true")})
	defer b.Pop(tok)

	if len(reported) != 1 || reported[0] != "definitely-not-a-lint" {
		t.Errorf("reported = %v, want the one unknown name", reported)
	}
	// Known names in the same attribute still apply.
	if level, _ := b.Query("while-true"); level != LevelAllow {
		t.Error("known name in mixed attribute should still apply")
	}
	if _, ok := b.Query("definitely-not-a-lint"); ok {
		t.Error("unknown name must resolve with ok=false")
	}
}

func TestLevelBuilderNonLintAttrsIgnored(t *testing.T) {
	reg := DefaultRegistry()
	b := NewLevelBuilder(reg, nil)

	tok := b.Push([]ast.Attr{attr("doc"), attr("inline")})
	defer b.Pop(tok)

	if level, _ := b.Query("while-true"); level != LevelWarn {
		t.Errorf("non-lint attrs changed levels: %v", level)
	}
}

func TestLevelBuilderUnbalancedPopPanics(t *testing.T) {
	reg := DefaultRegistry()
	b := NewLevelBuilder(reg, nil)

	first := b.Push(nil)
	b.Push(nil)

	defer func() {
		if recover() == nil {
			t.Error("out-of-order pop should panic")
		}
	}()
	b.Pop(first)
}

func TestRegistryExpandAndDefaults(t *testing.T) {
	reg := DefaultRegistry()

	names, ok := reg.Expand("style")
	if !ok || len(names) != 2 {
		t.Fatalf("Expand(style) = %v/%v", names, ok)
	}
	if names, ok := reg.Expand("while-true"); !ok || len(names) != 1 || names[0] != "while-true" {
		t.Errorf("Expand(while-true) = %v/%v", names, ok)
	}
	if _, ok := reg.Expand("nope"); ok {
		t.Error("Expand of unknown name should fail")
	}

	if err := reg.SetDefault("while-true", LevelDeny); err != nil {
		t.Fatal(err)
	}
	if l, _ := reg.Lookup("while-true"); l.Default != LevelDeny {
		t.Error("SetDefault did not stick")
	}
	if err := reg.SetDefault("nope", LevelDeny); err == nil {
		t.Error("SetDefault of unknown lint should error")
	}
}
