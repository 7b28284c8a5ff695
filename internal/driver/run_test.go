package driver

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"cinder/internal/ast"
	"cinder/internal/diag"
	"cinder/internal/snapshot"
	"cinder/internal/source"
)

// badLoopCrate models:
//
//	fn BadName() {
//	    while true {}
//	}
//
// with an unused-binding lint buffered against the body block by an
// earlier phase.
func badLoopCrate() *ast.Crate {
	cond := &ast.Expr{ID: 6, Kind: ast.ExprLit, Lit: "true", Span: source.Span{Start: 25, End: 29}}
	loop := &ast.Expr{
		ID:   5,
		Kind: ast.ExprWhile,
		X:    cond,
		Blk:  &ast.Block{ID: 7, Span: source.Span{Start: 30, End: 32}},
		Span: source.Span{Start: 19, End: 32},
	}
	body := &ast.Block{
		ID: 3,
		Stmts: []*ast.Stmt{
			{ID: 4, Kind: ast.StmtSemi, Expr: loop, Span: loop.Span},
		},
		Span: source.Span{Start: 13, End: 34},
	}
	return &ast.Crate{
		ID: ast.CrateNodeID,
		Items: []*ast.Item{
			{
				ID:   2,
				Kind: ast.ItemFn,
				Name: ast.Ident{Name: "BadName", Span: source.Span{Start: 3, End: 10}},
				Fn:   &ast.Fn{Body: body},
				Span: source.Span{Start: 0, End: 34},
			},
		},
		Span: source.Span{Start: 0, End: 35},
	}
}

func writeSnapshot(t *testing.T, dir, name string) string {
	t.Helper()
	snap := snapshot.New(badLoopCrate())
	snap.AddFile("src/"+name+".cn", []byte("fn BadName() {\n    while true {}\n}\n"))
	snap.AddBuffered(snapshot.BufferedEntry{
		Node: 3,
		Lint: "unused-binding",
		Span: source.Span{Start: 13, End: 14},
		Msg:  "binding is never used",
	})
	path := filepath.Join(dir, name+".snap")
	if err := snapshot.Write(path, snap); err != nil {
		t.Fatalf("write snapshot: %v", err)
	}
	return path
}

func lintNames(bag *diag.Bag) []string {
	names := make([]string, 0, bag.Len())
	for _, d := range bag.Items() {
		names = append(names, d.Lint)
	}
	return names
}

func TestRunFile(t *testing.T) {
	path := writeSnapshot(t, t.TempDir(), "main")

	res, err := RunFile(path, RunOptions{Config: DefaultConfig()})
	if err != nil {
		t.Fatalf("RunFile: %v", err)
	}
	if res.Path != path {
		t.Errorf("path = %q, want %q", res.Path, path)
	}

	// Sorted by span: fn name, then buffered lint on the block, then the
	// loop expression.
	want := []string{"non-snake-case", "unused-binding", "while-true"}
	got := lintNames(res.Bag)
	if len(got) != len(want) {
		t.Fatalf("lints = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("lints = %v, want %v", got, want)
		}
	}
	for _, d := range res.Bag.Items() {
		if d.Severity != diag.SevWarning {
			t.Errorf("lint %s severity = %v, want warning", d.Lint, d.Severity)
		}
	}
	if res.FileSet.Len() != 1 {
		t.Errorf("fileset len = %d, want 1", res.FileSet.Len())
	}
}

func TestRunFileConfigChangesSeverity(t *testing.T) {
	path := writeSnapshot(t, t.TempDir(), "main")

	cfg := DefaultConfig()
	cfg.Lints = map[string]string{
		"while-true":     "deny",
		"non-snake-case": "allow",
	}
	res, err := RunFile(path, RunOptions{Config: cfg})
	if err != nil {
		t.Fatalf("RunFile: %v", err)
	}

	var sawWhileTrue bool
	for _, d := range res.Bag.Items() {
		switch d.Lint {
		case "while-true":
			sawWhileTrue = true
			if d.Severity != diag.SevError {
				t.Errorf("while-true severity = %v, want error", d.Severity)
			}
		case "non-snake-case":
			t.Error("non-snake-case should be suppressed by config")
		}
	}
	if !sawWhileTrue {
		t.Error("while-true finding missing")
	}
	if !res.Bag.HasErrors() {
		t.Error("bag should report errors for denied lints")
	}
}

func TestRunFileClampsOversizedMax(t *testing.T) {
	path := writeSnapshot(t, t.TempDir(), "main")

	cfg := DefaultConfig()
	cfg.Run.MaxDiagnostics = 70000

	res, err := RunFile(path, RunOptions{Config: cfg})
	if err != nil {
		t.Fatalf("RunFile: %v", err)
	}
	if res.Bag.Len() == 0 {
		t.Error("expected findings despite oversized capacity")
	}
}

func TestRunFileMissingSnapshot(t *testing.T) {
	_, err := RunFile(filepath.Join(t.TempDir(), "absent.snap"), RunOptions{Config: DefaultConfig()})
	if err == nil {
		t.Fatal("expected error for missing snapshot")
	}
}

func TestRunFilesDeterministic(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for i := 0; i < 4; i++ {
		paths = append(paths, writeSnapshot(t, dir, fmt.Sprintf("mod%d", i)))
	}

	results, err := RunFiles(context.Background(), paths, 2, RunOptions{Config: DefaultConfig()})
	if err != nil {
		t.Fatalf("RunFiles: %v", err)
	}
	if len(results) != len(paths) {
		t.Fatalf("results = %d, want %d", len(results), len(paths))
	}

	for i, res := range results {
		if res.Path != paths[i] {
			t.Errorf("result %d path = %q, want %q", i, res.Path, paths[i])
		}
		seq, err := RunFile(paths[i], RunOptions{Config: DefaultConfig()})
		if err != nil {
			t.Fatalf("sequential RunFile: %v", err)
		}
		got, want := lintNames(res.Bag), lintNames(seq.Bag)
		if len(got) != len(want) {
			t.Fatalf("result %d lints = %v, want %v", i, got, want)
		}
		for j := range want {
			if got[j] != want[j] {
				t.Fatalf("result %d lints = %v, want %v", i, got, want)
			}
		}
	}
}

func TestRunFilesLoadErrorBecomesDiagnostic(t *testing.T) {
	dir := t.TempDir()
	good := writeSnapshot(t, dir, "good")
	missing := filepath.Join(dir, "missing.snap")

	results, err := RunFiles(context.Background(), []string{good, missing}, 0, RunOptions{Config: DefaultConfig()})
	if err != nil {
		t.Fatalf("RunFiles: %v", err)
	}
	if !results[1].Bag.HasErrors() {
		t.Error("missing snapshot should yield an IO error diagnostic")
	}
	if results[1].Bag.Items()[0].Code != diag.IOSnapshotRead {
		t.Errorf("code = %v, want IOSnapshotRead", results[1].Bag.Items()[0].Code)
	}
	if results[0].Bag.HasErrors() {
		t.Error("good snapshot should not be affected")
	}
}

func TestListSnapshots(t *testing.T) {
	dir := t.TempDir()
	writeSnapshot(t, dir, "b")
	writeSnapshot(t, dir, "a")

	files, err := ListSnapshots(dir)
	if err != nil {
		t.Fatalf("ListSnapshots: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("files = %v", files)
	}
	if filepath.Base(files[0]) != "a.snap" || filepath.Base(files[1]) != "b.snap" {
		t.Errorf("not sorted: %v", files)
	}
}
