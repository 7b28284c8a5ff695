package snapshot

import (
	"path/filepath"
	"strings"
	"testing"

	"cinder/internal/ast"
	"cinder/internal/source"
)

func sampleCrate() *ast.Crate {
	body := &ast.Block{ID: 4, Span: source.Span{Start: 10, End: 13}}
	fn := &ast.Fn{Body: body}
	item := &ast.Item{
		ID:   2,
		Kind: ast.ItemFn,
		Name: ast.Ident{Name: "main", Span: source.Span{Start: 3, End: 7}},
		Fn:   fn,
		Span: source.Span{Start: 0, End: 13},
	}
	return &ast.Crate{
		ID:    ast.CrateNodeID,
		Items: []*ast.Item{item},
		Span:  source.Span{Start: 0, End: 14},
	}
}

func TestRoundtrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crate.snap")

	snap := New(sampleCrate())
	snap.AddFile("src/main.cn", []byte("fn main() {}\n"))
	snap.AddBuffered(BufferedEntry{
		Node: 4,
		Lint: "unreachable-code",
		Span: source.Span{Start: 10, End: 13},
		Msg:  "unreachable statement",
		Notes: []NoteEntry{
			{Span: source.Span{Start: 0, End: 2}, Msg: "any code following this expression is unreachable"},
		},
	})

	if err := Write(path, snap); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if got.Schema != SchemaVersion {
		t.Errorf("schema = %d, want %d", got.Schema, SchemaVersion)
	}
	if got.Crate == nil || got.Crate.ID != ast.CrateNodeID {
		t.Fatalf("crate not restored: %+v", got.Crate)
	}
	if len(got.Crate.Items) != 1 || got.Crate.Items[0].Name.Name != "main" {
		t.Fatalf("items not restored: %+v", got.Crate.Items)
	}
	if got.Crate.Items[0].Fn == nil || got.Crate.Items[0].Fn.Body == nil {
		t.Fatalf("fn payload not restored")
	}

	fs := got.BuildFileSet()
	if fs.Len() != 1 {
		t.Fatalf("fileset len = %d, want 1", fs.Len())
	}
	f, ok := fs.GetByPath("src/main.cn")
	if !ok || string(f.Content) != "fn main() {}\n" {
		t.Fatalf("file content not restored")
	}

	buf := got.BuildBuffer()
	entries := buf.Take(4)
	if len(entries) != 1 {
		t.Fatalf("buffered entries = %d, want 1", len(entries))
	}
	if entries[0].Lint != "unreachable-code" || len(entries[0].Notes) != 1 {
		t.Errorf("buffered entry not restored: %+v", entries[0])
	}
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "absent.snap"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestReadSchemaMismatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crate.snap")

	snap := New(sampleCrate())
	snap.Schema = SchemaVersion + 1
	// Write validates only the crate, so a bad schema reaches disk.
	if err := Write(path, snap); err != nil {
		t.Fatalf("Write: %v", err)
	}
	_, err := Read(path)
	if err == nil || !strings.Contains(err.Error(), "schema") {
		t.Fatalf("expected schema error, got %v", err)
	}
}

func TestWriteRequiresCrate(t *testing.T) {
	err := Write(filepath.Join(t.TempDir(), "x.snap"), &Snapshot{Schema: SchemaVersion})
	if err == nil {
		t.Fatal("expected error for snapshot without crate")
	}
}
