// Package snapshot persists the output of earlier front-end phases: the
// parsed crate, the source files it came from and the lints those phases
// buffered against nodes. The lint driver loads a snapshot instead of
// re-running the parser.
package snapshot

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"cinder/internal/ast"
	"cinder/internal/diag"
	"cinder/internal/lint"
	"cinder/internal/source"
)

// SchemaVersion - increment when the Snapshot format changes.
const SchemaVersion uint16 = 1

// FileEntry carries one source file of the snapshot.
type FileEntry struct {
	Path    string
	Content []byte
}

// NoteEntry is a serialized diag.Note.
type NoteEntry struct {
	Span source.Span
	Msg  string
}

// BufferedEntry is one lint buffered by an earlier phase against a node.
type BufferedEntry struct {
	Node  ast.NodeID
	Lint  string
	Span  source.Span
	Msg   string
	Notes []NoteEntry
}

// Snapshot is the on-disk payload.
type Snapshot struct {
	Schema   uint16
	Files    []FileEntry
	Crate    *ast.Crate
	Buffered []BufferedEntry
}

// New builds a snapshot with the current schema version.
func New(crate *ast.Crate) *Snapshot {
	return &Snapshot{Schema: SchemaVersion, Crate: crate}
}

// AddFile appends a source file to the snapshot.
func (s *Snapshot) AddFile(path string, content []byte) {
	s.Files = append(s.Files, FileEntry{Path: path, Content: content})
}

// AddBuffered appends a buffered lint to the snapshot.
func (s *Snapshot) AddBuffered(entry BufferedEntry) {
	s.Buffered = append(s.Buffered, entry)
}

// Write serializes the snapshot to path. The file is written to a temp
// name first and renamed into place, so readers never see a torn write.
func Write(path string, s *Snapshot) error {
	if s.Crate == nil {
		return errors.New("snapshot has no crate")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(path), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		_ = os.Remove(f.Name())
	}()

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(s); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}

// Read loads and validates a snapshot from path.
func Read(path string) (*Snapshot, error) {
	f, err := os.Open(path) // #nosec G304 -- path is provided by the caller
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	var s Snapshot
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", path, err)
	}
	if s.Schema != SchemaVersion {
		return nil, fmt.Errorf("snapshot %s: schema %d, want %d", path, s.Schema, SchemaVersion)
	}
	if s.Crate == nil {
		return nil, fmt.Errorf("snapshot %s: missing crate", path)
	}
	return &s, nil
}

// BuildFileSet registers the snapshot's files in a fresh FileSet, in the
// order they were recorded so FileIDs stay stable across write and read.
func (s *Snapshot) BuildFileSet() *source.FileSet {
	fs := source.NewFileSet()
	for _, fe := range s.Files {
		fs.AddVirtual(fe.Path, fe.Content)
	}
	return fs
}

// BuildBuffer converts the snapshot's buffered lints back into a lint
// buffer keyed by node.
func (s *Snapshot) BuildBuffer() *lint.Buffer {
	buf := lint.NewBuffer()
	for _, e := range s.Buffered {
		bl := lint.BufferedLint{Lint: e.Lint, Span: e.Span, Msg: e.Msg}
		for _, n := range e.Notes {
			bl.Notes = append(bl.Notes, diag.Note{Span: n.Span, Msg: n.Msg})
		}
		buf.Add(e.Node, bl)
	}
	return buf
}
