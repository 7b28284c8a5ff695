package lint

import (
	"sort"

	"cinder/internal/ast"
	"cinder/internal/diag"
	"cinder/internal/source"
)

// BufferedLint is a finding recorded by an earlier phase, before the
// effective level at its node was knowable. It is resolved and emitted
// when the traversal reaches the node it is keyed to.
type BufferedLint struct {
	// Lint is the originating lint name.
	Lint string
	Span source.Span
	Msg  string
	// Notes is the optional structured payload carried to emission.
	Notes []diag.Note
}

// Buffer maps node identities to the findings waiting on them. It is
// populated by earlier phases and drained exactly once by the traversal.
type Buffer struct {
	m map[ast.NodeID][]BufferedLint
}

// NewBuffer creates an empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{m: make(map[ast.NodeID][]BufferedLint)}
}

// Add records a finding against a node. Insertion order per node is
// preserved through Take.
func (b *Buffer) Add(id ast.NodeID, bl BufferedLint) {
	b.m[id] = append(b.m[id], bl)
}

// Take removes and returns all findings buffered for id, in insertion
// order. Missing ids yield nil.
func (b *Buffer) Take(id ast.NodeID) []BufferedLint {
	out, ok := b.m[id]
	if !ok {
		return nil
	}
	delete(b.m, id)
	return out
}

// Len returns the total number of findings still buffered.
func (b *Buffer) Len() int {
	n := 0
	for _, lints := range b.m {
		n += len(lints)
	}
	return n
}

// Each visits the remaining findings in deterministic (NodeID) order.
func (b *Buffer) Each(f func(id ast.NodeID, bl BufferedLint)) {
	ids := make([]ast.NodeID, 0, len(b.m))
	for id := range b.m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		for _, bl := range b.m[id] {
			f(id, bl)
		}
	}
}
