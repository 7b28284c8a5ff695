package lint

import (
	"testing"

	"cinder/internal/ast"
	"cinder/internal/source"
)

func TestBufferTakePreservesOrder(t *testing.T) {
	b := NewBuffer()
	b.Add(5, BufferedLint{Lint: "a", Msg: "first"})
	b.Add(5, BufferedLint{Lint: "a", Msg: "second"})
	b.Add(7, BufferedLint{Lint: "b", Msg: "other"})

	got := b.Take(5)
	if len(got) != 2 || got[0].Msg != "first" || got[1].Msg != "second" {
		t.Errorf("Take(5) = %v", got)
	}
	if b.Take(5) != nil {
		t.Error("second Take must return nil")
	}
	if b.Len() != 1 {
		t.Errorf("Len = %d, want 1", b.Len())
	}
}

func TestBufferEachDeterministic(t *testing.T) {
	b := NewBuffer()
	b.Add(9, BufferedLint{Lint: "x", Span: source.Span{File: 1}})
	b.Add(3, BufferedLint{Lint: "y", Span: source.Span{File: 1}})
	b.Add(3, BufferedLint{Lint: "z", Span: source.Span{File: 1}})

	var order []ast.NodeID
	var lints []string
	b.Each(func(id ast.NodeID, bl BufferedLint) {
		order = append(order, id)
		lints = append(lints, bl.Lint)
	})

	wantIDs := []ast.NodeID{3, 3, 9}
	wantLints := []string{"y", "z", "x"}
	for i := range wantIDs {
		if order[i] != wantIDs[i] || lints[i] != wantLints[i] {
			t.Fatalf("Each order = %v %v, want %v %v", order, lints, wantIDs, wantLints)
		}
	}
}
