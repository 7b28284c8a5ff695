package diag

import (
	"testing"

	"cinder/internal/source"
)

func span(file source.FileID, start, end uint32) source.Span {
	return source.Span{File: file, Start: start, End: end}
}

func TestBagLimit(t *testing.T) {
	b := NewBag(2)
	if !b.Add(New(SevWarning, LintFinding, span(1, 0, 1), "one")) {
		t.Fatal("first add rejected")
	}
	if !b.Add(New(SevWarning, LintFinding, span(1, 1, 2), "two")) {
		t.Fatal("second add rejected")
	}
	if b.Add(New(SevWarning, LintFinding, span(1, 2, 3), "three")) {
		t.Error("third add should hit the capacity limit")
	}
	if b.Len() != 2 {
		t.Errorf("Len = %d, want 2", b.Len())
	}
}

func TestBagHasErrorsWarnings(t *testing.T) {
	b := NewBag(8)
	b.Add(New(SevInfo, LintFinding, span(1, 0, 1), "info"))
	if b.HasWarnings() || b.HasErrors() {
		t.Error("info-only bag should have neither warnings nor errors")
	}
	b.Add(New(SevWarning, LintFinding, span(1, 1, 2), "warn"))
	if !b.HasWarnings() || b.HasErrors() {
		t.Error("expected warnings only")
	}
	b.Add(NewError(InternalLeftoverBuffered, span(1, 2, 3), "ice"))
	if !b.HasErrors() {
		t.Error("expected errors after adding one")
	}
}

func TestBagSortDeterministic(t *testing.T) {
	b := NewBag(8)
	b.Add(New(SevWarning, LintFinding, span(2, 0, 1), "later file"))
	b.Add(New(SevWarning, LintFinding, span(1, 5, 6), "later offset"))
	b.Add(NewError(LintFinding, span(1, 0, 1), "error first"))
	b.Add(New(SevWarning, LintFinding, span(1, 0, 1), "warning second"))

	b.Sort()
	items := b.Items()
	want := []string{"error first", "warning second", "later offset", "later file"}
	for i, msg := range want {
		if items[i].Message != msg {
			t.Errorf("items[%d].Message = %q, want %q", i, items[i].Message, msg)
		}
	}
}

func TestBagMergeGrowsCapacity(t *testing.T) {
	a := NewBag(1)
	a.Add(New(SevWarning, LintFinding, span(1, 0, 1), "a"))
	b := NewBag(1)
	b.Add(New(SevWarning, LintFinding, span(1, 1, 2), "b"))

	a.Merge(b)
	if a.Len() != 2 {
		t.Fatalf("Len after merge = %d, want 2", a.Len())
	}
}

func TestDedupReporter(t *testing.T) {
	bag := NewBag(8)
	r := NewDedupReporter(BagReporter{Bag: bag})

	d := New(SevWarning, LintFinding, span(1, 0, 1), "dup")
	r.Report(d)
	r.Report(d)
	r.Report(New(SevWarning, LintFinding, span(1, 0, 1), "other"))

	if bag.Len() != 2 {
		t.Errorf("Len = %d, want 2 (one duplicate dropped)", bag.Len())
	}
}
