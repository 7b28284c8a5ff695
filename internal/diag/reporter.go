package diag

// Reporter is the minimal contract for receiving diagnostics from phases.
// Implementations: BagReporter (stores into a Bag), NopReporter,
// DedupReporter (filters duplicates).
type Reporter interface {
	Report(d Diagnostic)
}

// BagReporter writes diagnostics into a *Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(d Diagnostic) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(d)
}

// NopReporter drops every diagnostic.
type NopReporter struct{}

func (NopReporter) Report(Diagnostic) {}

// FuncReporter adapts a function to the Reporter interface.
type FuncReporter func(Diagnostic)

func (f FuncReporter) Report(d Diagnostic) { f(d) }
