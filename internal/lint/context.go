package lint

import (
	"fmt"

	"cinder/internal/ast"
	"cinder/internal/diag"
	"cinder/internal/source"
	"cinder/internal/trace"
)

// Context carries the traversal state handed to every hook: the registry,
// the level stack mirroring the current scope, the buffered-lint table and
// the diagnostic sink. It is created per CheckCrate call and discarded
// when the walk completes.
type Context struct {
	Registry *Registry
	Levels   LevelStack
	Reporter diag.Reporter
	Tracer   trace.Tracer

	// WarnUnknownLints enables the one-shot report for lint names the
	// registry does not recognize.
	WarnUnknownLints bool

	buffer      *Buffer
	unknownSeen map[string]struct{}
	suppressed  int
	emitted     int
}

func newContext(reg *Registry, levels LevelStack, buf *Buffer, rep diag.Reporter, tracer trace.Tracer, warnUnknown bool) *Context {
	if tracer == nil {
		tracer = trace.Nop
	}
	return &Context{
		Registry:         reg,
		Levels:           levels,
		Reporter:         rep,
		Tracer:           tracer,
		WarnUnknownLints: warnUnknown,
		buffer:           buf,
		unknownSeen:      make(map[string]struct{}),
	}
}

// Emit resolves a lint against the current scope and renders it through
// the reporter at the resolved severity. Findings whose effective level is
// allow are counted but not rendered. Emit never aborts the traversal.
func (cx *Context) Emit(lint string, span source.Span, msg string, notes ...diag.Note) {
	level, ok := cx.Levels.Query(lint)
	if !ok {
		cx.reportUnknown(lint, span)
		return
	}

	var sev diag.Severity
	switch level {
	case LevelAllow:
		cx.suppressed++
		return
	case LevelWarn:
		sev = diag.SevWarning
	case LevelDeny:
		sev = diag.SevError
	}

	d := diag.New(sev, diag.LintFinding, span, msg).WithLint(lint)
	d.Notes = append(d.Notes, notes...)
	cx.Reporter.Report(d)
	cx.emitted++
}

// reportUnknown emits the weird-lint-name diagnostic at most once per name.
func (cx *Context) reportUnknown(name string, span source.Span) {
	if !cx.WarnUnknownLints {
		return
	}
	if _, seen := cx.unknownSeen[name]; seen {
		return
	}
	cx.unknownSeen[name] = struct{}{}
	cx.Reporter.Report(diag.New(
		diag.SevWarning,
		diag.LintUnknownName,
		span,
		fmt.Sprintf("unknown lint: `%s`", name),
	))
}

// Suppressed returns how many findings resolved to allow during the walk.
func (cx *Context) Suppressed() int { return cx.suppressed }

// Emitted returns how many findings were rendered during the walk.
func (cx *Context) Emitted() int { return cx.emitted }

// assertDrained reports every finding still buffered after the outermost
// traversal as an internal defect: its NodeID was never reached by the
// walk. Non-fatal so the caller can still surface other diagnostics.
func (cx *Context) assertDrained() {
	cx.buffer.Each(func(id ast.NodeID, bl BufferedLint) {
		cx.Reporter.Report(diag.NewError(
			diag.InternalLeftoverBuffered,
			bl.Span,
			fmt.Sprintf("buffered lint `%s` was never processed (node %d not found in tree)", bl.Lint, id),
		))
	})
}
