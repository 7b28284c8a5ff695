package lint

import (
	"cinder/internal/ast"
	"cinder/internal/diag"
	"cinder/internal/observ"
	"cinder/internal/trace"
)

// Options configure one lint run over a crate.
type Options struct {
	// Registry resolves lint names; defaults to DefaultRegistry.
	Registry *Registry
	// Levels is the scope stack; defaults to a LevelBuilder over Registry.
	Levels LevelStack
	// Builtin is the always-run, non-extensible pass set; defaults to
	// BuiltinPasses. It runs distinctly from, and before, Passes so its
	// diagnostics are available first.
	Builtin Pass
	// Passes are the dynamically registered lint passes.
	Passes []Pass
	// Reporter receives every emitted diagnostic.
	Reporter diag.Reporter
	Tracer   trace.Tracer
	// Timer, when set, records one span per traversal; isolated mode
	// labels each span with the pass it runs.
	Timer *observ.Timer
	// Isolated runs the engine once per registered pass instead of once
	// for the aggregate, making per-pass cost attributable. Results are
	// identical to interleaved mode.
	Isolated bool
	// SkipDrainCheck disables the leftover-buffer consistency check for
	// deliberately pruned trees (documentation-generation mode).
	SkipDrainCheck bool
	// WarnUnknownLints reports lint names the registry does not know.
	WarnUnknownLints bool
}

// CheckCrate walks the crate once per pass-group, flushing buffered
// findings as their nodes are reached, and returns the buffer to the
// caller. Unless SkipDrainCheck is set, any finding still buffered after
// the outermost traversal is reported as an internal defect: it was keyed
// to a node the walk never reached.
//
// The traversal is strictly sequential; the crate is only read.
func CheckCrate(crate *ast.Crate, buf *Buffer, opts Options) *Buffer {
	if opts.Registry == nil {
		opts.Registry = DefaultRegistry()
	}
	if opts.Reporter == nil {
		opts.Reporter = diag.NopReporter{}
	}
	if buf == nil {
		buf = NewBuffer()
	}

	cx := newContext(opts.Registry, nil, buf, opts.Reporter, opts.Tracer, opts.WarnUnknownLints)
	if opts.Levels != nil {
		cx.Levels = opts.Levels
	} else {
		cx.Levels = NewLevelBuilder(opts.Registry, cx.reportUnknown)
	}

	runPass := func(p Pass, label string) {
		var idx int
		if opts.Timer != nil {
			idx = opts.Timer.Begin(label)
		}
		cx.Tracer.Emit(trace.Begin(trace.ScopePass, label))
		w := &walker{cx: cx, pass: p}
		w.visitCrate(crate)
		cx.Tracer.Emit(trace.End(trace.ScopePass, label))
		if opts.Timer != nil {
			opts.Timer.End(idx, "")
		}
	}

	builtin := opts.Builtin
	if builtin == nil {
		builtin = BuiltinPasses()
	}
	runPass(builtin, "lint:builtin")

	if len(opts.Passes) > 0 {
		if opts.Isolated {
			for _, p := range opts.Passes {
				runPass(p, "lint:"+p.Name())
			}
		} else {
			runPass(Passes(opts.Passes...), "lint:registered")
		}
	}

	if !opts.SkipDrainCheck {
		cx.assertDrained()
	}
	return buf
}
