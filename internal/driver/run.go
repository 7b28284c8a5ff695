package driver

import (
	"fmt"

	"cinder/internal/diag"
	"cinder/internal/lint"
	"cinder/internal/observ"
	"cinder/internal/snapshot"
	"cinder/internal/source"
	"cinder/internal/trace"
)

// RunOptions configure one lint run over a snapshot. The zero value means
// interleaved dispatch, drain check on, defaults from DefaultConfig.
type RunOptions struct {
	Config Config
	// Passes are the registered (non-builtin) lint passes to run.
	Passes []lint.Pass
	// Registry overrides the default registry; Config lints are applied
	// to it either way.
	Registry *lint.Registry
	Tracer   trace.Tracer
	Timer    *observ.Timer
	Isolated bool
	// SkipDrainCheck leaves buffered lints unflushed without an internal
	// defect, for deliberately pruned trees.
	SkipDrainCheck bool
}

// RunResult is the outcome of linting one snapshot.
type RunResult struct {
	Path    string
	Bag     *diag.Bag
	FileSet *source.FileSet
}

// RunFile lints a single snapshot file. Diagnostics come back sorted and
// deduplicated; callers render them with diagfmt.
func RunFile(path string, opts RunOptions) (RunResult, error) {
	snap, err := snapshot.Read(path)
	if err != nil {
		return RunResult{}, fmt.Errorf("read snapshot: %w", err)
	}
	return runSnapshot(path, snap, opts)
}

func runSnapshot(path string, snap *snapshot.Snapshot, opts RunOptions) (RunResult, error) {
	reg := opts.Registry
	if reg == nil {
		reg = lint.DefaultRegistry()
	}
	if err := opts.Config.ApplyLints(reg); err != nil {
		return RunResult{}, err
	}

	maxDiagnostics := opts.Config.Run.MaxDiagnostics
	if maxDiagnostics <= 0 {
		maxDiagnostics = DefaultConfig().Run.MaxDiagnostics
	}
	// LoadConfig rejects oversized values; clamp here for RunOptions
	// built without it.
	if maxDiagnostics > diag.MaxBagCap {
		maxDiagnostics = diag.MaxBagCap
	}
	bag := diag.NewBag(maxDiagnostics)
	reporter := diag.NewDedupReporter(diag.BagReporter{Bag: bag})

	lint.CheckCrate(snap.Crate, snap.BuildBuffer(), lint.Options{
		Registry:         reg,
		Passes:           opts.Passes,
		Reporter:         reporter,
		Tracer:           opts.Tracer,
		Timer:            opts.Timer,
		Isolated:         opts.Isolated || opts.Config.Run.Isolated,
		SkipDrainCheck:   opts.SkipDrainCheck || opts.Config.Run.SkipDrainCheck,
		WarnUnknownLints: opts.Config.Run.WarnUnknown,
	})

	bag.Sort()
	return RunResult{
		Path:    path,
		Bag:     bag,
		FileSet: snap.BuildFileSet(),
	}, nil
}
