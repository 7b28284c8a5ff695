package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"cinder/internal/diag"
	"cinder/internal/lint"
	"cinder/internal/source"
)

// ListSnapshots returns the sorted *.snap files under dir.
func ListSnapshots(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".snap") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Deterministic order regardless of directory iteration.
	sort.Strings(files)
	return files, nil
}

// RunFiles lints every snapshot in parallel with at most jobs workers
// (GOMAXPROCS when jobs <= 0). Results come back indexed like paths, so
// the output order is deterministic. A snapshot that fails to load yields
// a result whose bag holds the IO error instead of failing the whole run.
func RunFiles(ctx context.Context, paths []string, jobs int, opts RunOptions) ([]RunResult, error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Apply configuration once up front: workers share the registry and
	// must only read it.
	reg := opts.Registry
	if reg == nil {
		reg = lint.DefaultRegistry()
	}
	if err := opts.Config.ApplyLints(reg); err != nil {
		return nil, err
	}
	opts.Registry = reg
	opts.Config.Lints = nil
	// Timer is not safe for concurrent Begin/End; timings only apply to
	// single-snapshot runs.
	opts.Timer = nil

	// Each goroutine writes only its own index, no mutex needed.
	results := make([]RunResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			res, err := RunFile(path, opts)
			if err != nil {
				bag := diag.NewBag(1)
				bag.Add(diag.NewError(diag.IOSnapshotRead, source.Span{}, err.Error()))
				results[i] = RunResult{Path: path, Bag: bag, FileSet: source.NewFileSet()}
				return nil
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
