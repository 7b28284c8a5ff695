package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cinder/internal/diag"
	"cinder/internal/diagfmt"
	"cinder/internal/driver"
	"cinder/internal/observ"
	"cinder/internal/trace"
)

var lintCmd = &cobra.Command{
	Use:   "lint [flags] <crate.snap|directory>",
	Short: "Run lint passes over a crate snapshot",
	Long:  `Run the built-in lint passes over a crate snapshot (or every *.snap file in a directory), flushing lints buffered by earlier phases along the way`,
	Args:  cobra.ExactArgs(1),
	RunE:  runLint,
}

func init() {
	lintCmd.Flags().String("format", "pretty", "output format (pretty|short|json)")
	lintCmd.Flags().String("config", "", "path to cinder.toml")
	lintCmd.Flags().Bool("isolated", false, "run each registered pass in its own traversal")
	lintCmd.Flags().Bool("skip-drain-check", false, "allow buffered lints on nodes the walk never reaches")
	lintCmd.Flags().Bool("warn-unknown", false, "report unknown lint names in attributes")
	lintCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	lintCmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
	lintCmd.Flags().Bool("basename", false, "show file basenames instead of full paths")
}

func runLint(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	root := cmd.Root().PersistentFlags()

	format, _ := flags.GetString("format")
	switch format {
	case "pretty", "short", "json":
	default:
		return fmt.Errorf("unsupported format %q (must be pretty, short or json)", format)
	}

	cfg := driver.DefaultConfig()
	if configPath, _ := flags.GetString("config"); configPath != "" {
		var err error
		cfg, err = driver.LoadConfig(configPath)
		if err != nil {
			return err
		}
	}
	// Flags override config defaults.
	if v, _ := flags.GetBool("isolated"); v {
		cfg.Run.Isolated = true
	}
	if v, _ := flags.GetBool("skip-drain-check"); v {
		cfg.Run.SkipDrainCheck = true
	}
	if v, _ := flags.GetBool("warn-unknown"); v {
		cfg.Run.WarnUnknown = true
	}
	if v, _ := root.GetInt("max-diagnostics"); v > 0 {
		if v > diag.MaxBagCap {
			return fmt.Errorf("--max-diagnostics must be at most %d", diag.MaxBagCap)
		}
		cfg.Run.MaxDiagnostics = v
	}

	opts := driver.RunOptions{Config: cfg}

	traceLevel, _ := root.GetString("trace")
	level, err := trace.ParseLevel(traceLevel)
	if err != nil {
		return err
	}
	if level > trace.LevelOff {
		opts.Tracer = trace.NewStreamTracer(cmd.ErrOrStderr(), level)
	}

	timings, _ := root.GetBool("timings")
	if timings {
		opts.Timer = observ.NewTimer()
	}

	target := args[0]
	info, err := os.Stat(target)
	if err != nil {
		return err
	}

	var results []driver.RunResult
	if info.IsDir() {
		paths, err := driver.ListSnapshots(target)
		if err != nil {
			return err
		}
		if len(paths) == 0 {
			return fmt.Errorf("no *.snap files under %s", target)
		}
		jobs, _ := flags.GetInt("jobs")
		if jobs == 0 {
			jobs = cfg.Run.Jobs
		}
		results, err = driver.RunFiles(cmd.Context(), paths, jobs, opts)
		if err != nil {
			return err
		}
	} else {
		res, err := driver.RunFile(target, opts)
		if err != nil {
			return err
		}
		results = append(results, res)
	}

	withNotes, _ := flags.GetBool("with-notes")
	basename, _ := flags.GetBool("basename")
	pathMode := diagfmt.PathModeAuto
	if basename {
		pathMode = diagfmt.PathModeBasename
	}

	out := cmd.OutOrStdout()
	quiet, _ := root.GetBool("quiet")
	hasErrors := false
	total := 0
	for _, res := range results {
		if res.Bag.HasErrors() {
			hasErrors = true
		}
		total += res.Bag.Len()
		switch format {
		case "json":
			jsonOpts := diagfmt.JSONOpts{
				IncludePositions: true,
				PathMode:         pathMode,
				IncludeNotes:     withNotes,
			}
			if err := diagfmt.JSON(out, res.Bag, res.FileSet, jsonOpts); err != nil {
				return err
			}
		case "short":
			diagfmt.Short(out, res.Bag, res.FileSet, diagfmt.PrettyOpts{
				Color:    colorEnabled(cmd),
				PathMode: pathMode,
			})
		default:
			diagfmt.Pretty(out, res.Bag, res.FileSet, diagfmt.PrettyOpts{
				Color:     colorEnabled(cmd),
				PathMode:  pathMode,
				ShowNotes: withNotes,
			})
		}
	}

	if !quiet && format != "json" {
		fmt.Fprintf(out, "%d diagnostics across %d snapshot(s)\n", total, len(results))
	}
	if opts.Timer != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), opts.Timer.Summary())
	}
	if hasErrors {
		// Diagnostics were already rendered; fail the exit code quietly.
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("lint found errors")
	}
	return nil
}
