// Package driver loads crate snapshots, runs the lint engine over them and
// collects the resulting diagnostics.
package driver

import (
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"

	"cinder/internal/diag"
	"cinder/internal/lint"
)

// Config is the cinder.toml surface relevant to linting.
type Config struct {
	Run   RunConfig         `toml:"lint"`
	Lints map[string]string `toml:"lints"`
}

// RunConfig holds the [lint] section: run-mode defaults that flags can
// still override.
type RunConfig struct {
	Isolated       bool `toml:"isolated"`
	SkipDrainCheck bool `toml:"skip-drain-check"`
	MaxDiagnostics int  `toml:"max-diagnostics"`
	WarnUnknown    bool `toml:"warn-unknown"`
	Jobs           int  `toml:"jobs"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Run: RunConfig{
			MaxDiagnostics: 256,
			WarnUnknown:    true,
		},
	}
}

// LoadConfig parses a cinder.toml. Sections that are absent keep their
// defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	if cfg.Run.MaxDiagnostics <= 0 {
		return Config{}, fmt.Errorf("%s: [lint].max-diagnostics must be positive", path)
	}
	if cfg.Run.MaxDiagnostics > diag.MaxBagCap {
		return Config{}, fmt.Errorf("%s: [lint].max-diagnostics must be at most %d", path, diag.MaxBagCap)
	}
	return cfg, nil
}

// ApplyLints rewrites registry defaults from the [lints] table. Keys may
// name a single lint or a group; group entries apply to every member.
// Unknown names are configuration errors, not lint findings: a config that
// silently does nothing is worse than one that fails.
func (c Config) ApplyLints(reg *lint.Registry) error {
	// Deterministic application order so group/member conflicts resolve
	// the same way on every run. Single lints sort after their group only
	// by name, so members are applied after groups when both are present.
	names := make([]string, 0, len(c.Lints))
	for name := range c.Lints {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		gi := len(mustExpand(reg, names[i])) > 1
		gj := len(mustExpand(reg, names[j])) > 1
		if gi != gj {
			return gi
		}
		return names[i] < names[j]
	})

	for _, name := range names {
		level, err := lint.ParseLevel(c.Lints[name])
		if err != nil {
			return fmt.Errorf("[lints] %s: %w", name, err)
		}
		members, ok := reg.Expand(name)
		if !ok {
			return fmt.Errorf("[lints] unknown lint or group %q", name)
		}
		for _, m := range members {
			if err := reg.SetDefault(m, level); err != nil {
				return err
			}
		}
	}
	return nil
}

func mustExpand(reg *lint.Registry, name string) []string {
	members, _ := reg.Expand(name)
	return members
}
