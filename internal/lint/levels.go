package lint

import (
	"fmt"

	"cinder/internal/ast"
	"cinder/internal/source"
)

// PushToken is an opaque handle returned by LevelStack.Push and consumed
// exactly once by the matching Pop.
type PushToken struct {
	depth int
}

// LevelStack tracks the lint levels currently in effect. The engine only
// requires that Push/Pop calls be strictly balanced and nested to match
// the tree's own nesting; how Query merges nested overrides is up to the
// implementation.
type LevelStack interface {
	// Push merges the lint-level attributes of a node into the current
	// state and returns a token for the matching Pop.
	Push(attrs []ast.Attr) PushToken
	// Pop restores the state that was in effect before the matching Push.
	Pop(tok PushToken)
	// Query resolves a lint name to its effective level. ok is false when
	// the name is not a registered lint.
	Query(name string) (Level, bool)
}

// UnknownNameFunc is invoked by LevelBuilder when an attribute references a
// lint or group name the registry does not recognize.
type UnknownNameFunc func(name string, span source.Span)

// LevelBuilder is the concrete LevelStack: a stack of per-scope level sets
// parsed from allow/warn/deny attributes, with registry defaults at the
// bottom. The nearest enclosing scope wins.
type LevelBuilder struct {
	reg       *Registry
	sets      []map[string]Level
	onUnknown UnknownNameFunc
}

// NewLevelBuilder creates a LevelBuilder over a registry. onUnknown may be
// nil to ignore unrecognized names silently.
func NewLevelBuilder(reg *Registry, onUnknown UnknownNameFunc) *LevelBuilder {
	return &LevelBuilder{reg: reg, onUnknown: onUnknown}
}

// Push parses the lint-level attributes and pushes one scope set. Every
// Push pushes exactly one set, empty when no attribute applies, so tokens
// stay in lockstep with the traversal's nesting.
func (b *LevelBuilder) Push(attrs []ast.Attr) PushToken {
	var set map[string]Level
	for _, attr := range attrs {
		if !attr.IsLintLevel() {
			continue
		}
		level, err := ParseLevel(attr.Name)
		if err != nil {
			continue
		}
		for _, arg := range attr.Args {
			names, ok := b.reg.Expand(arg)
			if !ok {
				if b.onUnknown != nil {
					b.onUnknown(arg, attr.Span)
				}
				continue
			}
			if set == nil {
				set = make(map[string]Level)
			}
			for _, name := range names {
				set[name] = level
			}
		}
	}
	b.sets = append(b.sets, set)
	return PushToken{depth: len(b.sets)}
}

// Pop removes the set pushed by the matching Push. Unbalanced or
// out-of-order pops are a defect in the traversal and panic.
func (b *LevelBuilder) Pop(tok PushToken) {
	if tok.depth != len(b.sets) {
		panic(fmt.Sprintf("lint level stack: pop depth %d, have %d", tok.depth, len(b.sets)))
	}
	b.sets = b.sets[:len(b.sets)-1]
}

// Query resolves a lint name against the nearest enclosing scope, falling
// back to the registry default.
func (b *LevelBuilder) Query(name string) (Level, bool) {
	for i := len(b.sets) - 1; i >= 0; i-- {
		if b.sets[i] == nil {
			continue
		}
		if level, ok := b.sets[i][name]; ok {
			return level, true
		}
	}
	l, ok := b.reg.Lookup(name)
	if !ok {
		return LevelAllow, false
	}
	return l.Default, true
}

// Depth returns the current nesting depth; zero after a balanced walk.
func (b *LevelBuilder) Depth() int { return len(b.sets) }
