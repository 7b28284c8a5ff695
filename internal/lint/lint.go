package lint

import (
	"fmt"
	"sort"
)

// Level is the resolved disposition of a lint at a point in the tree.
type Level uint8

const (
	// LevelAllow suppresses the lint.
	LevelAllow Level = iota
	// LevelWarn emits the lint as a warning.
	LevelWarn
	// LevelDeny emits the lint as a hard error.
	LevelDeny
)

func (l Level) String() string {
	switch l {
	case LevelAllow:
		return "allow"
	case LevelWarn:
		return "warn"
	case LevelDeny:
		return "deny"
	}
	return "unknown"
}

// ParseLevel converts a string to a Level.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "allow":
		return LevelAllow, nil
	case "warn":
		return LevelWarn, nil
	case "deny":
		return LevelDeny, nil
	default:
		return LevelAllow, fmt.Errorf("invalid lint level: %q (expected: allow|warn|deny)", s)
	}
}

// Lint is one configurable diagnostic rule.
type Lint struct {
	// Name is the identity used in attributes and configuration,
	// kebab-case by convention.
	Name string
	// Default is the level in effect when nothing overrides it.
	Default Level
	// Desc is a one-line description for listings.
	Desc string
}

// Registry holds the known lints and lint groups. Annotations and
// configuration are resolved against it; names it does not recognize are
// reported once as unknown.
type Registry struct {
	byName map[string]*Lint
	groups map[string][]string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]*Lint),
		groups: make(map[string][]string),
	}
}

// Register adds a lint. Registering the same name twice panics: lint names
// are a flat global namespace.
func (r *Registry) Register(l *Lint) {
	if _, dup := r.byName[l.Name]; dup {
		panic(fmt.Sprintf("lint %q registered twice", l.Name))
	}
	if _, dup := r.groups[l.Name]; dup {
		panic(fmt.Sprintf("lint %q collides with a group name", l.Name))
	}
	r.byName[l.Name] = l
}

// RegisterGroup adds a named group expanding to member lints. Members must
// already be registered.
func (r *Registry) RegisterGroup(name string, members ...string) {
	if _, dup := r.byName[name]; dup {
		panic(fmt.Sprintf("group %q collides with a lint name", name))
	}
	for _, m := range members {
		if _, ok := r.byName[m]; !ok {
			panic(fmt.Sprintf("group %q references unknown lint %q", name, m))
		}
	}
	r.groups[name] = append([]string(nil), members...)
}

// Lookup returns the lint registered under name.
func (r *Registry) Lookup(name string) (*Lint, bool) {
	l, ok := r.byName[name]
	return l, ok
}

// Expand resolves a name to the lints it denotes: a lint name maps to
// itself, a group name to its members. Unknown names yield ok=false.
func (r *Registry) Expand(name string) ([]string, bool) {
	if _, ok := r.byName[name]; ok {
		return []string{name}, true
	}
	if members, ok := r.groups[name]; ok {
		return members, true
	}
	return nil, false
}

// SetDefault overrides the default level of a registered lint.
func (r *Registry) SetDefault(name string, level Level) error {
	l, ok := r.byName[name]
	if !ok {
		return fmt.Errorf("unknown lint %q", name)
	}
	l.Default = level
	return nil
}

// All returns the registered lints sorted by name.
func (r *Registry) All() []Lint {
	out := make([]Lint, 0, len(r.byName))
	for _, l := range r.byName {
		out = append(out, *l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Groups returns the group names sorted.
func (r *Registry) Groups() []string {
	out := make([]string, 0, len(r.groups))
	for name := range r.groups {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
