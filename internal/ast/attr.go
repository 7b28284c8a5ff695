package ast

import "cinder/internal/source"

// Attr is a tree-attached annotation of the form `@name(args...)`.
// Lint-level attributes use the names "allow", "warn" and "deny" with lint
// or lint-group names as arguments; their effect covers the subtree rooted
// at the owning node. Doc comments are carried as `doc` attributes.
type Attr struct {
	Name string
	Args []string
	Span source.Span
}

// IsLintLevel reports whether the attribute requests a lint level change.
func (a Attr) IsLintLevel() bool {
	switch a.Name {
	case "allow", "warn", "deny":
		return true
	}
	return false
}

// IsDoc reports whether the attribute is a doc comment.
func (a Attr) IsDoc() bool { return a.Name == "doc" }

// Ident is a name occurrence with its span.
type Ident struct {
	Name string
	Span source.Span
}
