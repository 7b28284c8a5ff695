// Package lint implements the lint-checking traversal over a parsed crate.
//
// Lint checking is consolidated into one pass that runs after parsing.
// Earlier phases may record lints against a node before the effective lint
// level at that node is knowable; those findings sit in a Buffer keyed by
// NodeID. This package walks the tree once, keeps a stack of the lint
// levels currently in effect, flushes buffered findings for every node it
// reaches, and gives each registered Pass a hook at every node kind.
//
// Upon entering a node that can carry attributes, the current level state
// is pushed onto the LevelStack and the subtree is recursed into; the push
// is matched by a pop when the subtree is left, so the stack always
// mirrors the tree's own nesting.
//
// After the outermost traversal, every buffered finding must have been
// flushed: a leftover means an earlier phase recorded a lint against a
// node that does not exist in the walked tree, which is reported as an
// internal defect (unless the tree was deliberately pruned, e.g. for
// documentation-only runs, in which case the check is skipped).
package lint
