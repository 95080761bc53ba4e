// Package mast defines the syntax tree for the match expression language
// that matchlint analyzes.
//
// The tree is a closed set of node types: expressions implement Expr,
// patterns implement Pattern, and top-level items implement Item. Lint
// rules only ever switch over these concrete types, so adding a node kind
// is a deliberate, visible change rather than an open extension point.
//
// Nodes are immutable once built. Constructor helpers (Bool, Var, Variant,
// Wild, ...) build span-less nodes for tests; the parser attaches spans
// where rules need to report positions (match expressions, arms, items).
package mast
