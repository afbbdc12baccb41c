// Package tree implements the in-memory store for hierarchical configuration
// data: a tree of named nodes where each node is either a table of child
// nodes or a leaf value holding one typed primitive.
//
// A node's shape is fixed at construction. A table never becomes a value, a
// value never becomes a table, and a value never changes its primitive kind.
// Code that needs a different shape at a location must work with a fresh
// tree; no in-place retyping exists.
//
// Leaf values are stored behind pointer boxes so callers handed a reference
// by the path accessor can mutate the stored primitive in place. The tree
// itself is not synchronized; a single logical owner is assumed.
package tree
