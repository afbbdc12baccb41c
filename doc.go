// Package conf provides typed, hierarchical access to configuration data.
//
// A Config owns a tree of named nodes. Every value is addressed by a dotted
// key naming the complete path to its target, e.g. "table.nested.value",
// and is read or written with an explicit primitive type: int64, float64,
// bool or string.
//
//	cfg := conf.New()
//
//	err := conf.Set(cfg, "server.port", int64(8080))
//	port, err := conf.Get[int64](cfg, "server.port")
//
// Writable access creates missing intermediate tables and the missing leaf
// on demand; read-only access never mutates the tree. A node keeps the
// shape and type it was created with: asking for "server.port" as a string
// after it was created as an int64 is a type conflict, not a coercion.
//
// # Loading sources
//
// The tree engine does not interpret any serialization format itself.
// Format support is an interface split, as in the rest of the hjarta
// libraries: a SourceParser turns raw bytes into a pre-parsed subtree, a
// DataFetcher retrieves the raw bytes, and Config.Load grafts the subtree
// onto the store under a caller-chosen root path. Parsers for TOML and YAML
// live in the parser/toml and parser/yaml subpackages; a file-backed
// fetcher lives in fetcher/file.
//
// Loading merges rather than overwrites, so several sources can be composed
// under distinct or overlapping roots. A load that would collide with an
// already stored value fails with a type conflict and leaves the stored
// value untouched.
//
// # Errors
//
// Failures are sentinel errors tested with errors.Is: ErrMalformedKey for
// keys that do not split into non-empty segments, ErrInvalidAccess for
// missing nodes or wrong shapes on read, ErrTypeConflict for clashes with
// an existing node's fixed type, and ErrParse for failures a SourceParser
// reported during a load.
//
// A Config is not synchronized. It assumes a single logical owner; callers
// sharing one instance across goroutines must add their own locking.
package conf
