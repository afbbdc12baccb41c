package conf

import (
	"fmt"
	"io"

	"github.com/0xalexb/hjarta-conf/tree"
)

// SourceParser defines an interface for turning raw configuration data into
// a pre-parsed subtree. Implementations must return a table node and must
// not return a partial tree alongside an error.
//
// See parser/toml and parser/yaml for implementations.
type SourceParser interface {
	Parse(data []byte) (*tree.Node, error)
}

// DataFetcher defines an interface for reading raw configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Config owns a configuration tree for its entire lifetime. The root table
// is created empty; values and intermediate tables appear through writable
// access and loads. The zero value is not usable; use New.
type Config struct {
	root *tree.Node
}

// New creates a Config with an empty root table.
func New() *Config {
	return &Config{root: tree.NewTable()}
}

// HasKey reports whether the key resolves to any existing node, table or
// value. It never fails: malformed keys, missing segments and non-table
// intermediates all report false.
func (c *Config) HasKey(key string) bool {
	_, err := c.lookup(key)

	return err == nil
}

// Load grafts a pre-parsed subtree onto the store at the given root path,
// or at the store's root when the path is empty. Missing tables along the
// root path are created as for writable access. Top-level entries of the
// subtree merge into the target table: new names are inserted with their
// full nested shape, tables merge with tables recursively, and any
// collision involving an existing value fails with ErrTypeConflict, leaving
// the stored value untouched. Load takes ownership of the subtree's nodes;
// the caller must not reuse it.
func (c *Config) Load(subtree *tree.Node, root string) error {
	if subtree == nil || !subtree.IsTable() {
		return fmt.Errorf("%w: bulk load requires a table subtree", ErrInvalidAccess)
	}

	target := c.root

	if root != "" {
		segments, err := splitKey(root)
		if err != nil {
			return err
		}

		target, err = c.ensure(root, segments)
		if err != nil {
			return err
		}
	}

	return tree.Merge(target, subtree)
}

// LoadBytes parses raw data with the given parser and merges the result at
// the given root path. Parser failures are wrapped as ErrParse with the
// parser's own error kept in the chain.
func (c *Config) LoadBytes(parser SourceParser, data []byte, root string) error {
	subtree, err := parser.Parse(data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrParse, err)
	}

	return c.Load(subtree, root)
}

// LoadReader reads the stream to its end, then parses and merges as
// LoadBytes does.
func (c *Config) LoadReader(parser SourceParser, r io.Reader, root string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading stream: %w", err)
	}

	return c.LoadBytes(parser, data, root)
}

// LoadFrom fetches raw data with the given fetcher, then parses and merges
// as LoadBytes does.
func (c *Config) LoadFrom(parser SourceParser, fetcher DataFetcher, root string) error {
	data, err := fetcher.Fetch()
	if err != nil {
		return fmt.Errorf("fetching data: %w", err)
	}

	return c.LoadBytes(parser, data, root)
}

// lookup resolves a key against the tree without mutating it. Every
// intermediate segment must name a table child; the final segment may name
// any node.
func (c *Config) lookup(key string) (*tree.Node, error) {
	segments, err := splitKey(key)
	if err != nil {
		return nil, err
	}

	node := c.root

	for i, segment := range segments {
		if !node.IsTable() {
			return nil, fmt.Errorf("%w: %q: %q holds %s, not a table",
				ErrInvalidAccess, key, joinSegments(segments[:i]), node.Kind())
		}

		child, ok := node.Child(segment)
		if !ok {
			return nil, fmt.Errorf("%w: %q: no node at %q",
				ErrInvalidAccess, key, joinSegments(segments[:i+1]))
		}

		node = child
	}

	return node, nil
}

// ensure walks the given segments from the root, creating missing tables on
// the way, and returns the table at the end of the walk. An existing
// non-table node at any segment fails with ErrTypeConflict. Tables created
// before a failing segment remain in the tree.
func (c *Config) ensure(key string, segments []string) (*tree.Node, error) {
	node := c.root

	for i, segment := range segments {
		child, ok := node.Child(segment)
		if !ok {
			child = tree.NewTable()

			err := node.PutChild(segment, child)
			if err != nil {
				return nil, fmt.Errorf("%w: %q: inserting table at %q: %w",
					ErrInvalidAccess, key, joinSegments(segments[:i+1]), err)
			}
		}

		if !child.IsTable() {
			return nil, fmt.Errorf("%w: %q: %q holds %s, not a table",
				ErrTypeConflict, key, joinSegments(segments[:i+1]), child.Kind())
		}

		node = child
	}

	return node, nil
}
