package tree

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrTypeConflict is returned when two nodes at the same path have
// incompatible shapes or primitive kinds.
var ErrTypeConflict = errors.New("type conflict")

// Merge grafts src's entries into dst. Both nodes must be tables. Entries
// missing from dst are linked in as-is, so src must not be reused or mutated
// by the caller afterwards. Entries present in both are merged recursively
// when both sides are tables; any collision involving a value is a type
// conflict, even between values of the same kind — merging loads new data,
// it never updates existing data.
//
// Merging proceeds name by name in sorted order and stops at the first
// conflict. Entries merged before the conflicting one remain in dst;
// existing dst nodes are never modified.
func Merge(dst, src *Node) error {
	if !dst.IsTable() {
		return fmt.Errorf("%w: merge target", ErrNotTable)
	}

	if !src.IsTable() {
		return fmt.Errorf("%w: merge source", ErrNotTable)
	}

	return merge(dst, src, nil)
}

func merge(dst, src *Node, path []string) error {
	for _, name := range src.Names() {
		incoming, _ := src.Child(name)

		existing, ok := dst.Child(name)
		if !ok {
			dst.children[name] = incoming

			continue
		}

		at := append(slices.Clone(path), name)

		if existing.IsTable() && incoming.IsTable() {
			err := merge(existing, incoming, at)
			if err != nil {
				return err
			}

			continue
		}

		return fmt.Errorf("%w: %q already holds %s, incoming %s",
			ErrTypeConflict, strings.Join(at, "."), existing.Kind(), incoming.Kind())
	}

	return nil
}
