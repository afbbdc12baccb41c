package conf

import (
	"errors"

	"github.com/0xalexb/hjarta-conf/tree"
)

// ErrMalformedKey is returned when a dotted key is empty or contains an
// empty segment, e.g. "a..b" or ".a".
var ErrMalformedKey = errors.New("malformed key")

// ErrInvalidAccess is returned when a walk references a segment that does
// not exist, or an existing node has the wrong shape for the requested
// operation.
var ErrInvalidAccess = errors.New("invalid access")

// ErrTypeConflict is returned when an operation clashes with an existing
// node's fixed shape or primitive type. It is the same value as
// tree.ErrTypeConflict, so merge conflicts match it as well.
var ErrTypeConflict = tree.ErrTypeConflict

// ErrParse wraps failures reported by a SourceParser during a load. The
// parser's own error remains in the chain.
var ErrParse = errors.New("parse failure")
