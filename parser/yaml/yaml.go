package yaml

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/0xalexb/hjarta-conf/tree"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrNotMapping is returned when the document's top level is not a mapping.
var ErrNotMapping = errors.New("document is not a mapping")

// Parser implements conf.SourceParser for YAML documents using
// goccy/go-yaml.
type Parser struct{}

// NewParser creates a new YAML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes a YAML document into a table subtree. The top level must be
// a mapping, and every value must fit the tree's model of nested tables and
// the four primitive kinds; sequences, nulls and other shapes fail with
// tree.ErrUnsupportedValue. On failure no partial tree is returned.
func (p *Parser) Parse(data []byte) (*tree.Node, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	var doc any

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	mapping, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrNotMapping, doc)
	}

	return tree.FromMap(mapping)
}
