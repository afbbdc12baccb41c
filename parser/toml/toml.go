package toml

import (
	"errors"
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/0xalexb/hjarta-conf/tree"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// Parser implements conf.SourceParser for TOML documents using
// pelletier/go-toml.
type Parser struct{}

// NewParser creates a new TOML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes a TOML document into a table subtree. TOML shapes outside
// the tree's value model — arrays, array tables, datetimes — fail with
// tree.ErrUnsupportedValue; syntax errors fail with the decoder's error. On
// failure no partial tree is returned.
func (p *Parser) Parse(data []byte) (*tree.Node, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	var doc map[string]any

	err := toml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return tree.FromMap(doc)
}
