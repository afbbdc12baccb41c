// Package toml provides a TOML parser implementation for the conf package.
//
// The parser decodes with github.com/pelletier/go-toml/v2 and converts the
// result into the conf tree model. Only nested tables and the four
// primitive kinds (integer, float, bool, string) are representable; a
// document using TOML arrays or datetimes is rejected.
//
// Usage:
//
//	parser := toml.NewParser()
//	subtree, err := parser.Parse(data)
package toml
