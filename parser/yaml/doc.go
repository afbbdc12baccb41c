// Package yaml provides a YAML parser implementation for the conf package.
//
// The parser decodes with github.com/goccy/go-yaml and converts the result
// into the conf tree model. Only nested mappings and the four primitive
// kinds (integer, float, bool, string) are representable; sequences, nulls
// and non-string keys are rejected.
//
// Usage:
//
//	parser := yaml.NewParser()
//	subtree, err := parser.Parse(data)
package yaml
