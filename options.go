package conf

import (
	filefetcher "github.com/0xalexb/hjarta-conf/fetcher/file"
)

// Source pairs a parser and fetcher with the root path their data is merged
// under. An empty root merges at the top of the tree.
type Source struct {
	Parser  SourceParser
	Fetcher DataFetcher
	Root    string
}

// Options holds configuration settings for a conf fx module.
type Options struct {
	Sources  []Source
	LogLevel string
}

// Option defines a function type for applying module options.
type Option func(*Options)

// WithSource adds a configuration source to the module. Sources are loaded
// in the order they were added, merging into one tree; overlapping roots
// compose as long as they do not collide on a value.
func WithSource(parser SourceParser, fetcher DataFetcher, root string) Option {
	return func(opts *Options) {
		opts.Sources = append(opts.Sources, Source{
			Parser:  parser,
			Fetcher: fetcher,
			Root:    root,
		})
	}
}

// WithFile adds a file-backed configuration source to the module, read
// through fetcher/file.
func WithFile(parser SourceParser, path string, root string) Option {
	return func(opts *Options) {
		opts.Sources = append(opts.Sources, Source{
			Parser:  parser,
			Fetcher: filefetcher.New(path),
			Root:    root,
		})
	}
}

// WithLogLevel sets the level of the module's load-time logging.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}
