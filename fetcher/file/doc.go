// Package file provides a file-backed DataFetcher for the conf package.
//
// Usage:
//
//	fetcher := file.New("config.toml")
//	err := cfg.LoadFrom(parser, fetcher, "")
//
// The fetcher reads the file on every Fetch rather than caching, so a
// Config that loads the same fetcher twice (e.g. under different roots)
// picks up the file as it is at each load.
package file
