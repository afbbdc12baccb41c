package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrPathIsDirectory is returned when the configured path points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// Fetcher implements conf.DataFetcher for file-based configuration. The
// path is cleaned once at construction; the file itself is read on every
// Fetch, so repeated loads observe the file's current contents.
type Fetcher struct {
	filepath string
}

// New creates a Fetcher reading from the given path.
func New(fpath string) *Fetcher {
	return &Fetcher{filepath: filepath.Clean(fpath)}
}

// Fetch reads and returns the file's contents. It fails if the path does
// not exist or names a directory.
func (f *Fetcher) Fetch() ([]byte, error) {
	stat, err := os.Stat(f.filepath)
	if err != nil {
		return nil, fmt.Errorf("stat file %q: %w", f.filepath, err)
	}

	if stat.IsDir() {
		return nil, fmt.Errorf("path %q: %w", f.filepath, ErrPathIsDirectory)
	}

	data, err := os.ReadFile(f.filepath) // #nosec G304 -- path is cleaned at construction
	if err != nil {
		return nil, fmt.Errorf("reading file %q: %w", f.filepath, err)
	}

	return data, nil
}

// Path returns the cleaned path the fetcher reads from.
func (f *Fetcher) Path() string {
	return f.filepath
}
