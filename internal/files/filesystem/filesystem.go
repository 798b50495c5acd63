package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// Provider is the set of filesystem primitives a traversal consumes.
// Implementations must be safe for concurrent use by multiple goroutines.
type Provider interface {
	// Exists reports whether path exists. A path that does not exist yields
	// (false, nil); any other failure to determine existence is returned.
	Exists(path string) (bool, error)

	// ReadDir returns the names of the immediate children of path, in no
	// particular order. Errors are returned unchanged.
	ReadDir(path string) ([]string, error)

	// Stat returns metadata for path, following symbolic links.
	Stat(path string) (FileInfo, error)

	// Join joins path elements with the provider's separator.
	Join(elem ...string) string
}
