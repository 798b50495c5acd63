// Package files groups the packages that read directory trees.
//
//   - filesystem: the Provider abstraction with OS, in-memory and io/fs implementations
//   - traverser: ordered listing of files and directories on top of a Provider
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/enumfiles/internal/files/filesystem"
//	    "github.com/vvka-141/enumfiles/internal/files/traverser"
//	)
//
//	t := traverser.NewWithFS(filesystem.NewOSFileSystem(), traverser.WithConcurrency(4))
//	files, err := t.FilesRecursively("./src")
package files
