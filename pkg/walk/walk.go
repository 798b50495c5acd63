// Package walk enumerates files and directories beneath a root path.
//
// The package-level functions operate on the host filesystem:
//
//	files, err := walk.FilesRecursively("testdata")
//
// Results are sorted within each directory. Recursive directory listings
// place each subdirectory's entire subtree before its next sibling, and
// recursive file listings visit root first and then every directory in
// that same order. A root that does not exist yields an empty, non-nil
// slice and no error. Any other filesystem error aborts the whole call and
// is returned as reported by the operating system.
package walk

import (
	"io/fs"

	"github.com/vvka-141/enumfiles/internal/files/filesystem"
	"github.com/vvka-141/enumfiles/internal/files/traverser"
	"github.com/vvka-141/enumfiles/pkg/enumfiles"
)

var host = traverser.New()

// Files returns the files directly under root.
func Files(root string) ([]string, error) {
	return host.Files(root)
}

// FilesRecursively returns the files under root and all its descendants.
func FilesRecursively(root string) ([]string, error) {
	return host.FilesRecursively(root)
}

// Dir returns the directories directly under root.
func Dir(root string) ([]string, error) {
	return host.Dir(root)
}

// DirRecursively returns the directories under root and all its
// descendants. root itself is never included.
func DirRecursively(root string) ([]string, error) {
	return host.DirRecursively(root)
}

// NewEnumerator returns an Enumerator over the host filesystem.
// concurrency bounds how many directories are listed at once while
// collecting files recursively; logger may be nil.
func NewEnumerator(concurrency int, logger enumfiles.Logger) enumfiles.Enumerator {
	return traverser.New(
		traverser.WithConcurrency(concurrency),
		traverser.WithLogger(logger),
	)
}

// NewFSEnumerator returns an Enumerator over fsys. Paths are slash
// separated and relative to the root of fsys, as with io/fs.
func NewFSEnumerator(fsys fs.FS, concurrency int, logger enumfiles.Logger) enumfiles.Enumerator {
	return traverser.NewWithFS(
		filesystem.NewFSFileSystem(fsys),
		traverser.WithConcurrency(concurrency),
		traverser.WithLogger(logger),
	)
}
