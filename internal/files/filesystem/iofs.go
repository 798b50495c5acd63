package filesystem

import (
	"errors"
	"io/fs"
	"path"
	"strings"
)

// FSFileSystem implements Provider over an io/fs.FS.
//
// Any fs.FS works: embed.FS for bundled trees, *zip.Reader for archives,
// fstest.MapFS in tests. fs.FS only accepts unrooted, slash-separated,
// already-clean names, so paths are normalised before every call: a
// leading "./" or "/" is dropped and "" means the root.
type FSFileSystem struct {
	fsys fs.FS
}

// NewFSFileSystem creates a provider wrapping fsys.
func NewFSFileSystem(fsys fs.FS) *FSFileSystem {
	return &FSFileSystem{fsys: fsys}
}

func (p *FSFileSystem) name(filePath string) string {
	name := path.Clean(strings.ReplaceAll(filePath, "\\", "/"))
	name = strings.TrimPrefix(name, "/")
	if name == "" {
		return "."
	}
	return name
}

// Exists treats names fs.FS rejects, such as "../x", as missing.
func (p *FSFileSystem) Exists(filePath string) (bool, error) {
	_, err := fs.Stat(p.fsys, p.name(filePath))
	if err == nil {
		return true, nil
	}
	if isMissing(err) || errors.Is(err, fs.ErrInvalid) {
		return false, nil
	}
	return false, err
}

func (p *FSFileSystem) ReadDir(filePath string) ([]string, error) {
	entries, err := fs.ReadDir(p.fsys, p.name(filePath))
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}

func (p *FSFileSystem) Stat(filePath string) (FileInfo, error) {
	return fs.Stat(p.fsys, p.name(filePath))
}

func (p *FSFileSystem) Join(elem ...string) string {
	return path.Join(elem...)
}

var _ Provider = (*FSFileSystem)(nil)
