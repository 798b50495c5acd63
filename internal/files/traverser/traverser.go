package traverser

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/vvka-141/enumfiles/internal/files/filesystem"
	"github.com/vvka-141/enumfiles/internal/logging"
	"github.com/vvka-141/enumfiles/pkg/enumfiles"
)

// Traverser enumerates files and directories through a filesystem.Provider.
// It holds no per-call state: every operation owns its accumulator, so a
// Traverser is safe for concurrent use by multiple goroutines as long as
// the provider and logger are too.
type Traverser struct {
	fsProvider  filesystem.Provider
	logger      enumfiles.Logger
	concurrency int
}

// New creates a traverser over the OS filesystem.
func New(opts ...Option) *Traverser {
	return NewWithFS(filesystem.NewOSFileSystem(), opts...)
}

// NewWithFS creates a traverser with a custom filesystem provider.
// Panics if fsProvider is nil.
func NewWithFS(fsProvider filesystem.Provider, opts ...Option) *Traverser {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	t := &Traverser{
		fsProvider:  fsProvider,
		logger:      logging.NewNullLogger(),
		concurrency: enumfiles.DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// ListChildren returns the immediate children of dir, each joined onto dir,
// sorted by byte order of the joined path.
//
// A dir that does not exist has no children. A failure to list an existing
// dir, including dir being a regular file, is returned unchanged.
func (t *Traverser) ListChildren(dir string) ([]string, error) {
	exists, err := t.fsProvider.Exists(dir)
	if err != nil {
		return nil, err
	}
	if !exists {
		t.logger.Verbose("%s does not exist, treating as empty", dir)
		return []string{}, nil
	}

	names, err := t.fsProvider.ReadDir(dir)
	if err != nil {
		// Removed between the existence check and the listing.
		if errors.Is(err, fs.ErrNotExist) {
			t.logger.Verbose("%s disappeared before it could be listed, treating as empty", dir)
			return []string{}, nil
		}
		return nil, err
	}

	children := make([]string, 0, len(names))
	for _, name := range names {
		children = append(children, t.fsProvider.Join(dir, name))
	}
	sort.Strings(children)
	return children, nil
}

// ListDirectories returns the directories beneath root. root itself is never
// part of the result.
//
// Shallow mode keeps the sorted children of root that are directories.
// Recursive mode emits each subdirectory and then its entire subtree before
// moving on to the next sibling.
func (t *Traverser) ListDirectories(root string, recursive bool) ([]string, error) {
	if !recursive {
		return t.listKind(root, enumfiles.KindDirectory)
	}

	dirs := []string{}
	if err := t.walkDirectories(root, &dirs); err != nil {
		return nil, err
	}
	return dirs, nil
}

func (t *Traverser) walkDirectories(dir string, acc *[]string) error {
	subdirs, err := t.listKind(dir, enumfiles.KindDirectory)
	if err != nil {
		return err
	}
	for _, sub := range subdirs {
		*acc = append(*acc, sub)
		if err := t.walkDirectories(sub, acc); err != nil {
			return err
		}
	}
	return nil
}

// ListFiles returns the regular files beneath root.
//
// Shallow mode keeps the sorted children of root that are files. Recursive
// mode lists root first and then every directory in ListDirectories order,
// appending each directory's sorted files.
func (t *Traverser) ListFiles(root string, recursive bool) ([]string, error) {
	if !recursive {
		return t.listKind(root, enumfiles.KindFile)
	}

	subdirs, err := t.ListDirectories(root, true)
	if err != nil {
		return nil, err
	}
	targets := append([]string{root}, subdirs...)

	var perDir [][]string
	if t.concurrency > 1 && len(targets) > 1 {
		perDir, err = t.listFilesConcurrently(targets)
	} else {
		perDir, err = t.listFilesSequentially(targets)
	}
	if err != nil {
		return nil, err
	}

	files := []string{}
	for _, dirFiles := range perDir {
		files = append(files, dirFiles...)
	}
	return files, nil
}

func (t *Traverser) listFilesSequentially(targets []string) ([][]string, error) {
	perDir := make([][]string, len(targets))
	for i, dir := range targets {
		files, err := t.listKind(dir, enumfiles.KindFile)
		if err != nil {
			return nil, err
		}
		perDir[i] = files
	}
	return perDir, nil
}

// listFilesConcurrently lists targets on a bounded errgroup. Each result is
// stored in its target's slot so the caller concatenates in target order.
// After the first failure no new listing starts, and the failure with the
// lowest target index among those that ran is returned.
func (t *Traverser) listFilesConcurrently(targets []string) ([][]string, error) {
	perDir := make([][]string, len(targets))
	errs := make([]error, len(targets))

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(t.concurrency)

	for i, dir := range targets {
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			files, err := t.listKind(dir, enumfiles.KindFile)
			if err != nil {
				errs[i] = err
				return err
			}
			perDir[i] = files
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		for _, listErr := range errs {
			if listErr != nil {
				return nil, listErr
			}
		}
		return nil, err
	}
	return perDir, nil
}

// listKind lists dir and keeps the children matching kind, in sorted order.
func (t *Traverser) listKind(dir string, kind enumfiles.Kind) ([]string, error) {
	children, err := t.ListChildren(dir)
	if err != nil {
		return nil, err
	}

	matched := make([]string, 0, len(children))
	for _, child := range children {
		ok, err := t.isKind(child, kind)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, child)
		}
	}
	return matched, nil
}

// isKind classifies p by querying its metadata now. An entry that no longer
// exists, or a symlink whose target is gone, matches nothing.
func (t *Traverser) isKind(p string, kind enumfiles.Kind) (bool, error) {
	info, err := t.fsProvider.Stat(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			t.logger.Verbose("%s vanished before classification, skipping", p)
			return false, nil
		}
		return false, err
	}

	switch kind {
	case enumfiles.KindDirectory:
		return info.IsDir(), nil
	case enumfiles.KindFile:
		return info.Mode().IsRegular(), nil
	default:
		return false, nil
	}
}

// Enumerate lists entries of the given kind beneath root.
func (t *Traverser) Enumerate(root string, kind enumfiles.Kind, recursive bool) ([]string, error) {
	var (
		paths []string
		err   error
	)

	switch kind {
	case enumfiles.KindFile:
		paths, err = t.ListFiles(root, recursive)
	case enumfiles.KindDirectory:
		paths, err = t.ListDirectories(root, recursive)
	default:
		return nil, fmt.Errorf("enumerate %s: %w: %v", root, enumfiles.ErrInvalidKind, kind)
	}
	if err != nil {
		t.logger.Verbose("enumerating %s entries under %s failed: %v", kind, root, err)
		return nil, err
	}

	t.logger.Verbose("enumerated %d %s entries under %s (recursive=%v)", len(paths), kind, root, recursive)
	return paths, nil
}

// Files returns the files directly under root.
func (t *Traverser) Files(root string) ([]string, error) {
	return t.Enumerate(root, enumfiles.KindFile, false)
}

// FilesRecursively returns the files under root and all its descendants.
func (t *Traverser) FilesRecursively(root string) ([]string, error) {
	return t.Enumerate(root, enumfiles.KindFile, true)
}

// Dir returns the directories directly under root.
func (t *Traverser) Dir(root string) ([]string, error) {
	return t.Enumerate(root, enumfiles.KindDirectory, false)
}

// DirRecursively returns the directories under root and all its descendants.
func (t *Traverser) DirRecursively(root string) ([]string, error) {
	return t.Enumerate(root, enumfiles.KindDirectory, true)
}

// Verify Traverser implements the interface at compile time
var _ enumfiles.Enumerator = (*Traverser)(nil)
