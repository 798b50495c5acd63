package fixtures

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/vvka-141/enumfiles/internal/files/filesystem"
)

// TreeBuilder provides a fluent API for building directory trees used in
// enumeration tests. The same tree can be materialised on disk, in a
// MemoryFileSystem or as an fstest.MapFS, so one expectation table can be
// checked against every provider.
//
// Example usage:
//
//	tree := NewTreeBuilder().
//	    AddFile("root.txt", "r").
//	    AddDirectory("sub", func(d *DirBuilder) {
//	        d.AddFile("a.txt", "a")
//	        d.AddDirectory("empty", func(*DirBuilder) {})
//	    })
//	mfs := tree.Memory()
//
// All paths are slash separated and relative to the tree's root.
type TreeBuilder struct {
	files map[string]string // path -> content
	dirs  map[string]bool
}

// NewTreeBuilder creates an empty tree.
func NewTreeBuilder() *TreeBuilder {
	return &TreeBuilder{
		files: make(map[string]string),
		dirs:  make(map[string]bool),
	}
}

// AddFile adds a file at the specified path; parent directories are implied.
func (b *TreeBuilder) AddFile(p, content string) *TreeBuilder {
	b.files[p] = content
	b.addParents(p)
	return b
}

// AddDir adds a directory, which may stay empty.
func (b *TreeBuilder) AddDir(p string) *TreeBuilder {
	b.dirs[p] = true
	b.addParents(p)
	return b
}

// AddDirectory adds a directory and populates it through builderFunc.
func (b *TreeBuilder) AddDirectory(name string, builderFunc func(*DirBuilder)) *TreeBuilder {
	b.AddDir(name)
	builderFunc(&DirBuilder{basePath: name, tree: b})
	return b
}

func (b *TreeBuilder) addParents(p string) {
	for dir := path.Dir(p); dir != "." && dir != "/"; dir = path.Dir(dir) {
		b.dirs[dir] = true
	}
}

// Files returns every file path in the tree, sorted.
func (b *TreeBuilder) Files() []string {
	paths := make([]string, 0, len(b.files))
	for p := range b.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Dirs returns every directory path in the tree, sorted.
func (b *TreeBuilder) Dirs() []string {
	paths := make([]string, 0, len(b.dirs))
	for p := range b.dirs {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// CountFilesUnder returns the number of files at or beneath dir.
func (b *TreeBuilder) CountFilesUnder(dir string) int {
	prefix := strings.TrimSuffix(dir, "/") + "/"
	count := 0
	for p := range b.files {
		if strings.HasPrefix(p, prefix) {
			count++
		}
	}
	return count
}

// Memory generates a MemoryFileSystem from the accumulated entries.
func (b *TreeBuilder) Memory() *filesystem.MemoryFileSystem {
	mfs := filesystem.NewMemoryFileSystem()
	for p := range b.dirs {
		mfs.AddDir(p)
	}
	for p, content := range b.files {
		mfs.AddFile(p, content)
	}
	return mfs
}

// MapFS generates an fstest.MapFS from the accumulated entries.
func (b *TreeBuilder) MapFS() fstest.MapFS {
	mapFS := fstest.MapFS{}
	for p := range b.dirs {
		mapFS[p] = &fstest.MapFile{Mode: fs.ModeDir | 0755}
	}
	for p, content := range b.files {
		mapFS[p] = &fstest.MapFile{Data: []byte(content), Mode: 0644}
	}
	return mapFS
}

// WriteTo materialises the tree on disk beneath root.
func (b *TreeBuilder) WriteTo(tb testing.TB, root string) {
	tb.Helper()

	for _, p := range b.Dirs() {
		if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(p)), 0755); err != nil {
			tb.Fatalf("failed to create directory %s: %v", p, err)
		}
	}
	for _, p := range b.Files() {
		target := filepath.Join(root, filepath.FromSlash(p))
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			tb.Fatalf("failed to create directory for %s: %v", p, err)
		}
		if err := os.WriteFile(target, []byte(b.files[p]), 0644); err != nil {
			tb.Fatalf("failed to write file %s: %v", p, err)
		}
	}
}

// DirBuilder populates one directory of a TreeBuilder.
type DirBuilder struct {
	basePath string
	tree     *TreeBuilder
}

// AddFile adds a file in the current directory.
func (d *DirBuilder) AddFile(name, content string) *DirBuilder {
	d.tree.AddFile(path.Join(d.basePath, name), content)
	return d
}

// AddDirectory adds a nested directory.
func (d *DirBuilder) AddDirectory(name string, builderFunc func(*DirBuilder)) *DirBuilder {
	subPath := path.Join(d.basePath, name)
	d.tree.AddDir(subPath)
	builderFunc(&DirBuilder{basePath: subPath, tree: d.tree})
	return d
}

// ============================================================================
// Pre-built Fixtures
// ============================================================================

// ReferenceRoot is the root every ReferenceTree expectation is relative to.
const ReferenceRoot = "test/testFolder"

// ReferenceTree creates the reference tree:
//
//	test/testFolder/test1.txt
//	test/testFolder/test2.txt
//	test/testFolder/test1/test1.txt
//	test/testFolder/test1/test2.txt
//	test/testFolder/test1/test1_1/test1.txt
//	test/testFolder/test1/test1_1/test2.txt
//	test/testFolder/test1/test1_2/   (empty)
//	test/testFolder/test2/           (empty)
func ReferenceTree() *TreeBuilder {
	return NewTreeBuilder().
		AddDirectory(ReferenceRoot, func(root *DirBuilder) {
			root.AddFile("test1.txt", "test1")
			root.AddFile("test2.txt", "test2")
			root.AddDirectory("test1", func(test1 *DirBuilder) {
				test1.AddFile("test1.txt", "test1/test1")
				test1.AddFile("test2.txt", "test1/test2")
				test1.AddDirectory("test1_1", func(test11 *DirBuilder) {
					test11.AddFile("test1.txt", "test1_1/test1")
					test11.AddFile("test2.txt", "test1_1/test2")
				})
				test1.AddDirectory("test1_2", func(*DirBuilder) {})
			})
			root.AddDirectory("test2", func(*DirBuilder) {})
		})
}

// Generated creates a uniform tree depth levels deep with filesPerDir files
// and dirsPerDir subdirectories in every directory, rooted at root.
func Generated(root string, depth, filesPerDir, dirsPerDir int) *TreeBuilder {
	b := NewTreeBuilder().AddDir(root)
	generateLevel(b, root, depth, filesPerDir, dirsPerDir)
	return b
}

func generateLevel(b *TreeBuilder, current string, depth, filesPerDir, dirsPerDir int) {
	if depth <= 0 {
		return
	}
	for i := 0; i < filesPerDir; i++ {
		name := fmt.Sprintf("file_%d_%d.txt", depth, i)
		b.AddFile(path.Join(current, name), fmt.Sprintf("content for file %d at depth %d", i, depth))
	}
	for i := 0; i < dirsPerDir; i++ {
		sub := path.Join(current, fmt.Sprintf("subdir_%d_%d", depth, i))
		b.AddDir(sub)
		generateLevel(b, sub, depth-1, filesPerDir, dirsPerDir)
	}
}
