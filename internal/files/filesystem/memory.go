package filesystem

import (
	"io/fs"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory entries
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.mode.IsDir() }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// MemoryFileSystem implements Provider for in-memory testing.
//
// Paths use forward slashes and are cleaned before use, so "a/b/" and
// "a//b" name the same entry. Relative and absolute paths live side by
// side; "." and "/" always exist as directories.
//
// FailReadDir and FailStat inject errors that are returned verbatim,
// which lets tests exercise the listing-failure and vanished-entry paths
// of a traversal without touching real permissions.
type MemoryFileSystem struct {
	mu           sync.RWMutex
	entries      map[string]*memoryFileInfo // cleaned path -> metadata
	readDirFails map[string]error
	statFails    map[string]error
}

// NewMemoryFileSystem creates an empty in-memory filesystem.
func NewMemoryFileSystem() *MemoryFileSystem {
	return &MemoryFileSystem{
		entries:      make(map[string]*memoryFileInfo),
		readDirFails: make(map[string]error),
		statFails:    make(map[string]error),
	}
}

func cleanPath(p string) string {
	return path.Clean(filepath.ToSlash(p))
}

func isImplicitRoot(p string) bool {
	return p == "." || p == "/"
}

// AddFile adds a regular file, creating parent directories as needed.
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	p := cleanPath(filePath)
	mfs.entries[p] = &memoryFileInfo{
		name:    path.Base(p),
		size:    int64(len(content)),
		mode:    0644,
		modTime: time.Now(),
	}
	mfs.ensureDirectoriesExist(p)
}

// AddDir adds a directory, creating parent directories as needed.
// Empty directories can only be represented this way.
func (mfs *MemoryFileSystem) AddDir(dirPath string) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	p := cleanPath(dirPath)
	if !isImplicitRoot(p) {
		mfs.entries[p] = newMemoryDirInfo(p)
	}
	mfs.ensureDirectoriesExist(p)
}

// AddEntry adds an entry with an arbitrary mode, e.g. fs.ModeSocket or
// fs.ModeNamedPipe, for classification tests.
func (mfs *MemoryFileSystem) AddEntry(entryPath string, mode fs.FileMode) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	p := cleanPath(entryPath)
	mfs.entries[p] = &memoryFileInfo{
		name:    path.Base(p),
		mode:    mode,
		modTime: time.Now(),
	}
	mfs.ensureDirectoriesExist(p)
}

// Remove deletes the entry at entryPath and everything beneath it.
func (mfs *MemoryFileSystem) Remove(entryPath string) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	p := cleanPath(entryPath)
	prefix := p + "/"
	for key := range mfs.entries {
		if key == p || strings.HasPrefix(key, prefix) {
			delete(mfs.entries, key)
		}
	}
}

// FailReadDir makes every subsequent ReadDir of dirPath return err.
func (mfs *MemoryFileSystem) FailReadDir(dirPath string, err error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.readDirFails[cleanPath(dirPath)] = err
}

// FailStat makes every subsequent Stat and Exists of entryPath return err.
func (mfs *MemoryFileSystem) FailStat(entryPath string, err error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.statFails[cleanPath(entryPath)] = err
}

func newMemoryDirInfo(p string) *memoryFileInfo {
	return &memoryFileInfo{
		name:    path.Base(p),
		mode:    0755 | fs.ModeDir,
		modTime: time.Now(),
	}
}

// ensureDirectoriesExist creates directory entries for all parent directories.
// Callers must hold mu.
func (mfs *MemoryFileSystem) ensureDirectoriesExist(p string) {
	dir := path.Dir(p)
	if isImplicitRoot(dir) {
		return
	}

	if existing, exists := mfs.entries[dir]; exists && existing.IsDir() {
		return
	}

	mfs.entries[dir] = newMemoryDirInfo(dir)
	mfs.ensureDirectoriesExist(dir)
}

// lookup returns metadata for a cleaned path. Callers must hold mu.
func (mfs *MemoryFileSystem) lookup(p string) (*memoryFileInfo, bool) {
	if isImplicitRoot(p) {
		return newMemoryDirInfo(p), true
	}
	info, ok := mfs.entries[p]
	return info, ok
}

// Exists implements Provider.Exists
func (mfs *MemoryFileSystem) Exists(entryPath string) (bool, error) {
	_, err := mfs.Stat(entryPath)
	if err == nil {
		return true, nil
	}
	if isMissing(err) {
		return false, nil
	}
	return false, err
}

// ReadDir implements Provider.ReadDir
func (mfs *MemoryFileSystem) ReadDir(dirPath string) ([]string, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	p := cleanPath(dirPath)
	if err, ok := mfs.readDirFails[p]; ok {
		return nil, err
	}

	info, ok := mfs.lookup(p)
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: dirPath, Err: fs.ErrNotExist}
	}
	if !info.IsDir() {
		return nil, &fs.PathError{Op: "readdirent", Path: dirPath, Err: syscall.ENOTDIR}
	}

	var names []string
	for key := range mfs.entries {
		if key != p && path.Dir(key) == p {
			names = append(names, path.Base(key))
		}
	}
	return names, nil
}

// Stat implements Provider.Stat
func (mfs *MemoryFileSystem) Stat(entryPath string) (FileInfo, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	p := cleanPath(entryPath)
	if err, ok := mfs.statFails[p]; ok {
		return nil, err
	}

	info, ok := mfs.lookup(p)
	if !ok {
		return nil, &fs.PathError{Op: "stat", Path: entryPath, Err: fs.ErrNotExist}
	}
	return info, nil
}

// Join implements Provider.Join
func (mfs *MemoryFileSystem) Join(elem ...string) string {
	return path.Join(elem...)
}

var _ Provider = (*MemoryFileSystem)(nil)
