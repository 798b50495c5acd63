// Package filesystem provides the filesystem primitives enumeration is built on.
//
// Traversal consumes exactly four operations: an existence check, a listing
// of child names, a metadata query and path joining. Provider captures those
// so that the same traversal runs against the host filesystem, an in-memory
// tree in tests, or any io/fs.FS such as an embedded tree or a zip archive.
//
// Implementations:
//   - OSFileSystem: production implementation using the OS filesystem
//   - MemoryFileSystem: in-memory implementation with fault injection for testing
//   - FSFileSystem: adapter over io/fs.FS (embed.FS, *zip.Reader, fstest.MapFS)
//
// Providers return filesystem errors as-is. Callers rely on errors.Is with
// fs.ErrNotExist to tell a missing path apart from a genuine failure.
package filesystem
